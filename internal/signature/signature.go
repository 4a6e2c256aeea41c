package signature

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// DemoMessage is the fixed payload signed by the startup demo.
const DemoMessage = "Important transaction data"

const keyBits = 2048

var pssOpts = &rsa.PSSOptions{
	SaltLength: rsa.PSSSaltLengthAuto,
	Hash:       crypto.SHA256,
}

// GenerateKey produces a fresh RSA key pair for the demo.
func GenerateKey() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, errors.Wrap(err, "generate rsa key")
	}
	return key, nil
}

// Sign signs message with RSA-PSS over a SHA-256 digest.
func Sign(priv *rsa.PrivateKey, message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	sig, err := rsa.SignPSS(rand.Reader, priv, crypto.SHA256, digest[:], pssOpts)
	if err != nil {
		return nil, errors.Wrap(err, "sign message")
	}
	return sig, nil
}

// Verify checks signature against message with the given public key.
func Verify(pub *rsa.PublicKey, message, signature []byte) error {
	digest := sha256.Sum256(message)
	return rsa.VerifyPSS(pub, crypto.SHA256, digest[:], signature, pssOpts)
}

// Run executes the one-shot sign/verify self-test, writing progress to
// w. Verification failure is reported on w only and never propagated;
// the returned error covers key generation and signing problems.
func Run(w io.Writer) error {
	fmt.Fprintln(w, "\n--- Digital Signature Demo ---")

	priv, err := GenerateKey()
	if err != nil {
		return err
	}

	sig, err := Sign(priv, []byte(DemoMessage))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Message signed.")

	if err := Verify(&priv.PublicKey, []byte(DemoMessage), sig); err != nil {
		fmt.Fprintln(w, "Signature verification failed:", err)
		return nil
	}
	fmt.Fprintln(w, "Signature verified successfully!")
	return nil
}
