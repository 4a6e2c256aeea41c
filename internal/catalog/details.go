package catalog

import (
	"encoding/xml"
	"fmt"

	"github.com/pkg/errors"
)

// DetailSpec holds the scalar fields extracted from a product Details
// document.
type DetailSpec struct {
	Brand   string
	CPU     string
	RAM     string
	Storage string
}

// ParseError reports a Details document that could not be decomposed.
// The read path never returns partial data: the first bad document
// fails the whole request.
type ParseError struct {
	ProductID int64
	Reason    string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("product %d: invalid details document: %s: %v", e.ProductID, e.Reason, e.Err)
	}
	return fmt.Sprintf("product %d: invalid details document: %s", e.ProductID, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type detailsDoc struct {
	XMLName xml.Name      `xml:"product"`
	Brand   string        `xml:"brand"`
	Specs   *detailsSpecs `xml:"specs"`
}

type detailsSpecs struct {
	CPU     string `xml:"cpu"`
	RAM     string `xml:"ram"`
	Storage string `xml:"storage"`
}

// ParseDetails decodes a Details XML document and extracts the specs
// fields. Every stored document must contain a specs node with cpu,
// ram and storage children; anything less is a *ParseError.
func ParseDetails(productID int64, doc string) (*DetailSpec, error) {
	var d detailsDoc
	if err := xml.Unmarshal([]byte(doc), &d); err != nil {
		return nil, &ParseError{ProductID: productID, Reason: "malformed xml", Err: errors.WithStack(err)}
	}
	if d.Specs == nil {
		return nil, &ParseError{ProductID: productID, Reason: "missing specs node"}
	}
	if d.Specs.CPU == "" || d.Specs.RAM == "" || d.Specs.Storage == "" {
		return nil, &ParseError{ProductID: productID, Reason: "specs node incomplete"}
	}
	return &DetailSpec{
		Brand:   d.Brand,
		CPU:     d.Specs.CPU,
		RAM:     d.Specs.RAM,
		Storage: d.Specs.Storage,
	}, nil
}
