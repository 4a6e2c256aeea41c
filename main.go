package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/itlabra/xmlcatalog/config"
	"github.com/itlabra/xmlcatalog/internal/app"
	"github.com/itlabra/xmlcatalog/internal/signature"
	"github.com/itlabra/xmlcatalog/internal/webserver"
	"go.uber.org/zap"
)

var (
	h        = flag.Bool("h", false, "help usage")
	conffile = flag.String("c", "xmlcatalog.yml", "config yaml file")
	initdb   = flag.Bool("initdb", false, "drop and recreate the schema, then reseed")
)

const performanceTips = `
Performance Considerations:
1. Use connection pooling for database connections.
2. Cache frequent queries/results.
3. Optimize SQL with indexes and analyze query plans.
4. Use pagination for large datasets.
5. Handle requests asynchronously if possible.
6. Index XML paths if DB supports it.
7. Secure APIs with authentication and encryption.
`

func printHelp() {
	fmt.Fprintf(os.Stderr, "Usage: xmlcatalog [options]\n")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if *h {
		printHelp()
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)

	fmt.Println("Setting up database...")
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database schema recreated")
		os.Exit(0)
	}
	fmt.Println("Database setup complete.")

	// one-shot self-test, finishes before the listener starts
	if err := signature.Run(os.Stdout); err != nil {
		zap.S().Errorf("signature demo failed: %v", err)
	}

	fmt.Print(performanceTips)

	server := webserver.New(application)
	if err := server.Start(); err != nil {
		zap.S().Fatalf("web server stopped: %v", err)
	}
}
