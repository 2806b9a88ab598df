package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jdlouhy/docketscan/internal/config"
	"github.com/jdlouhy/docketscan/internal/docket"
	"github.com/jdlouhy/docketscan/internal/pdf"
	"github.com/jdlouhy/docketscan/internal/report"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the log level
func setupLogging(cfg *config.Config) {
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

// run executes one scan: fetch, validate, extract, segment, report.
// Any failure aborts the run; a partial report is never written.
func run(cfg *config.Config) error {
	runDate := time.Now()
	pdfPath := filepath.Join(cfg.OutputDir, "docket.pdf")

	fetcher := pdf.NewFetcher(cfg.MaxFileSize)
	log.Printf("Downloading docket from %s", cfg.DocketURL)
	if err := fetcher.Fetch(context.Background(), cfg.DocketURL, pdfPath); err != nil {
		return err
	}
	if !cfg.KeepPDF {
		defer os.Remove(pdfPath)
	}

	validator := pdf.NewValidator(cfg.MaxFileSize)
	if err := validator.ValidateFile(pdfPath); err != nil {
		return err
	}

	hour, minute := cfg.HearingClock()
	reporter := docket.NewReporter(cfg.HearingWeekday(), hour, minute, cfg.Courtroom)
	service := docket.NewService(reporter)

	source := pdf.NewFileSource(pdf.NewReader(cfg.MaxFileSize), pdfPath)
	rows, err := service.Run(source, runDate)
	if err != nil {
		return err
	}

	writer := report.NewWriter(cfg.OutputDir)
	reportPath, err := writer.Write(rows, runDate)
	if err != nil {
		return err
	}

	log.Printf("Wrote %d rows to %s", len(rows), reportPath)
	return nil
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("docketscan\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
