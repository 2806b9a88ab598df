package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jdlouhy/docketscan/internal/config"
)

func TestPrintVersion(t *testing.T) {
	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	oldVersion := version
	version = "1.2.3"
	printVersion()
	version = oldVersion

	w.Close()
	os.Stdout = originalStdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to read captured output: %v", err)
	}

	if !strings.Contains(string(out), "Version: 1.2.3") {
		t.Errorf("printVersion() output missing version, got: %s", out)
	}
}

func TestSetupLogging(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "debug"
	setupLogging(cfg)

	cfg.LogLevel = "info"
	setupLogging(cfg)
}

func TestRunBadURL(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputDir = t.TempDir()
	cfg.DocketURL = "http://127.0.0.1:0/docket.pdf"

	if err := run(cfg); err == nil {
		t.Error("run() error = nil for unreachable URL, want error")
	}
}
