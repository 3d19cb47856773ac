package logger

import (
	"bytes"
	stdjson "encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_StderrWarnByDefault(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Stderr: &buf})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Info("quiet.info")
	L().Warn("loud.warn", "k", "v")

	out := buf.String()
	if strings.Contains(out, "quiet.info") {
		t.Fatalf("did not expect info records without debug, got %q", out)
	}

	var rec map[string]any
	if err := stdjson.Unmarshal([]byte(strings.TrimSpace(out)), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", out, err)
	}
	if rec["msg"] != "loud.warn" || rec["k"] != "v" {
		t.Fatalf("unexpected record %v", rec)
	}
	if ts, _ := rec["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got %v", rec["time"])
	}
	if Path() != "" {
		t.Fatalf("expected no log path for stderr, got %q", Path())
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready, got %v", err)
	}
}

func TestSetup_DebugEmitsDebug(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Stderr: &buf, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Debug("corpus.loaded")
	if !strings.Contains(buf.String(), "corpus.loaded") {
		t.Fatalf("expected debug record, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"source"`) {
		t.Fatalf("expected source location in debug mode, got %q", buf.String())
	}
}

func TestSetup_FileRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gendata.log")

	cleanup, err := Setup(Config{File: path})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	L().Error("generate.failed", "err", "boom")

	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "generate.failed") {
		t.Fatalf("expected record in log file, got %q", string(b))
	}
}

func TestCleanup_ResetsToDiscard(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Stderr: &buf})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	L().Error("after.cleanup")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written after cleanup, got %q", buf.String())
	}
	if err := IsReady(); err == nil {
		t.Fatalf("expected logger not ready after cleanup")
	}
	if !InitTime().IsZero() {
		t.Fatalf("expected zero init time after cleanup")
	}
}
