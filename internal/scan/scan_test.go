// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/petar-djukic/repomapctx/internal/ingest"
	"github.com/petar-djukic/repomapctx/internal/secscan"
)

type stubScanner struct{ hits int }

func (s stubScanner) Scan(text string, path string) []secscan.Finding {
	if s.hits == 0 {
		return nil
	}
	out := make([]secscan.Finding, s.hits)
	return out
}

func TestRunReportsStats(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.SecretScan = stubScanner{hits: 2}

	repo, stats, err := s.Run(context.Background(), dir, ingest.Config{ReadContent: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(repo.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(repo.Files))
	}
	if stats.TotalFiles != 1 {
		t.Fatalf("expected TotalFiles=1, got %d", stats.TotalFiles)
	}
	if stats.SecretFindings != 2 {
		t.Fatalf("expected 2 secret findings, got %d", stats.SecretFindings)
	}
}
