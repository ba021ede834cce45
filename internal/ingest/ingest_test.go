// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/petar-djukic/repomapctx/internal/walker"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunTinyRustProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nname = \"tiny\"\n")
	writeFile(t, filepath.Join(dir, "src", "main.rs"), "fn main() {}\n")
	writeFile(t, filepath.Join(dir, ".gitignore"), "target/\n")

	in := New(testLogger())
	repo, err := in.Run(context.Background(), dir, Config{
		Walker:      walker.Config{RespectGitignore: true},
		ReadContent: true,
		SkipSymbols: false,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(repo.Files) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(repo.Files), repo.Files)
	}
	if repo.Metadata.DirectoryStructure == nil || *repo.Metadata.DirectoryStructure == "" {
		t.Fatal("expected a nonempty directory structure")
	}
}

func TestRunBinarySkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")
	if err := os.WriteFile(filepath.Join(dir, "asset.bin"), []byte{0, 1, 2, 0xff, 0xfe, 0xfd}, 0o644); err != nil {
		t.Fatal(err)
	}

	in := New(testLogger())
	repo, err := in.Run(context.Background(), dir, Config{ReadContent: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range repo.Files {
		if f.RelativePath == "asset.bin" {
			t.Fatal("expected asset.bin to be excluded")
		}
	}
}

func TestRunMetadataOnlyModeSkipsContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n\nfunc main() {}\n")

	in := New(testLogger())
	repo, err := in.Run(context.Background(), dir, Config{ReadContent: false})
	if err != nil {
		t.Fatal(err)
	}
	if len(repo.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(repo.Files))
	}
	if repo.Files[0].Content != nil {
		t.Fatal("expected metadata-only mode to skip content")
	}
	if repo.Files[0].TokenCounts.Claude == 0 {
		t.Fatal("expected size-derived token estimate to be nonzero")
	}
}

func TestFileUniquenessInvariant(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "package main\n")
	writeFile(t, filepath.Join(dir, "sub", "a.go"), "package sub\n")

	in := New(testLogger())
	repo, err := in.Run(context.Background(), dir, Config{ReadContent: true})
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, f := range repo.Files {
		if seen[f.RelativePath] {
			t.Fatalf("duplicate relative path: %s", f.RelativePath)
		}
		seen[f.RelativePath] = true
	}
}
