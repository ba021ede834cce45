// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package walker

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
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

func TestWalkRespectsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\n")
	writeFile(t, filepath.Join(dir, "src", "main.rs"), "fn main() {}\n")
	writeFile(t, filepath.Join(dir, ".gitignore"), "target/\n")
	writeFile(t, filepath.Join(dir, "target", "debug.rs"), "// build artifact\n")

	files, err := Walk(testLogger(), dir, Config{RespectGitignore: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(files), files)
	}
	for _, f := range files {
		if f.RelativePath == "target/debug.rs" {
			t.Fatalf("target/debug.rs should have been excluded")
		}
	}
}

func TestWalkSizeGate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small.go"), "package main\n")
	writeFile(t, filepath.Join(dir, "big.go"), string(make([]byte, 200)))

	files, err := Walk(testLogger(), dir, Config{MaxFileSize: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].RelativePath != "small.go" {
		t.Fatalf("expected only small.go to survive, got %+v", files)
	}
}

func TestWalkBinaryExclusion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "asset.bin"), "\x00\x01\x02\xff\xfe\xfd")
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")

	files, err := Walk(testLogger(), dir, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].RelativePath != "main.go" {
		t.Fatalf("expected only main.go, got %+v", files)
	}
}

func TestWalkHiddenExclusion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "SECRET=1\n")
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")

	files, err := Walk(testLogger(), dir, Config{IncludeHidden: false})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].RelativePath != "main.go" {
		t.Fatalf("expected hidden file excluded, got %+v", files)
	}
}
