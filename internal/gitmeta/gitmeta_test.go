// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package gitmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

func TestPopulateFromRawHeadDetachedCommit(t *testing.T) {
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("abcdef1234567890\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var meta types.Metadata
	populateFromRawHead(dir, &meta)

	if meta.Commit == nil || *meta.Commit != "abcdef1" {
		t.Fatalf("expected 7-char commit, got %+v", meta.Commit)
	}
	if meta.Branch != nil {
		t.Fatal("expected no branch for a detached HEAD")
	}
}

func TestPopulateFromRawHeadBranchRef(t *testing.T) {
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "refs", "heads", "main"), []byte("1234567890abcdef\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var meta types.Metadata
	populateFromRawHead(dir, &meta)

	if meta.Branch == nil || *meta.Branch != "main" {
		t.Fatalf("expected branch main, got %+v", meta.Branch)
	}
	if meta.Commit == nil || *meta.Commit != "1234567" {
		t.Fatalf("expected 7-char commit, got %+v", meta.Commit)
	}
}

func TestPopulateNoGitDirLeavesMetaUnchanged(t *testing.T) {
	dir := t.TempDir()
	var meta types.Metadata
	Populate(dir, &meta)
	if meta.Branch != nil || meta.Commit != nil {
		t.Fatal("expected no VCS metadata for a non-git directory")
	}
}
