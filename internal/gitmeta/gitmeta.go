// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitmeta populates a Repository's branch/commit fields and its
// supplemental GitHistory block (spec.md §6 plus SPEC_FULL.md's
// supplemented git-history feature). The core contract (spec.md §6) only
// requires reading .git/HEAD and the ref file it points to; this package
// prefers go-git/go-git/v5 when available and falls back to raw file
// parsing, so a corrupt or unusual .git layout degrades to None rather than
// failing the run. The repo-open/best-effort-degrade shape is grounded on
// the teacher's now-adapted internal/git wrapper, which used go-git's
// PlainOpen the same way for its own working-tree metadata needs.
package gitmeta

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// MaxCommits caps how many recent commits Populate includes in GitHistory.
const MaxCommits = 10

// Populate fills branch, commit, and (best-effort) GitHistory on meta from
// the repository rooted at root. Absent or malformed VCS metadata leaves
// meta unchanged rather than returning an error (spec.md §6).
func Populate(root string, meta *types.Metadata) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		populateFromRawHead(root, meta)
		return
	}

	head, err := repo.Head()
	if err != nil {
		return
	}

	if head.Name().IsBranch() {
		branch := head.Name().Short()
		meta.Branch = &branch
	}
	commit := shortHash(head.Hash().String())
	meta.Commit = &commit

	history := &types.GitHistory{}
	if logIter, err := repo.Log(&git.LogOptions{From: head.Hash()}); err == nil {
		count := 0
		_ = logIter.ForEach(func(c *object.Commit) error {
			if count >= MaxCommits {
				return storer.ErrStop
			}
			history.Commits = append(history.Commits, types.GitCommitInfo{
				ShortHash: shortHash(c.Hash.String()),
				Author:    c.Author.Name,
				Date:      c.Author.When.Format("2006-01-02"),
				Message:   firstLine(c.Message),
			})
			count++
			return nil
		})
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			for path, s := range status {
				history.ChangedFiles = append(history.ChangedFiles, types.GitChangedFile{
					Path:   path,
					Status: statusLabel(s.Worktree),
				})
			}
		}
	}

	if len(history.Commits) > 0 || len(history.ChangedFiles) > 0 {
		meta.GitHistory = history
	}
}

// populateFromRawHead handles the spec.md §6 baseline case directly: read
// .git/HEAD, follow a "ref: refs/heads/X" indirection to its own file, and
// take the first 7 characters as commit. Any failure leaves meta
// unchanged.
func populateFromRawHead(root string, meta *types.Metadata) {
	headPath := filepath.Join(root, ".git", "HEAD")
	headContent, err := os.ReadFile(headPath)
	if err != nil {
		return
	}
	head := strings.TrimSpace(string(headContent))

	if !strings.HasPrefix(head, "ref: ") {
		commit := shortHash(head)
		meta.Commit = &commit
		return
	}

	refPath := strings.TrimPrefix(head, "ref: ")
	branch := filepath.Base(refPath)
	meta.Branch = &branch

	refContent, err := os.ReadFile(filepath.Join(root, ".git", refPath))
	if err != nil {
		return
	}
	commit := shortHash(strings.TrimSpace(string(refContent)))
	meta.Commit = &commit
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func statusLabel(code git.StatusCode) string {
	switch code {
	case 'M':
		return "modified"
	case 'A':
		return "added"
	case 'D':
		return "deleted"
	case '?':
		return "untracked"
	case 'R':
		return "renamed"
	default:
		return "changed"
	}
}
