// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// File is one source file recovered by the ingestion pipeline.
//
// Invariant: Content, when present, is UTF-8. Binary files never reach this
// stage. TokenCounts is consistent with Content when Content is present;
// otherwise it is a size-derived estimate. RelativePath is unique within a
// Repository.
type File struct {
	Path         string
	RelativePath string
	Language     *string
	SizeBytes    int64
	TokenCounts  TokenCounts
	Symbols      []Symbol
	Importance   float64
	Content      *string
}

// LanguageStats summarizes one language's footprint across a Repository.
type LanguageStats struct {
	Language   string
	Files      int
	Percentage float64
}

// GitCommitInfo is one entry in a repository's recent commit history.
// Supplemental to spec.md's minimal branch/commit contract (see SPEC_FULL.md
// §6); populated on a best-effort basis and never required for a run to
// succeed.
type GitCommitInfo struct {
	ShortHash string
	Author    string
	Date      string
	Message   string
}

// GitChangedFile describes one uncommitted working-tree change.
type GitChangedFile struct {
	Path   string
	Status string
}

// GitHistory is the supplemental git metadata block. Nil when neither
// recent commits nor working-tree changes could be read through go-git
// (including when the repository has no VCS metadata).
type GitHistory struct {
	Commits      []GitCommitInfo
	ChangedFiles []GitChangedFile
}

// Metadata aggregates repository-wide facts computed during Phase C of
// ingestion.
type Metadata struct {
	Description          *string
	TotalFiles           int
	TotalLines           int
	TotalTokens          TokenCounts
	Languages            []LanguageStats
	DirectoryStructure   *string
	ExternalDependencies []string
	Branch               *string
	Commit               *string
	GitHistory           *GitHistory
	Partial              bool
}

// Repository is the aggregate the whole pipeline builds once per
// invocation and passes from stage to stage: Ingestor produces it, the
// Ranker reorders it and sets Importance, ContentTransform rewrites
// Content in place, and the Formatter + RepoMapBuilder consume it
// read-only.
type Repository struct {
	Name     string
	RootPath string
	Files    []File
	Metadata Metadata
}

// TotalTokens sums TokenCounts across every file. Exposed so callers (and
// tests asserting the token-additivity invariant) don't have to reimplement
// the reduction.
func (r Repository) TotalTokens() TokenCounts {
	all := make([]TokenCounts, len(r.Files))
	for i, f := range r.Files {
		all[i] = f.TokenCounts
	}
	return SumTokenCounts(all)
}
