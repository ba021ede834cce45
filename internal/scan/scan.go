// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scan implements spec.md §2's "Scanner facade": it holds the
// ingestion pipeline's partial-failure policy and run statistics, and
// optionally runs a secscan.Scanner predicate over file content. It is a
// thin orchestration layer over internal/ingest; the failure-isolation
// policy itself (drop and continue) lives in internal/ingest per spec.md
// §7, this package only surfaces the resulting counts.
package scan

import (
	"context"
	"log/slog"

	"github.com/petar-djukic/repomapctx/internal/ingest"
	"github.com/petar-djukic/repomapctx/internal/secscan"
	"github.com/petar-djukic/repomapctx/pkg/types"
)

// Stats summarizes one Run's outcome.
type Stats struct {
	TotalFiles     int
	DroppedFiles   int64
	ParseErrors    int64
	Partial        bool
	SecretFindings int
}

// Scanner orchestrates Ingestor plus an optional secret-scan pass.
type Scanner struct {
	Logger      *slog.Logger
	SecretScan  secscan.Scanner
	ingestor    *ingest.Ingestor
}

// New returns a Scanner with secret scanning disabled (secscan.Noop).
// Callers that have a concrete secscan.Scanner implementation should set
// SecretScan directly before calling Run.
func New(logger *slog.Logger) *Scanner {
	return &Scanner{Logger: logger, SecretScan: secscan.Noop{}, ingestor: ingest.New(logger)}
}

// Run ingests root and returns the Repository plus run statistics.
func (s *Scanner) Run(ctx context.Context, root string, cfg ingest.Config) (*types.Repository, Stats, error) {
	repo, err := s.ingestor.Run(ctx, root, cfg)
	if err != nil {
		return nil, Stats{}, err
	}

	istats := s.ingestor.LastStats()
	stats := Stats{
		TotalFiles:   len(repo.Files),
		DroppedFiles: istats.DroppedFiles,
		ParseErrors:  istats.ParseErrors,
		Partial:      repo.Metadata.Partial,
	}

	if s.SecretScan != nil {
		for _, f := range repo.Files {
			if f.Content == nil {
				continue
			}
			stats.SecretFindings += len(s.SecretScan.Scan(*f.Content, f.RelativePath))
		}
	}

	return repo, stats, nil
}
