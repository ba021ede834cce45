// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repomap is the public library facade: it wires
// Walker -> Ingestor -> Ranker -> ContentTransform -> RepoMapBuilder ->
// Formatter -> BudgetEnforcer into the single entry point spec.md §1
// describes ("given a repository root, it walks the file tree, ... and
// emits a single self-describing document"). Grounded on the teacher's
// pkg/coder package, which played the analogous "public facade wrapping
// an internal pipeline" role for the coding-agent domain.
package repomap

import (
	"context"
	"log/slog"
	"sort"

	"github.com/petar-djukic/repomapctx/internal/budget"
	"github.com/petar-djukic/repomapctx/internal/format"
	"github.com/petar-djukic/repomapctx/internal/gitmeta"
	"github.com/petar-djukic/repomapctx/internal/ingest"
	"github.com/petar-djukic/repomapctx/internal/rank"
	repomapbuilder "github.com/petar-djukic/repomapctx/internal/repomap"
	"github.com/petar-djukic/repomapctx/internal/scan"
	"github.com/petar-djukic/repomapctx/internal/transform"
	"github.com/petar-djukic/repomapctx/pkg/types"
)

// Mode selects the importance model (spec.md §4.4/§4.5).
type Mode int

const (
	// ModeHeuristic is the cheap path-based scorer (fast mode).
	ModeHeuristic Mode = iota
	// ModeFull runs the symbol graph + PageRank (full mode).
	ModeFull
)

// Options configures a single Run invocation. Content transforms are
// derived from Compression alone; Options has no separate remove-comments,
// remove-empty-lines, truncate-base64, top-files, include-tests or
// include-docs settings.
type Options struct {
	Format      format.Kind
	Model       types.Model
	Compression transform.Level
	Mode        Mode

	MapBudget  int
	MaxSymbols int
	MaxTokens  int

	Ingest ingest.Config

	ShowLineNumbers        bool
	ShowFileSummary        bool
	ShowDirectoryStructure bool

	Logger *slog.Logger
}

// Result is everything a caller might want out of one Run: the assembled
// Repository, the computed RepoMap, run statistics, and the final
// rendered document.
type Result struct {
	Repository *types.Repository
	RepoMap    *types.RepoMap
	Stats      scan.Stats
	Document   string
}

// Run executes the full pipeline against root and returns the rendered
// document plus the intermediate artifacts.
func Run(ctx context.Context, root string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	scanner := scan.New(logger)
	repo, stats, err := scanner.Run(ctx, root, opts.Ingest)
	if err != nil {
		return nil, err
	}

	gitmeta.Populate(root, &repo.Metadata)

	switch opts.Mode {
	case ModeFull:
		graph := rank.Build(repo.Files)
		ranks := rank.PageRank(graph, rank.DefaultDamping, rank.DefaultIterations)
		applyGraphImportance(repo, graph, ranks)
	default:
		repo.Files = rank.ApplyHeuristic(repo.Files)
	}

	transformOpts := transform.OptionsForLevel(opts.Compression)
	for i, f := range repo.Files {
		if f.Content == nil {
			continue
		}
		lang := ""
		if f.Language != nil {
			lang = *f.Language
		}
		content := transform.Apply(*f.Content, lang, transformOpts)
		repo.Files[i].Content = &content
	}

	rm := repomapbuilder.Build(repo, repomapbuilder.Config{TokenBudget: opts.MapBudget, MaxSymbols: opts.MaxSymbols, Model: opts.Model})

	formatter := format.ByKind(opts.Format)
	document := formatter.Format(repo, rm, format.Options{
		Model:                  opts.Model,
		ShowLineNumbers:        opts.ShowLineNumbers,
		ShowFileSummary:        opts.ShowFileSummary,
		ShowDirectoryStructure: opts.ShowDirectoryStructure,
	})
	document = budget.Enforce(document, opts.Model, opts.MaxTokens)

	return &Result{Repository: repo, RepoMap: rm, Stats: stats, Document: document}, nil
}

// applyGraphImportance normalizes PageRank scores into each File's
// Importance ∈ [0,1] by taking the max symbol rank per file (full mode's
// analogue of ApplyHeuristic's per-file importance assignment), then
// stably reorders repo.Files into nonincreasing Importance order, matching
// ApplyHeuristic's ranked ordering (spec.md §4.5 / §8's full-mode sort
// stability invariant).
func applyGraphImportance(repo *types.Repository, g *rank.Graph, ranks map[rank.NodeKey]float64) {
	maxRank := 0.0
	for _, r := range ranks {
		if r > maxRank {
			maxRank = r
		}
	}

	byFile := map[string]float64{}
	if maxRank > 0 {
		for _, node := range g.Nodes {
			if r := ranks[node] / maxRank; r > byFile[node.File] {
				byFile[node.File] = r
			}
		}
	}
	for i, f := range repo.Files {
		repo.Files[i].Importance = byFile[f.RelativePath]
	}

	sort.SliceStable(repo.Files, func(i, j int) bool {
		return repo.Files[i].Importance > repo.Files[j].Importance
	})
}
