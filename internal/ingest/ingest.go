// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ingest implements spec.md §4.3: the Ingestor orchestrates
// Walker -> parallel read+parse -> Repository assembly. Phase B's
// worker-pool shape is grounded on
// _examples/petar-djukic-go-coder/internal/ast/scanner.go's ScanDir
// (jobs/results channels + sync.WaitGroup), generalized from go/parser
// single-language parsing to the multi-language tree-sitter extraction in
// internal/symbols, and from a fixed concurrency count to a
// context-cancellable errgroup per SPEC_FULL.md §5.
package ingest

import (
	"context"
	"log/slog"
	"os"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/repomapctx/internal/langmap"
	"github.com/petar-djukic/repomapctx/internal/symbols"
	"github.com/petar-djukic/repomapctx/internal/tokenizer"
	"github.com/petar-djukic/repomapctx/internal/treeview"
	"github.com/petar-djukic/repomapctx/internal/walker"
	"github.com/petar-djukic/repomapctx/pkg/types"
)

// Mode selects Phase B's per-file processing depth (spec.md §4.3 Phase B).
type Mode int

const (
	// ModeMetadataOnly reads no content; token counts are size-derived.
	ModeMetadataOnly Mode = iota
	// ModeReadOnly reads UTF-8 content and computes exact token counts but
	// skips symbol extraction.
	ModeReadOnly
	// ModeFull reads content and extracts symbols via a thread-local parser
	// pool.
	ModeFull
)

// Config mirrors spec.md §4.3's ScanConfig plus the walker's own knobs.
type Config struct {
	Walker      walker.Config
	ReadContent bool
	SkipSymbols bool
	Concurrency int
}

func (c Config) mode() Mode {
	if !c.ReadContent {
		return ModeMetadataOnly
	}
	if c.SkipSymbols {
		return ModeReadOnly
	}
	return ModeFull
}

// Ingestor produces a Repository from a root path, per spec.md §4.3.
type Ingestor struct {
	Logger *slog.Logger

	droppedFiles atomic.Int64
	parseErrors  atomic.Int64
}

// New returns an Ingestor that logs to logger (never nil; callers should
// pass slog.Default() if they have no preference).
func New(logger *slog.Logger) *Ingestor {
	return &Ingestor{Logger: logger}
}

// Stats reports per-file failure counts absorbed locally during the most
// recent Run (spec.md §7's failure-isolation contract), for the Scanner
// facade's partial-failure statistics.
type Stats struct {
	DroppedFiles int64
	ParseErrors  int64
}

// LastStats returns the failure counts from the most recent Run call.
func (in *Ingestor) LastStats() Stats {
	return Stats{DroppedFiles: in.droppedFiles.Load(), ParseErrors: in.parseErrors.Load()}
}

// Run executes all three phases and returns the assembled Repository.
// Per spec.md §5, ctx is an optional cooperative cancellation signal;
// workers check it between files and Run returns a partial Repository with
// Metadata.Partial=true if cancelled mid-flight, rather than an error.
func (in *Ingestor) Run(ctx context.Context, root string, cfg Config) (*types.Repository, error) {
	in.droppedFiles.Store(0)
	in.parseErrors.Store(0)

	// Phase A: sequential walk.
	fileInfos, err := walker.Walk(in.Logger, root, cfg.Walker)
	if err != nil {
		return nil, err
	}

	// Phase B: parallel map over FileInfo.
	files, partial := in.phaseB(ctx, fileInfos, cfg)

	// Phase C: sequential reduce.
	repo := in.phaseC(root, files)
	repo.Metadata.Partial = partial
	return repo, nil
}

func (in *Ingestor) phaseB(ctx context.Context, infos []walker.FileInfo, cfg Config) ([]types.File, bool) {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	if concurrency > len(infos) {
		concurrency = len(infos)
	}
	mode := cfg.mode()

	results := make([]*types.File, len(infos))
	jobs := make(chan int, len(infos))
	for i := range infos {
		jobs <- i
	}
	close(jobs)

	var g errgroup.Group
	var cancelled atomic.Bool
	for w := 0; w < concurrency; w++ {
		g.Go(func() error {
			pool := symbols.NewPool() // one thread-local pool for this worker's whole lifetime (spec.md §5)
			for i := range jobs {
				if ctx != nil && ctx.Err() != nil {
					cancelled.Store(true)
					return nil
				}
				results[i] = in.processFile(infos[i], mode, pool)
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]types.File, 0, len(infos))
	for _, f := range results {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out, cancelled.Load()
}

// processFile realizes spec.md §4.3 Phase B's per-mode behavior for one
// file. Returns nil if the file must be dropped (I/O error or UTF-8 decode
// failure), per spec.md §7.
func (in *Ingestor) processFile(info walker.FileInfo, mode Mode, pool *symbols.Pool) *types.File {
	f := &types.File{
		Path:         info.Path,
		RelativePath: info.RelativePath,
		Language:     info.Language,
		SizeBytes:    info.SizeBytes,
	}

	if mode == ModeMetadataOnly {
		f.TokenCounts = estimateFromSize(info.SizeBytes)
		return f
	}

	raw, err := os.ReadFile(info.Path)
	if err != nil {
		in.Logger.Warn("file read error", "path", info.Path, "error", err)
		in.droppedFiles.Add(1)
		return nil
	}
	if !utf8.Valid(raw) {
		in.Logger.Warn("file is not valid UTF-8, dropping", "path", info.Path)
		in.droppedFiles.Add(1)
		return nil
	}

	content := string(raw)
	f.Content = &content
	f.TokenCounts = tokenizer.CountAll(content)

	if mode == ModeFull && info.Language != nil && symbols.SupportedLanguages[*info.Language] {
		parser, ok := pool.Get(*info.Language)
		if ok {
			syms, parseErr := parser.Extract(raw, *info.Language)
			if parseErr != nil {
				in.Logger.Warn("parse error, retaining file with empty symbols", "path", info.Path, "error", parseErr)
				in.parseErrors.Add(1)
			}
			f.Symbols = syms
		}
	}

	return f
}

// phaseC aggregates LanguageStats, sums TokenCounts, computes total line
// count, renders the directory tree, and builds the external-dependency
// list, per spec.md §4.3 Phase C. Files are sorted by RelativePath
// (spec.md: "no ordering guarantee until after Phase C sorts the file list
// deterministically").
func (in *Ingestor) phaseC(root string, files []types.File) *types.Repository {
	sort.Slice(files, func(i, j int) bool { return files[i].RelativePath < files[j].RelativePath })

	repo := &types.Repository{
		Name:     path.Base(path.Clean(root)),
		RootPath: root,
		Files:    files,
	}

	langCounts := map[string]int{}
	totalLines := 0
	var relPaths []string
	for _, f := range files {
		relPaths = append(relPaths, f.RelativePath)
		if f.Language != nil {
			langCounts[*f.Language]++
		}
		if f.Content != nil {
			totalLines += strings.Count(*f.Content, "\n")
		}
	}

	var stats []types.LanguageStats
	total := len(files)
	for lang, count := range langCounts {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(count) / float64(total)
		}
		stats = append(stats, types.LanguageStats{Language: lang, Files: count, Percentage: pct})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Files > stats[j].Files })

	tree := treeview.Build(relPaths)

	repo.Metadata = types.Metadata{
		TotalFiles:           total,
		TotalLines:           totalLines,
		TotalTokens:          repo.TotalTokens(),
		Languages:            stats,
		DirectoryStructure:   &tree,
		ExternalDependencies: externalDependencies(files),
	}
	return repo
}

// externalDependencies scans import symbols and classifies names as "not
// locally defined" against the repository's own symbol set (spec.md §4.3
// Phase C).
func externalDependencies(files []types.File) []string {
	local := map[string]bool{}
	for _, f := range files {
		for _, s := range f.Symbols {
			if s.Kind != types.KindImport {
				local[s.Name] = true
			}
		}
	}

	seen := map[string]bool{}
	var deps []string
	for _, f := range files {
		for _, s := range f.Symbols {
			if s.Kind != types.KindImport {
				continue
			}
			name := strings.TrimSpace(s.Name)
			if local[name] || seen[name] {
				continue
			}
			seen[name] = true
			deps = append(deps, name)
		}
	}
	sort.Strings(deps)
	return deps
}

func estimateFromSize(sizeBytes int64) types.TokenCounts {
	var tc types.TokenCounts
	approxChars := int(sizeBytes)
	for _, m := range types.Models {
		tc = tc.Set(m, uint32(approxChars/4))
	}
	return tc
}
