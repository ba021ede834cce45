// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repomap implements spec.md §4.6's RepoMapBuilder: token-budgeted
// condensation of a Repository into a summary, ranked symbol list, module
// graph, and file index. Grounded on
// _examples/original_source/engine/src/repomap/mod.rs's RepoMapGenerator
// pipeline (build_symbol_index -> extract_references -> compute_pagerank ->
// build_ranked_symbols -> build_module_graph -> build_file_index ->
// generate_summary), adapted to the teacher's internal/repomap package
// layout.
package repomap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/petar-djukic/repomapctx/internal/rank"
	"github.com/petar-djukic/repomapctx/pkg/types"
)

// DefaultTokenBudget is spec.md §4.6's default map token budget.
const DefaultTokenBudget = 2000

// DefaultMaxSymbols is spec.md §4.6's default cap on key symbols.
const DefaultMaxSymbols = 50

// Config controls RepoMapBuilder.Build.
type Config struct {
	TokenBudget int
	MaxSymbols  int
	Model       types.Model
}

func (c Config) applyDefaults() Config {
	if c.TokenBudget == 0 {
		c.TokenBudget = DefaultTokenBudget
	}
	if c.MaxSymbols == 0 {
		c.MaxSymbols = DefaultMaxSymbols
	}
	if c.Model == "" {
		c.Model = types.ModelClaude
	}
	return c
}

// Build runs spec.md §4.6's algorithm end to end.
func Build(repo *types.Repository, cfg Config) *types.RepoMap {
	cfg = cfg.applyDefaults()

	graph := rank.Build(repo.Files)
	ranks := rank.PageRank(graph, rank.DefaultDamping, rank.DefaultIterations)
	inDegree := computeInDegree(graph)

	keySymbols := buildKeySymbols(repo.Files, graph, ranks, inDegree, cfg.MaxSymbols)
	moduleGraph := buildModuleGraph(repo.Files, cfg.Model)
	fileIndex := buildFileIndex(repo.Files, cfg.Model)
	summary := buildSummary(repo, moduleGraph)

	tokenCount := 25*len(keySymbols) + 10*len(repo.Files) + 100

	return &types.RepoMap{
		Summary:     summary,
		KeySymbols:  keySymbols,
		ModuleGraph: moduleGraph,
		FileIndex:   fileIndex,
		TokenCount:  tokenCount,
	}
}

func computeInDegree(g *rank.Graph) map[rank.NodeKey]int {
	in := make(map[rank.NodeKey]int, len(g.Nodes))
	for _, e := range g.Edges {
		in[e.To]++
	}
	return in
}

// symbolLookup maps a graph node back to its defining Symbol (and its
// declared kind/signature), so buildKeySymbols can serialize more than the
// bare node key.
type symbolLookup struct {
	file   string
	symbol types.Symbol
}

func buildKeySymbols(files []types.File, g *rank.Graph, ranks map[rank.NodeKey]float64, inDegree map[rank.NodeKey]int, maxSymbols int) []types.RankedSymbol {
	byKey := make(map[rank.NodeKey]symbolLookup, len(g.Nodes))
	for _, f := range files {
		for _, s := range f.Symbols {
			if s.Kind == types.KindImport {
				continue
			}
			key := rank.NodeKey{File: f.RelativePath, Name: s.Name}
			byKey[key] = symbolLookup{file: f.RelativePath, symbol: s}
		}
	}

	type candidate struct {
		key  rank.NodeKey
		rank float64
	}
	candidates := make([]candidate, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		if _, ok := byKey[node]; !ok {
			continue // definitions only; skip bare import nodes
		}
		candidates = append(candidates, candidate{key: node, rank: ranks[node]})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].rank > candidates[j].rank })

	if len(candidates) > maxSymbols {
		candidates = candidates[:maxSymbols]
	}

	out := make([]types.RankedSymbol, 0, len(candidates))
	for i, c := range candidates {
		look := byKey[c.key]
		out = append(out, types.RankedSymbol{
			Name:       look.symbol.Name,
			Kind:       look.symbol.Kind,
			File:       look.file,
			Line:       look.symbol.StartLine,
			Signature:  look.symbol.Signature,
			References: inDegree[c.key],
			Rank:       i + 1,
			Importance: c.rank,
		})
	}
	return out
}

// buildModuleGraph buckets files by first path segment into ModuleNode,
// per spec.md §4.6 step 5. Module-edge computation is deferred (spec.md §9
// Open Question resolution): Edges is always nil.
func buildModuleGraph(files []types.File, model types.Model) types.ModuleGraph {
	type agg struct {
		files  int
		tokens int
	}
	byModule := map[string]*agg{}
	var order []string
	for _, f := range files {
		mod := firstSegment(f.RelativePath)
		a, ok := byModule[mod]
		if !ok {
			a = &agg{}
			byModule[mod] = a
			order = append(order, mod)
		}
		a.files++
		a.tokens += int(f.TokenCounts.Get(model))
	}
	sort.Strings(order)

	nodes := make([]types.ModuleNode, 0, len(order))
	for _, mod := range order {
		a := byModule[mod]
		nodes = append(nodes, types.ModuleNode{Name: mod, Files: a.files, Tokens: a.tokens})
	}
	return types.ModuleGraph{Nodes: nodes}
}

func firstSegment(relativePath string) string {
	if idx := strings.Index(relativePath, "/"); idx >= 0 {
		return relativePath[:idx]
	}
	return "."
}

// buildFileIndex builds spec.md §4.6 step 6's banded, stably-sorted file
// index.
func buildFileIndex(files []types.File, model types.Model) []types.FileIndexEntry {
	entries := make([]types.FileIndexEntry, len(files))
	for i, f := range files {
		entries[i] = types.FileIndexEntry{
			Path:       f.RelativePath,
			Tokens:     f.TokenCounts.Get(model),
			Importance: f.Importance,
			Band:       types.ImportanceBandOf(f.Importance),
		}
	}
	bandRank := map[types.ImportanceBand]int{
		types.BandCritical: 0, types.BandHigh: 1, types.BandNormal: 2, types.BandLow: 3,
	}
	sort.SliceStable(entries, func(i, j int) bool { return bandRank[entries[i].Band] < bandRank[entries[j].Band] })
	return entries
}

// buildSummary renders spec.md §4.6 step 7's three-line plain-text
// paragraph: repo name, primary language, up to three top modules.
func buildSummary(repo *types.Repository, modules types.ModuleGraph) string {
	primaryLang := "unknown"
	maxFiles := -1
	for _, l := range repo.Metadata.Languages {
		if l.Files > maxFiles {
			maxFiles = l.Files
			primaryLang = l.Language
		}
	}

	topModules := append([]types.ModuleNode(nil), modules.Nodes...)
	sort.SliceStable(topModules, func(i, j int) bool { return topModules[i].Files > topModules[j].Files })
	if len(topModules) > 3 {
		topModules = topModules[:3]
	}
	var names []string
	for _, m := range topModules {
		names = append(names, m.Name)
	}

	return fmt.Sprintf(
		"Repository %q contains %d files, primarily %s.\nTop modules: %s.\nSee the key symbols and file index below for a ranked overview.",
		repo.Name, repo.Metadata.TotalFiles, primaryLang, strings.Join(names, ", "),
	)
}
