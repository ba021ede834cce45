// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rank

import (
	"path"
	"strings"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// NodeKey identifies a symbol node in the SymbolGraph: a (file, name) pair,
// per spec.md §4.5 step 1.
type NodeKey struct {
	File string
	Name string
}

// EdgeKind is the typed label spec.md §4.5 assigns to SymbolGraph edges.
// The base contract only guarantees Imports edges; the others are reserved
// extension points (spec.md §4.5 step 3).
type EdgeKind string

const (
	EdgeCalls      EdgeKind = "calls"
	EdgeImports    EdgeKind = "imports"
	EdgeInherits   EdgeKind = "inherits"
	EdgeImplements EdgeKind = "implements"
	EdgeReferences EdgeKind = "references"
)

// Edge is one directed SymbolGraph edge.
type Edge struct {
	From NodeKey
	To   NodeKey
	Kind EdgeKind
}

// Graph is the directed multigraph spec.md §3 describes: build-time only,
// discarded after PageRank computation.
type Graph struct {
	Nodes []NodeKey
	Edges []Edge

	index    map[NodeKey]int // NodeKey -> position in Nodes
	outEdges map[NodeKey][]NodeKey
}

// nameIndex resolves an import symbol's raw text to an in-repo (path, name)
// pair, per spec.md §4.5 step 2: "exact name, then bare filename without
// extension."
type nameIndex struct {
	byName     map[string][]NodeKey
	byFilestem map[string][]NodeKey
}

// buildNameIndex indexes every non-import symbol in files, plus each file's
// own path stem, so import symbols can resolve against either.
func buildNameIndex(files []types.File) *nameIndex {
	idx := &nameIndex{byName: map[string][]NodeKey{}, byFilestem: map[string][]NodeKey{}}
	for _, f := range files {
		stem := strings.TrimSuffix(path.Base(f.RelativePath), path.Ext(f.RelativePath))
		stemKey := NodeKey{File: f.RelativePath, Name: stem}
		idx.byFilestem[stem] = append(idx.byFilestem[stem], stemKey)

		for _, s := range f.Symbols {
			if s.Kind == types.KindImport {
				continue
			}
			key := NodeKey{File: f.RelativePath, Name: s.Name}
			idx.byName[s.Name] = append(idx.byName[s.Name], key)
		}
	}
	return idx
}

func (idx *nameIndex) resolve(rawImport string) (NodeKey, bool) {
	name := normalizeImportName(rawImport)
	if hits, ok := idx.byName[name]; ok && len(hits) > 0 {
		return hits[0], true
	}
	if hits, ok := idx.byFilestem[name]; ok && len(hits) > 0 {
		return hits[0], true
	}
	return NodeKey{}, false
}

// normalizeImportName extracts a plausible bare identifier from raw import
// text ("import util", "from util import x", "use crate::util;") so it can
// be looked up against the name index. Best-effort: drops a trailing
// semicolon, takes the last whitespace-separated field with surrounding
// quotes removed, then its last "::", "." or "/"-separated segment.
func normalizeImportName(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, ";")
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return raw
	}
	last := fields[len(fields)-1]
	last = strings.Trim(last, `"'`)
	for _, sep := range []string{"::", ".", "/"} {
		if idx := strings.LastIndex(last, sep); idx >= 0 {
			last = last[idx+len(sep):]
		}
	}
	return last
}

// Build constructs the SymbolGraph from every symbol across files, adding
// one Imports edge per resolvable import symbol (spec.md §4.5 steps 1-2).
func Build(files []types.File) *Graph {
	g := &Graph{index: map[NodeKey]int{}, outEdges: map[NodeKey][]NodeKey{}}

	for _, f := range files {
		for _, s := range f.Symbols {
			key := NodeKey{File: f.RelativePath, Name: s.Name}
			if _, seen := g.index[key]; seen {
				continue
			}
			g.index[key] = len(g.Nodes)
			g.Nodes = append(g.Nodes, key)
		}
	}

	idx := buildNameIndex(files)
	for _, f := range files {
		for _, s := range f.Symbols {
			if s.Kind != types.KindImport {
				continue
			}
			from := NodeKey{File: f.RelativePath, Name: s.Name}
			to, ok := idx.resolve(s.Name)
			if !ok {
				continue
			}
			g.Edges = append(g.Edges, Edge{From: from, To: to, Kind: EdgeImports})
			g.outEdges[from] = append(g.outEdges[from], to)
		}
	}

	return g
}

// OutDegree returns the number of out-edges for node n.
func (g *Graph) OutDegree(n NodeKey) int {
	return len(g.outEdges[n])
}

// OutNeighbors returns the nodes n points to.
func (g *Graph) OutNeighbors(n NodeKey) []NodeKey {
	return g.outEdges[n]
}
