// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rank

import (
	"testing"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

func TestBuildResolvesImportEdge(t *testing.T) {
	files := []types.File{
		{
			RelativePath: "src/mod.py",
			Symbols: []types.Symbol{
				{Name: "import util", Kind: types.KindImport},
			},
		},
		{
			RelativePath: "src/util.py",
			Symbols: []types.Symbol{
				{Name: "util", Kind: types.KindFunction},
			},
		},
	}

	g := Build(files)
	if len(g.Edges) != 1 {
		t.Fatalf("expected exactly one Imports edge, got %d: %+v", len(g.Edges), g.Edges)
	}
	if g.Edges[0].Kind != EdgeImports {
		t.Fatalf("expected Imports edge kind, got %s", g.Edges[0].Kind)
	}
	if g.Edges[0].To.Name != "util" {
		t.Fatalf("expected edge to resolve to 'util', got %+v", g.Edges[0].To)
	}
}
