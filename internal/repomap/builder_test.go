// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package repomap

import (
	"testing"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

func strp(s string) *string { return &s }

func TestBuildRanksImportedSymbolHigher(t *testing.T) {
	repo := &types.Repository{
		Name: "tiny",
		Files: []types.File{
			{
				RelativePath: "mod.py",
				Importance:   0.9,
				Symbols: []types.Symbol{
					{Name: "util", Kind: types.KindImport, StartLine: 1, EndLine: 1},
					{Name: "run", Kind: types.KindFunction, Signature: strp("def run():"), StartLine: 3, EndLine: 5},
				},
			},
			{
				RelativePath: "util.py",
				Importance:   0.95,
				Symbols: []types.Symbol{
					{Name: "util", Kind: types.KindFunction, Signature: strp("def util():"), StartLine: 1, EndLine: 2},
				},
			},
		},
		Metadata: types.Metadata{
			TotalFiles: 2,
			Languages:  []types.LanguageStats{{Language: "python", Files: 2, Percentage: 100}},
		},
	}

	out := Build(repo, Config{})

	if len(out.KeySymbols) != 2 {
		t.Fatalf("expected 2 key symbols, got %d: %+v", len(out.KeySymbols), out.KeySymbols)
	}
	if out.KeySymbols[0].Name != "util" {
		t.Fatalf("expected util (the referenced symbol) to rank first, got %s", out.KeySymbols[0].Name)
	}
	if out.KeySymbols[0].Rank != 1 {
		t.Fatalf("expected rank 1 to be 1-indexed, got %d", out.KeySymbols[0].Rank)
	}
	if out.KeySymbols[0].References != 1 {
		t.Fatalf("expected util to have 1 reference (the import edge), got %d", out.KeySymbols[0].References)
	}

	if len(out.ModuleGraph.Nodes) != 1 || out.ModuleGraph.Nodes[0].Name != "." {
		t.Fatalf("expected a single root module bucket, got %+v", out.ModuleGraph.Nodes)
	}
	if len(out.FileIndex) != 2 {
		t.Fatalf("expected 2 file index entries, got %d", len(out.FileIndex))
	}
	if out.Summary == "" {
		t.Fatal("expected nonempty summary")
	}
}

func TestBuildEmptyRepository(t *testing.T) {
	repo := &types.Repository{Name: "empty"}
	out := Build(repo, Config{})
	if len(out.KeySymbols) != 0 {
		t.Fatalf("expected no key symbols, got %d", len(out.KeySymbols))
	}
	if len(out.FileIndex) != 0 {
		t.Fatalf("expected no file index entries, got %d", len(out.FileIndex))
	}
}
