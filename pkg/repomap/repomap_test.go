// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package repomap

import (
	"testing"

	"github.com/petar-djukic/repomapctx/internal/rank"
	"github.com/petar-djukic/repomapctx/pkg/types"
)

func TestApplyGraphImportanceOrdersFilesDescending(t *testing.T) {
	repo := &types.Repository{
		Name: "tinyrepo",
		Files: []types.File{
			{RelativePath: "util.go", Symbols: []types.Symbol{{Name: "Helper", Kind: types.KindFunction}}},
			{RelativePath: "main.go", Symbols: []types.Symbol{
				{Name: "main", Kind: types.KindFunction},
				{Name: "Helper", Kind: types.KindImport},
			}},
			{RelativePath: "unused.go", Symbols: []types.Symbol{{Name: "Dead", Kind: types.KindFunction}}},
		},
	}

	graph := rank.Build(repo.Files)
	ranks := rank.PageRank(graph, rank.DefaultDamping, rank.DefaultIterations)
	applyGraphImportance(repo, graph, ranks)

	for i := 1; i < len(repo.Files); i++ {
		if repo.Files[i-1].Importance < repo.Files[i].Importance {
			t.Fatalf("files not in nonincreasing importance order: %v", repo.Files)
		}
	}
	if repo.Files[0].RelativePath != "util.go" {
		t.Fatalf("expected util.go (referenced by main.go's import) to rank first, got %q", repo.Files[0].RelativePath)
	}
}
