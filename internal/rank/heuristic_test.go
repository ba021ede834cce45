// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rank

import (
	"testing"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

func TestApplyHeuristicOrdering(t *testing.T) {
	files := []types.File{
		{RelativePath: "tests/foo_test.go"},
		{RelativePath: "src/main.rs"},
		{RelativePath: "vendor/dep/dep.go"},
	}
	ranked := ApplyHeuristic(files)

	if ranked[0].RelativePath != "src/main.rs" {
		t.Fatalf("expected src/main.rs to rank first, got %+v", ranked)
	}
	if ranked[0].Importance < 0.9 {
		t.Fatalf("expected src/main.rs importance >= 0.9 in fast mode, got %f", ranked[0].Importance)
	}
	for _, f := range ranked {
		if f.Importance < 0 || f.Importance > 1 {
			t.Fatalf("importance out of bounds: %+v", f)
		}
	}
}
