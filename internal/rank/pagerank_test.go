// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rank

import (
	"math"
	"testing"
)

func TestPageRankDanglingScenario(t *testing.T) {
	// A -> B, and an isolated C, per spec.md §8 seed scenario 6.
	a := NodeKey{File: "a.go", Name: "A"}
	b := NodeKey{File: "b.go", Name: "B"}
	c := NodeKey{File: "c.go", Name: "C"}

	g := &Graph{
		Nodes:    []NodeKey{a, b, c},
		outEdges: map[NodeKey][]NodeKey{a: {b}},
	}

	ranks := PageRank(g, DefaultDamping, DefaultIterations)

	var sum float64
	for _, r := range ranks {
		sum += r
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Fatalf("expected ranks to sum to ~1, got %f", sum)
	}
	if ranks[c] <= 0 {
		t.Fatalf("expected rank(C) > 0, got %f", ranks[c])
	}
	if ranks[b] <= ranks[a] {
		t.Fatalf("expected rank(B) > rank(A), got B=%f A=%f", ranks[b], ranks[a])
	}
}

func TestPageRankEmptyGraph(t *testing.T) {
	g := &Graph{outEdges: map[NodeKey][]NodeKey{}}
	ranks := PageRank(g, DefaultDamping, DefaultIterations)
	if len(ranks) != 0 {
		t.Fatalf("expected empty rank map, got %+v", ranks)
	}
}
