// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rank

// DefaultDamping is spec.md §4.5's damping factor.
const DefaultDamping = 0.85

// DefaultIterations is spec.md §4.5's default iteration count for RepoMap
// generation. (A standalone graph-analysis caller MAY use a higher count;
// spec.md only mandates the RepoMap-generation default.)
const DefaultIterations = 20

// PageRank runs spec.md §4.5's algorithm over g and returns each node's
// converged rank, keyed the same way as g.Nodes.
//
// Per iteration: reset every node's rank to the teleport mass (1-d)/N, then
// in one O(N) pass accumulate the total rank mass held by dangling nodes
// (zero out-degree) and distribute d*dangling_sum/N to every node, then for
// every non-dangling node distribute d*rank/out_degree to each
// out-neighbor. Grounded directly on
// _examples/original_source/engine/src/repomap/graph.rs's compute_pagerank,
// which performs exactly this two-pass dangling-redistribution shape (the
// teacher's own internal/repomap/pagerank.go instead redistributes dangling
// mass through a personalization vector; SPEC_FULL.md §4.5 explains why the
// original-source shape governs here).
func PageRank(g *Graph, damping float64, iterations int) map[NodeKey]float64 {
	n := len(g.Nodes)
	if n == 0 {
		return map[NodeKey]float64{}
	}

	rank := make(map[NodeKey]float64, n)
	initial := 1.0 / float64(n)
	for _, node := range g.Nodes {
		rank[node] = initial
	}

	teleport := (1 - damping) / float64(n)

	for iter := 0; iter < iterations; iter++ {
		next := make(map[NodeKey]float64, n)
		for _, node := range g.Nodes {
			next[node] = teleport
		}

		var danglingSum float64
		for _, node := range g.Nodes {
			if g.OutDegree(node) == 0 {
				danglingSum += rank[node]
			}
		}
		danglingShare := damping * danglingSum / float64(n)
		for _, node := range g.Nodes {
			next[node] += danglingShare
		}

		for _, node := range g.Nodes {
			outDegree := g.OutDegree(node)
			if outDegree == 0 {
				continue
			}
			share := damping * rank[node] / float64(outDegree)
			for _, neighbor := range g.OutNeighbors(node) {
				next[neighbor] += share
			}
		}

		rank = next
	}

	return rank
}
