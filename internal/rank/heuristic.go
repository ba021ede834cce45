// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rank implements spec.md §4.4 (HeuristicRanker) and §4.5
// (SymbolGraph + PageRank), the two-mode importance model.
package rank

import (
	"path"
	"sort"
	"strings"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

var entryPointPatterns = []string{
	"main.", "index.", "app.", "server.", "lib.rs", "mod.rs", "__main__.py", "__init__.py",
}

var configPatterns = []string{
	"Cargo.toml", "package.json", "pyproject.toml", "go.mod", "Dockerfile",
	"Makefile", "CMakeLists.txt", "requirements.txt", "setup.py", "pom.xml",
	"build.gradle", "tsconfig.json",
}

var sourceRootPrefixes = []string{"src/", "lib/", "pkg/"}

var apiSurfaceSegments = []string{"api/", "routes/", "models/", "controllers/", "services/", "handlers/"}

var testSegments = []string{"/test", "_test.", ".test.", ".spec.", "tests/", "__tests__/"}

var exampleToolSegments = []string{"examples/", "benchmarks/", "scripts/", "tools/"}

var vendoredSegments = []string{"vendor/", "third_party/", "generated/", "docs/"}

// ScorePath computes the additive-delta score for one repo-relative path per
// spec.md §4.4 (lower score = more important).
func ScorePath(relativePath string) float64 {
	base := path.Base(relativePath)
	var score float64

	switch {
	case matchesAnyPrefix(base, entryPointPatterns) || matchesAnySuffix(relativePath, entryPointPatterns):
		score -= 5000
	}
	for _, p := range configPatterns {
		if base == p {
			score -= 3000
			break
		}
	}
	for _, prefix := range sourceRootPrefixes {
		if strings.HasPrefix(relativePath, prefix) {
			score -= 1000
			break
		}
	}
	for _, seg := range apiSurfaceSegments {
		if strings.Contains(relativePath, seg) {
			score -= 500
			break
		}
	}
	for _, seg := range testSegments {
		if strings.Contains(relativePath, seg) {
			score += 2000
			break
		}
	}
	for _, seg := range exampleToolSegments {
		if strings.Contains(relativePath, seg) {
			score += 1500
			break
		}
	}
	for _, seg := range vendoredSegments {
		if strings.Contains(relativePath, seg) {
			score += 3000
			break
		}
	}

	depth := strings.Count(relativePath, "/")
	score += 50 * float64(depth)
	score += float64(len(base)) / 5

	return score
}

// IsEntryPoint reports whether relativePath matches the same entry-point
// filename list ScorePath uses, per spec.md §4.8's "entry-point detection
// uses the same filename list as the heuristic ranker."
func IsEntryPoint(relativePath string) bool {
	base := path.Base(relativePath)
	return matchesAnyPrefix(base, entryPointPatterns) || matchesAnySuffix(relativePath, entryPointPatterns)
}

// IsConfigFile reports whether relativePath's basename is one of the
// manifest/config filenames ScorePath recognizes.
func IsConfigFile(relativePath string) bool {
	base := path.Base(relativePath)
	for _, p := range configPatterns {
		if base == p {
			return true
		}
	}
	return false
}

func matchesAnyPrefix(base string, patterns []string) bool {
	for _, p := range patterns {
		if strings.HasPrefix(base, p) {
			return true
		}
	}
	return false
}

func matchesAnySuffix(relativePath string, patterns []string) bool {
	for _, p := range patterns {
		if strings.HasSuffix(relativePath, p) {
			return true
		}
	}
	return false
}

// ApplyHeuristic scores and reorders files in place, assigning
// importance = 1 - i/N after sorting ascending by score (spec.md §4.4).
// This is the fast-mode ranker: importance depends purely on RelativePath.
func ApplyHeuristic(files []types.File) []types.File {
	n := len(files)
	if n == 0 {
		return files
	}

	type scored struct {
		file  types.File
		score float64
	}
	scoredFiles := make([]scored, n)
	for i, f := range files {
		scoredFiles[i] = scored{file: f, score: ScorePath(f.RelativePath)}
	}

	sort.SliceStable(scoredFiles, func(i, j int) bool {
		return scoredFiles[i].score < scoredFiles[j].score
	})

	out := make([]types.File, n)
	for i, sf := range scoredFiles {
		f := sf.file
		f.Importance = 1 - float64(i)/float64(n)
		out[i] = f
	}
	return out
}
