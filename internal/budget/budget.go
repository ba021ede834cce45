// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package budget implements spec.md §4.9's BudgetEnforcer: a post-format
// truncation pass applied when max_tokens is set, using a coarse
// char/token estimate distinct from internal/tokenizer's exact counts.
// Grounded on _examples/original_source/engine/src/output/mod.rs's
// enforce_budget (natural-boundary search over a fixed marker list),
// adapted to the teacher's plain-function, no-receiver style seen in
// _examples/petar-djukic-go-coder/internal/editformat.
package budget

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// charsPerToken is the BudgetEnforcer's own estimation table (spec.md §4.9
// step 1), distinct from internal/tokenizer.charsPerToken: these are
// enforcement-time constants for truncating an already-rendered document,
// not ingestion-time per-symbol estimates.
var charsPerToken = map[types.Model]float64{
	types.ModelClaude: 4.0,
	types.ModelGPT4o:  4.0,
	types.ModelGPT4:   4.0,
	types.ModelGemini: 4.2,
	types.ModelLlama:  3.8,
}

// boundaryMarkers are all searched at the candidate cut point and the latest
// boundary among them wins; spec.md §4.9 step 3 names these four literally.
var boundaryMarkers = []string{"</file>", "```", "---", "----------"}

// Enforce truncates rendered if it exceeds maxTokens under model's
// char/token ratio, aligning the cut to a natural boundary and appending a
// truncation notice. maxTokens <= 0 means unlimited; rendered is returned
// unchanged.
func Enforce(rendered string, model types.Model, maxTokens int) string {
	if maxTokens <= 0 {
		return rendered
	}
	ratio, ok := charsPerToken[model]
	if !ok {
		ratio = 4.0
	}

	current := float64(len(rendered)) / ratio
	if current <= float64(maxTokens) {
		return rendered
	}

	targetChars := int(float64(len(rendered)) * float64(maxTokens) / current * 0.95)
	if targetChars < 0 {
		targetChars = 0
	}
	if targetChars > len(rendered) {
		targetChars = len(rendered)
	}

	cut := alignToBoundary(rendered, targetChars)
	truncated := rendered[:cut]
	notice := fmt.Sprintf("\n[... truncated to fit %d token budget for %s ...]\n", maxTokens, model)
	return truncated + notice
}

// alignToBoundary searches backward from targetChars for the latest
// boundary marker past the midpoint of the truncated region (spec.md §4.9
// step 3); falls back to a UTF-8 rune boundary.
func alignToBoundary(s string, targetChars int) int {
	if targetChars >= len(s) {
		return len(s)
	}
	window := s[:targetChars]
	midpoint := targetChars / 2

	best := -1
	for _, marker := range boundaryMarkers {
		idx := strings.LastIndex(window, marker)
		if idx < 0 || idx < midpoint {
			continue
		}
		end := idx + len(marker)
		if end > best {
			best = end
		}
	}
	if best >= 0 {
		return best
	}

	cut := targetChars
	for cut > 0 && !isRuneBoundary(s, cut) {
		cut--
	}
	return cut
}

func isRuneBoundary(s string, i int) bool {
	if i <= 0 || i >= len(s) {
		return true
	}
	return s[i]&0xC0 != 0x80
}
