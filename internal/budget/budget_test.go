// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import (
	"strings"
	"testing"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

func TestEnforceNoopUnderBudget(t *testing.T) {
	doc := "short document"
	out := Enforce(doc, types.ModelClaude, 1000)
	if out != doc {
		t.Fatalf("expected unchanged document, got %q", out)
	}
}

func TestEnforceUnlimitedWhenZero(t *testing.T) {
	doc := strings.Repeat("x", 10000)
	out := Enforce(doc, types.ModelClaude, 0)
	if out != doc {
		t.Fatal("expected maxTokens<=0 to mean unlimited")
	}
}

func TestEnforceTruncatesAndAnnotates(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("<file>\nsome content here\n</file>\n")
	}
	doc := b.String()

	out := Enforce(doc, types.ModelClaude, 50)
	if len(out) >= len(doc) {
		t.Fatal("expected truncation to shrink the document")
	}
	if !strings.Contains(out, "truncated") {
		t.Fatal("expected a truncation notice")
	}
}
