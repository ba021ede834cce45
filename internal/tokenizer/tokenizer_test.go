// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tokenizer

import (
	"strings"
	"testing"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

func TestCountAllPositive(t *testing.T) {
	tc := CountAll("package main\n\nfunc main() {}\n")
	if tc.Claude == 0 || tc.GPT4 == 0 || tc.GPT4o == 0 || tc.Gemini == 0 || tc.Llama == 0 {
		t.Fatalf("expected nonzero counts for every model, got %+v", tc)
	}
}

func TestExceedsBudget(t *testing.T) {
	long := strings.Repeat("word ", 1000)
	if !ExceedsBudget(long, types.ModelClaude, 10) {
		t.Fatal("expected long text to exceed a 10-token budget")
	}
	if ExceedsBudget("short", types.ModelClaude, 10000) {
		t.Fatal("did not expect short text to exceed a large budget")
	}
}

func TestTruncateToBudgetRespectsBudget(t *testing.T) {
	long := strings.Repeat("hello world ", 500)
	truncated := TruncateToBudget(long, types.ModelClaude, 50)
	if ExceedsBudget(truncated, types.ModelClaude, 50) {
		t.Fatalf("truncated text still exceeds budget: %d tokens", Count(truncated, types.ModelClaude))
	}
	if len(truncated) == 0 {
		t.Fatal("expected nonempty truncated text")
	}
}

func TestHasExactTokenizer(t *testing.T) {
	if !HasExactTokenizer(types.ModelGPT4) || !HasExactTokenizer(types.ModelGPT4o) {
		t.Fatal("GPT-4 and GPT-4o should have exact tokenizers")
	}
	if HasExactTokenizer(types.ModelClaude) {
		t.Fatal("Claude should not have an exact tokenizer in this contract")
	}
}
