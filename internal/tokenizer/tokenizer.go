// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tokenizer implements spec.md §4.10: exact BPE tokenization for the
// two model families with public encodings, and characters-per-token
// estimation for the rest. Grounded on
// _examples/original_source/engine/src/tokenizer.rs's singleton pattern and
// on github.com/pkoukk/tiktoken-go, the pack's exact-BPE dependency.
package tokenizer

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// charsPerToken is the estimation constant per model (spec.md §4.10).
var charsPerToken = map[types.Model]float64{
	types.ModelClaude: 3.5,
	types.ModelGPT4o:  4.0,
	types.ModelGPT4:   4.0,
	types.ModelGemini: 4.0,
	types.ModelLlama:  3.7,
}

var (
	cl100kOnce sync.Once
	cl100k     *tiktoken.Tiktoken
	o200kOnce  sync.Once
	o200k      *tiktoken.Tiktoken
)

func getCl100k() *tiktoken.Tiktoken {
	cl100kOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			cl100k = enc
		}
	})
	return cl100k
}

func getO200k() *tiktoken.Tiktoken {
	o200kOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("o200k_base")
		if err == nil {
			o200k = enc
		}
	})
	return o200k
}

// HasExactTokenizer reports whether m has a public exact BPE encoding.
func HasExactTokenizer(m types.Model) bool {
	return m == types.ModelGPT4 || m == types.ModelGPT4o
}

// Count returns the token count for text under model m: exact BPE for
// GPT-4/GPT-4o, estimation otherwise.
func Count(text string, m types.Model) uint32 {
	if HasExactTokenizer(m) {
		if n, ok := countExact(text, m); ok {
			return n
		}
	}
	return estimate(text, m)
}

// countExact runs the real tokenizer, returning ok=false if the encoding
// failed to load (e.g. offline with no cached vocab file).
func countExact(text string, m types.Model) (uint32, bool) {
	var enc *tiktoken.Tiktoken
	if m == types.ModelGPT4 {
		enc = getCl100k()
	} else {
		enc = getO200k()
	}
	if enc == nil {
		return 0, false
	}
	tokens := enc.Encode(text, nil, nil)
	return uint32(len(tokens)), true
}

// estimate implements spec.md §4.10's characters-per-token heuristic: base
// length/ratio, then subtract 0.3 per space/tab, add 0.5 per newline, add 0.3
// per common code-punctuation character. The adjustment applies to every
// estimated model (spec.md is explicit here; the original Rust source
// restricted it to Claude/Llama — spec.md governs per SPEC_FULL.md §4.10).
func estimate(text string, m types.Model) uint32 {
	ratio, ok := charsPerToken[m]
	if !ok {
		ratio = 4.0
	}
	n := utf8.RuneCountInString(text)
	base := float64(n) / ratio

	var spaceTabs, newlines, punct float64
	for _, r := range text {
		switch {
		case r == '\n':
			newlines++
		case r == ' ' || r == '\t':
			spaceTabs++
		case isCodePunct(r):
			punct++
		}
	}
	base += -0.3*spaceTabs + 0.5*newlines + 0.3*punct
	if base < 0 {
		base = 0
	}
	return uint32(base + 0.5)
}

func isCodePunct(r rune) bool {
	switch r {
	case '{', '}', '(', ')', '[', ']', ';', ':', ',', '.', '<', '>', '=', '+', '-', '*', '/', '&', '|', '!':
		return true
	}
	return unicode.IsPunct(r)
}

// CountAll returns a TokenCounts with every model's count for text.
func CountAll(text string) types.TokenCounts {
	var tc types.TokenCounts
	for _, m := range types.Models {
		tc = tc.Set(m, Count(text, m))
	}
	return tc
}

// ExceedsBudget reports whether text's token count under model m exceeds
// budget.
func ExceedsBudget(text string, m types.Model, budget int) bool {
	return int(Count(text, m)) > budget
}

// TruncateToBudget returns the longest prefix of text whose token count
// under model m is <= budget, via binary search over UTF-8 character
// boundaries, falling back to a word boundary if the exact cut point lands
// mid-word.
func TruncateToBudget(text string, m types.Model, budget int) string {
	if !ExceedsBudget(text, m, budget) {
		return text
	}

	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		candidate := string(runes[:mid])
		if int(Count(candidate, m)) <= budget {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	cut := string(runes[:lo])
	if lo < len(runes) && !unicode.IsSpace(runes[lo]) && lo > 0 && !unicode.IsSpace(runes[lo-1]) {
		if idx := strings.LastIndexFunc(cut, unicode.IsSpace); idx >= 0 {
			cut = cut[:idx]
		}
	}
	return cut
}
