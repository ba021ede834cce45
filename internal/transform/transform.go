// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package transform implements spec.md §4.7's ContentTransform: a fixed,
// composable pipeline of per-file content rewrites (empty-line removal,
// comment stripping, base64 truncation) run before formatting. Grounded on
// _examples/original_source/engine/src/transform/mod.rs's ordered transform
// list, reimplemented in the teacher's straight-line string-processing
// style (see _examples/petar-djukic-go-coder/internal/editformat for the
// teacher's nearest analogue: line-oriented text rewriting with a small
// per-language table).
package transform

import (
	"regexp"
	"strings"
)

// Level is a named compression tier, per spec.md §4.7.
type Level string

const (
	LevelNone       Level = "none"
	LevelMinimal    Level = "minimal"
	LevelBalanced   Level = "balanced"
	LevelAggressive Level = "aggressive"
	LevelExtreme    Level = "extreme"
	// LevelSemantic is reserved; it behaves as LevelExtreme (spec.md §6).
	LevelSemantic Level = "semantic"
)

// Options selects which transforms run, independent of Level (callers may
// derive these from a Level via OptionsForLevel or set them directly).
type Options struct {
	RemoveEmptyLines bool
	RemoveComments   bool
	TruncateBase64   bool
}

// OptionsForLevel maps a named compression level to the transform set,
// per spec.md §4.7: "Minimal enables empty-line removal; Balanced adds
// comment removal; Aggressive and Extreme keep the same transforms."
func OptionsForLevel(level Level) Options {
	switch level {
	case LevelNone:
		return Options{}
	case LevelMinimal:
		return Options{RemoveEmptyLines: true, TruncateBase64: true}
	default: // balanced, aggressive, extreme, semantic
		return Options{RemoveEmptyLines: true, RemoveComments: true, TruncateBase64: true}
	}
}

// Apply runs the fixed-order transform pipeline on content for the given
// language (may be empty, in which case RemoveComments is a no-op).
func Apply(content string, language string, opts Options) string {
	if opts.RemoveEmptyLines {
		content = removeEmptyLines(content)
	}
	if opts.RemoveComments {
		content = removeComments(content, language)
	}
	if opts.TruncateBase64 {
		content = truncateBase64(content)
	}
	return content
}

func removeEmptyLines(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// commentMarkers is the per-language (line, block-open, block-close) table
// spec.md §4.7 step 2 requires.
type commentMarkers struct {
	line       string
	blockOpen  string
	blockClose string
}

var commentTable = map[string]commentMarkers{
	"go":         {line: "//", blockOpen: "/*", blockClose: "*/"},
	"rust":       {line: "//", blockOpen: "/*", blockClose: "*/"},
	"javascript": {line: "//", blockOpen: "/*", blockClose: "*/"},
	"typescript": {line: "//", blockOpen: "/*", blockClose: "*/"},
	"java":       {line: "//", blockOpen: "/*", blockClose: "*/"},
	"c":          {line: "//", blockOpen: "/*", blockClose: "*/"},
	"cpp":        {line: "//", blockOpen: "/*", blockClose: "*/"},
	"python":     {line: "#"},
	"ruby":       {line: "#"},
	"shell":      {line: "#"},
	"yaml":       {line: "#"},
	"toml":       {line: "#"},
}

// removeComments strips line and block comments for language, skipping
// markers that fall inside an unbalanced string literal (the odd-quote-count
// heuristic spec.md §4.7 step 2 names), and respecting block-comment nesting
// across lines.
func removeComments(content string, language string) string {
	markers, ok := commentTable[language]
	if !ok {
		return content
	}

	var out strings.Builder
	inBlock := false
	lines := strings.Split(content, "\n")
	for li, line := range lines {
		rest := line
		var kept strings.Builder
		for len(rest) > 0 {
			if inBlock {
				if markers.blockClose == "" {
					break // language has no block comments; nothing can close
				}
				if idx := strings.Index(rest, markers.blockClose); idx >= 0 {
					rest = rest[idx+len(markers.blockClose):]
					inBlock = false
					continue
				}
				rest = ""
				continue
			}

			lineIdx := -1
			if markers.line != "" {
				lineIdx = indexOutsideString(rest, markers.line)
			}
			blockIdx := -1
			if markers.blockOpen != "" {
				blockIdx = indexOutsideString(rest, markers.blockOpen)
			}

			switch {
			case lineIdx < 0 && blockIdx < 0:
				kept.WriteString(rest)
				rest = ""
			case blockIdx < 0 || (lineIdx >= 0 && lineIdx <= blockIdx):
				kept.WriteString(rest[:lineIdx])
				rest = ""
			default:
				kept.WriteString(rest[:blockIdx])
				after := rest[blockIdx+len(markers.blockOpen):]
				if closeIdx := strings.Index(after, markers.blockClose); closeIdx >= 0 {
					rest = after[closeIdx+len(markers.blockClose):]
				} else {
					inBlock = true
					rest = ""
				}
			}
		}
		out.WriteString(kept.String())
		if li < len(lines)-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// indexOutsideString finds the first occurrence of marker in s that is not
// preceded by an odd count of quote characters (spec.md §4.7 step 2's
// unbalanced-string heuristic).
func indexOutsideString(s string, marker string) int {
	search := s
	offset := 0
	for {
		idx := strings.Index(search, marker)
		if idx < 0 {
			return -1
		}
		prefix := search[:idx]
		if (strings.Count(prefix, `'`)+strings.Count(prefix, `"`))%2 == 0 {
			return offset + idx
		}
		advance := idx + len(marker)
		search = search[advance:]
		offset += advance
	}
}

var base64Run = regexp.MustCompile(`[A-Za-z0-9+/]{100,}={0,2}`)
var dataURI = regexp.MustCompile(`data:[^;]+;base64,[A-Za-z0-9+/]+={0,2}`)

const base64Marker = "[base64 data truncated]"

// truncateBase64 replaces data-URI payloads and long contiguous base64 runs
// with a marker, preserving any data-URI prefix (spec.md §4.7 step 3).
func truncateBase64(content string) string {
	content = dataURI.ReplaceAllStringFunc(content, func(m string) string {
		if idx := strings.Index(m, "base64,"); idx >= 0 {
			return m[:idx+len("base64,")] + base64Marker
		}
		return base64Marker
	})
	return base64Run.ReplaceAllString(content, base64Marker)
}
