// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transform

import (
	"strings"
	"testing"
)

func TestRemoveEmptyLines(t *testing.T) {
	out := Apply("a\n\n  \nb\n", "", Options{RemoveEmptyLines: true})
	if out != "a\nb" {
		t.Fatalf("got %q", out)
	}
}

func TestRemoveCommentsLineAndBlock(t *testing.T) {
	src := "x := 1 // trailing\n/* block\nspans lines */\ny := 2\n"
	out := removeComments(src, "go")
	if strings.Contains(out, "trailing") || strings.Contains(out, "block") || strings.Contains(out, "spans") {
		t.Fatalf("expected comments stripped, got %q", out)
	}
	if !strings.Contains(out, "x := 1") || !strings.Contains(out, "y := 2") {
		t.Fatalf("expected code retained, got %q", out)
	}
}

func TestRemoveCommentsSkipsMarkerInsideString(t *testing.T) {
	src := `s := "http://example.com"` + "\n"
	out := removeComments(src, "go")
	if !strings.Contains(out, "http://example.com") {
		t.Fatalf("expected string contents preserved, got %q", out)
	}
}

func TestTruncateBase64DataURI(t *testing.T) {
	payload := strings.Repeat("QQ", 80)
	src := "img := \"data:image/png;base64," + payload + "\"\n"
	out := truncateBase64(src)
	if strings.Contains(out, payload) {
		t.Fatal("expected base64 payload to be truncated")
	}
	if !strings.Contains(out, "data:image/png;base64,") {
		t.Fatal("expected data-URI prefix preserved")
	}
}

func TestOptionsForLevel(t *testing.T) {
	if OptionsForLevel(LevelNone) != (Options{}) {
		t.Fatal("expected none level to enable nothing")
	}
	if !OptionsForLevel(LevelBalanced).RemoveComments {
		t.Fatal("expected balanced level to enable comment removal")
	}
	if OptionsForLevel(LevelAggressive) != OptionsForLevel(LevelExtreme) {
		t.Fatal("expected aggressive and extreme to be equivalent at this layer")
	}
}
