// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package langmap

import "testing"

func TestClassifyKnown(t *testing.T) {
	lang, ok := Classify(".GO")
	if !ok || lang != "go" {
		t.Fatalf("Classify(.GO) = %q, %v; want go, true", lang, ok)
	}
}

func TestClassifyUnknown(t *testing.T) {
	lang, ok := Classify(".zzz")
	if ok || lang != "" {
		t.Fatalf("Classify(.zzz) = %q, %v; want \"\", false", lang, ok)
	}
}

func TestIsBinaryExtension(t *testing.T) {
	if !IsBinaryExtension(".PNG") {
		t.Fatal("expected .PNG to be classified binary")
	}
	if IsBinaryExtension(".go") {
		t.Fatal("did not expect .go to be classified binary")
	}
}
