// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"testing"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

func TestExtractGoFunction(t *testing.T) {
	src := []byte("package main\n\nfunc main() {}\n")
	p, err := NewParser("go")
	if err != nil {
		t.Fatal(err)
	}
	syms, err := p.Extract(src, "go")
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, s := range syms {
		if s.Name == "main" && s.Kind == types.KindFunction {
			found = true
			if s.StartLine < 1 {
				t.Fatalf("expected StartLine >= 1, got %d", s.StartLine)
			}
		}
	}
	if !found {
		t.Fatalf("expected to find function 'main' in %+v", syms)
	}
}

func TestExtractGoMethodParent(t *testing.T) {
	src := []byte("package main\n\ntype T struct{}\n\nfunc (t *T) Do() {}\n")
	p, err := NewParser("go")
	if err != nil {
		t.Fatal(err)
	}
	syms, err := p.Extract(src, "go")
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, s := range syms {
		if s.Name == "Do" {
			found = true
			if s.Kind != types.KindMethod {
				t.Fatalf("expected method kind, got %s", s.Kind)
			}
			if s.Parent == nil || *s.Parent != "T" {
				t.Fatalf("expected parent T, got %v", s.Parent)
			}
		}
	}
	if !found {
		t.Fatal("expected to find method Do")
	}
}

func TestExtractPythonImport(t *testing.T) {
	src := []byte("import util\n\ndef helper():\n    pass\n")
	p, err := NewParser("python")
	if err != nil {
		t.Fatal(err)
	}
	syms, err := p.Extract(src, "python")
	if err != nil {
		t.Fatal(err)
	}
	var hasImport, hasFunc bool
	for _, s := range syms {
		if s.Kind == types.KindImport {
			hasImport = true
		}
		if s.Name == "helper" && s.Kind == types.KindFunction {
			hasFunc = true
		}
	}
	if !hasImport || !hasFunc {
		t.Fatalf("expected import + function symbols, got %+v", syms)
	}
}

func TestNewParserRejectsUnsupportedLanguage(t *testing.T) {
	if _, err := NewParser("cobol"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}

func TestPoolReusesParser(t *testing.T) {
	pool := NewPool()
	a, ok := pool.Get("go")
	if !ok {
		t.Fatal("expected go parser")
	}
	b, _ := pool.Get("go")
	if a != b {
		t.Fatal("expected pool to reuse the same parser instance")
	}
}
