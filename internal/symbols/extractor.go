// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package symbols implements spec.md §4.2's SymbolExtractor: a tree-sitter
// parse of one file's content into a Symbol slice for a fixed, closed
// language set. Grounded on the teacher's query-cursor pattern in
// _examples/petar-djukic-go-coder/internal/repomap/extract.go (NewQuery /
// NewQueryCursor / Exec / NextMatch), generalized from the teacher's
// 2-language table to spec.md's 6-language closed set using the capture-name
// conventions cross-checked against
// _examples/HelixDevelopment-HelixCode/HelixCode's per-language symbol
// tables.
package symbols

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// SupportedLanguages is the fixed closed set spec.md §4.2 names. Any other
// language tag yields an empty symbol list, never an error.
var SupportedLanguages = map[string]bool{
	"python":     true,
	"javascript": true,
	"typescript": true,
	"rust":       true,
	"go":         true,
	"java":       true,
}

const maxSignatureLen = 200

// Parser wraps one tree-sitter parser instance. Callers that extract from
// many files concurrently should keep one Parser per goroutine per
// language (see internal/ingest's thread-local pool) rather than share a
// single instance, since *sitter.Parser is not safe for concurrent Parse
// calls.
type Parser struct {
	sitter *sitter.Parser
}

// NewParser constructs a parser for language. Returns an error for an
// unsupported language so callers can distinguish "no parser available"
// from "parsed to zero symbols."
func NewParser(language string) (*Parser, error) {
	spec, ok := languageTable[language]
	if !ok {
		return nil, fmt.Errorf("symbols: unsupported language %q", language)
	}
	p := sitter.NewParser()
	p.SetLanguage(spec.lang)
	return &Parser{sitter: p}, nil
}

// Extract parses content and returns every Symbol spec.md §4.2 describes:
// definitions located by the per-language query pattern, plus a single
// top-level pass of import symbols. A parse error yields a nil symbol list
// plus the error (spec.md's failure semantics: "an empty symbol list for
// that file"); the caller logs it and retains the file. An unsupported
// language yields (nil, nil).
func (p *Parser) Extract(content []byte, language string) ([]types.Symbol, error) {
	spec, ok := languageTable[language]
	if !ok {
		return nil, nil
	}

	tree, err := p.sitter.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("symbols: parse %s: %w", language, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("symbols: parse %s: no syntax tree", language)
	}
	root := tree.RootNode()
	if root == nil {
		return nil, nil
	}

	var out []types.Symbol
	out = append(out, extractDefinitions(root, content, spec)...)
	out = append(out, extractImports(root, content, spec)...)
	return out, nil
}

// languageSpec binds a tree-sitter grammar to spec.md §4.2's per-language
// extraction rules.
type languageSpec struct {
	lang        *sitter.Language
	defQuery    string   // captures named "<kind>.name" / "<kind>.def"
	importTypes []string // top-level node types that are import statements
	sigStyle    sigStyle
	docStyle    docStyle
	parentFn    func(def *sitter.Node, content []byte) *string
}

// ancestorParent returns a parentFn that walks up from def to the nearest
// ancestor whose node type is in parentTypes and copies its "name" (or,
// failing that, "type") field identifier. Grounded on spec.md §4.2's "walk
// to the nearest enclosing class/struct/impl/interface."
func ancestorParent(parentTypes ...string) func(def *sitter.Node, content []byte) *string {
	want := make(map[string]bool, len(parentTypes))
	for _, t := range parentTypes {
		want[t] = true
	}
	return func(def *sitter.Node, content []byte) *string {
		for n := def.Parent(); n != nil; n = n.Parent() {
			if !want[n.Type()] {
				continue
			}
			nameNode := n.ChildByFieldName("name")
			if nameNode == nil {
				nameNode = n.ChildByFieldName("type")
			}
			if nameNode == nil {
				continue
			}
			name := nameNode.Content(content)
			return &name
		}
		return nil
	}
}

// goMethodParent resolves a Go method's parent from its receiver field,
// since Go methods are declared at package level rather than lexically
// nested inside their receiver type.
func goMethodParent(def *sitter.Node, content []byte) *string {
	if def.Type() != "method_declaration" {
		return nil
	}
	recv := def.ChildByFieldName("receiver")
	if recv == nil {
		return nil
	}
	var find func(n *sitter.Node) *sitter.Node
	find = func(n *sitter.Node) *sitter.Node {
		if n.Type() == "type_identifier" {
			return n
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if found := find(n.Child(i)); found != nil {
				return found
			}
		}
		return nil
	}
	typeNode := find(recv)
	if typeNode == nil {
		return nil
	}
	name := typeNode.Content(content)
	return &name
}

type sigStyle int

const (
	sigBraceStyle sigStyle = iota // declaration start -> opening brace
	sigPythonDef                  // "def" -> first ':' or newline
	sigRustFn                     // "fn" -> body block
)

type docStyle int

const (
	docNone docStyle = iota
	docPythonFirstString
	docRustTripleSlash
	docJSDocBlock
)

// extractDefinitions runs the per-language definitions query and converts
// matches into Symbols, resolving signature, docstring, and parent per
// spec.md §4.2.
func extractDefinitions(root *sitter.Node, content []byte, spec *languageSpec) []types.Symbol {
	if spec.defQuery == "" {
		return nil
	}
	q, err := sitter.NewQuery([]byte(spec.defQuery), spec.lang)
	if err != nil {
		return nil
	}
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	type capturedDef struct {
		kind types.SymbolKind
		name *sitter.Node
		def  *sitter.Node
	}

	var defs []capturedDef
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		var kind types.SymbolKind
		var nameNode, defNode *sitter.Node
		for _, c := range m.Captures {
			captureName := q.CaptureNameForId(c.Index)
			parts := strings.SplitN(captureName, ".", 2)
			if len(parts) != 2 {
				continue
			}
			k := kindFromCapture(parts[0])
			if k == "" {
				continue
			}
			kind = k
			switch parts[1] {
			case "name":
				nameNode = c.Node
			case "def":
				defNode = c.Node
			}
		}
		if nameNode == nil || defNode == nil {
			continue
		}
		defs = append(defs, capturedDef{kind: kind, name: nameNode, def: defNode})
	}

	symbols := make([]types.Symbol, 0, len(defs))
	for _, d := range defs {
		name := d.name.Content(content)
		if name == "" {
			continue
		}
		sig := extractSignature(d.def, content, spec.sigStyle)
		doc := extractDocstring(d.def, content, spec.docStyle)
		var parent *string
		if spec.parentFn != nil {
			parent = spec.parentFn(d.def, content)
		}

		kind := d.kind
		if parent != nil && kind == types.KindFunction {
			kind = types.KindMethod
		}
		if kind != types.KindMethod {
			parent = nil // Parent is recorded for methods only
		}

		symbols = append(symbols, types.Symbol{
			Name:      name,
			Kind:      kind,
			Signature: sig,
			Docstring: doc,
			StartLine: int(d.def.StartPoint().Row) + 1,
			EndLine:   int(d.def.EndPoint().Row) + 1,
			Parent:    parent,
		})
	}
	return symbols
}

// extractImports performs a single top-level pass over root's immediate
// children (spec.md §4.2: "not recursive descent, to keep cost linear in
// file count, not AST node count"). Each import statement becomes one
// Symbol{Kind: import} whose Name is the raw import text.
func extractImports(root *sitter.Node, content []byte, spec *languageSpec) []types.Symbol {
	if len(spec.importTypes) == 0 {
		return nil
	}
	want := make(map[string]bool, len(spec.importTypes))
	for _, t := range spec.importTypes {
		want[t] = true
	}

	var out []types.Symbol
	childCount := int(root.ChildCount())
	for i := 0; i < childCount; i++ {
		child := root.Child(i)
		if child == nil || !want[child.Type()] {
			continue
		}
		text := strings.TrimSpace(child.Content(content))
		if text == "" {
			continue
		}
		out = append(out, types.Symbol{
			Name:      text,
			Kind:      types.KindImport,
			StartLine: int(child.StartPoint().Row) + 1,
			EndLine:   int(child.EndPoint().Row) + 1,
		})
	}
	return out
}

func kindFromCapture(tag string) types.SymbolKind {
	switch tag {
	case "function":
		return types.KindFunction
	case "method":
		return types.KindMethod
	case "class":
		return types.KindClass
	case "interface":
		return types.KindInterface
	case "struct":
		return types.KindStruct
	case "enum":
		return types.KindEnum
	case "trait":
		return types.KindTrait
	case "constant":
		return types.KindConstant
	case "variable":
		return types.KindVariable
	case "typealias":
		return types.KindTypeAlias
	case "macro":
		return types.KindMacro
	case "module":
		return types.KindModule
	default:
		return ""
	}
}

// extractSignature implements spec.md §4.2's kind-specific signature rule,
// capped at 200 characters.
func extractSignature(def *sitter.Node, content []byte, style sigStyle) *string {
	full := def.Content(content)
	var sig string
	switch style {
	case sigPythonDef:
		idx := strings.IndexAny(full, ":\n")
		if idx >= 0 {
			sig = full[:idx]
		} else {
			sig = full
		}
	case sigRustFn:
		if body := def.ChildByFieldName("body"); body != nil {
			bodyStart := int(body.StartByte()) - int(def.StartByte())
			if bodyStart > 0 && bodyStart <= len(full) {
				sig = full[:bodyStart]
			} else {
				sig = full
			}
		} else {
			sig = full
		}
	default: // sigBraceStyle
		if idx := strings.IndexByte(full, '{'); idx >= 0 {
			sig = full[:idx]
		} else {
			sig = full
		}
	}
	sig = strings.Join(strings.Fields(strings.ReplaceAll(sig, "\n", " ")), " ")
	if len(sig) > maxSignatureLen {
		sig = sig[:maxSignatureLen]
	}
	if sig == "" {
		return nil
	}
	return &sig
}

// extractDocstring implements spec.md §4.2's per-language docstring rule.
func extractDocstring(def *sitter.Node, content []byte, style docStyle) *string {
	switch style {
	case docPythonFirstString:
		body := def.ChildByFieldName("body")
		if body == nil || body.ChildCount() == 0 {
			return nil
		}
		first := body.Child(0)
		if first == nil || first.Type() != "expression_statement" || first.ChildCount() == 0 {
			return nil
		}
		strNode := first.Child(0)
		if strNode == nil || !strings.Contains(strNode.Type(), "string") {
			return nil
		}
		s := strings.Trim(strNode.Content(content), "\"'")
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return &s
	case docRustTripleSlash:
		var lines []string
		prev := def.PrevSibling()
		for prev != nil && strings.HasPrefix(strings.TrimSpace(prev.Content(content)), "///") {
			line := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(prev.Content(content)), "///"))
			lines = append([]string{line}, lines...)
			prev = prev.PrevSibling()
		}
		if len(lines) == 0 {
			return nil
		}
		s := strings.Join(lines, "\n")
		return &s
	case docJSDocBlock:
		prev := def.PrevSibling()
		if prev == nil || prev.Type() != "comment" {
			return nil
		}
		raw := prev.Content(content)
		if !strings.HasPrefix(raw, "/**") {
			return nil
		}
		raw = strings.TrimPrefix(raw, "/**")
		raw = strings.TrimSuffix(raw, "*/")
		var lines []string
		for _, l := range strings.Split(raw, "\n") {
			l = strings.TrimSpace(l)
			l = strings.TrimPrefix(l, "*")
			l = strings.TrimSpace(l)
			if l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			return nil
		}
		s := strings.Join(lines, "\n")
		return &s
	default:
		return nil
	}
}

