// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// languageTable binds spec.md §4.2's closed language set to the grammars
// and per-language rules in SPEC_FULL.md §4.2. Query patterns are grounded
// on _examples/HelixDevelopment-HelixCode/HelixCode's per-language
// construct tables (goQueries/pythonQueries/javascriptQueries/javaQueries/
// rustQueries), merged into one multi-pattern query per language using the
// "<kind>.name"/"<kind>.def" capture-name convention so a single
// NewQuery/QueryCursor pass (teacher's extract.go idiom) covers every
// definition kind.
var languageTable = map[string]*languageSpec{
	"go": {
		lang: golang.GetLanguage(),
		defQuery: `
			(function_declaration name: (identifier) @function.name) @function.def
			(method_declaration name: (field_identifier) @method.name) @method.def
			(type_declaration (type_spec name: (type_identifier) @struct.name type: (struct_type))) @struct.def
			(type_declaration (type_spec name: (type_identifier) @interface.name type: (interface_type))) @interface.def
			(const_declaration (const_spec name: (identifier) @constant.name)) @constant.def
			(var_declaration (var_spec name: (identifier) @variable.name)) @variable.def
		`,
		importTypes: []string{"import_declaration"},
		sigStyle:    sigBraceStyle,
		docStyle:    docNone,
		parentFn:    goMethodParent,
	},
	"python": {
		lang: python.GetLanguage(),
		defQuery: `
			(function_definition name: (identifier) @function.name) @function.def
			(class_definition name: (identifier) @class.name) @class.def
		`,
		importTypes: []string{"import_statement", "import_from_statement"},
		sigStyle:    sigPythonDef,
		docStyle:    docPythonFirstString,
		parentFn:    ancestorParent("class_definition"),
	},
	"javascript": {
		lang: javascript.GetLanguage(),
		defQuery: `
			(function_declaration name: (identifier) @function.name) @function.def
			(class_declaration name: (identifier) @class.name) @class.def
			(method_definition name: (property_identifier) @method.name) @method.def
			(variable_declarator name: (identifier) @function.name value: (arrow_function)) @function.def
		`,
		importTypes: []string{"import_statement"},
		sigStyle:    sigBraceStyle,
		docStyle:    docJSDocBlock,
		parentFn:    ancestorParent("class_declaration", "class_body"),
	},
	"typescript": {
		lang: typescript.GetLanguage(),
		defQuery: `
			(function_declaration name: (identifier) @function.name) @function.def
			(class_declaration name: (type_identifier) @class.name) @class.def
			(method_definition name: (property_identifier) @method.name) @method.def
			(variable_declarator name: (identifier) @function.name value: (arrow_function)) @function.def
			(interface_declaration name: (type_identifier) @interface.name) @interface.def
			(type_alias_declaration name: (type_identifier) @typealias.name) @typealias.def
		`,
		importTypes: []string{"import_statement"},
		sigStyle:    sigBraceStyle,
		docStyle:    docJSDocBlock,
		parentFn:    ancestorParent("class_declaration", "class_body"),
	},
	"java": {
		lang: java.GetLanguage(),
		defQuery: `
			(class_declaration name: (identifier) @class.name) @class.def
			(interface_declaration name: (identifier) @interface.name) @interface.def
			(method_declaration name: (identifier) @method.name) @method.def
			(enum_declaration name: (identifier) @enum.name) @enum.def
		`,
		importTypes: []string{"import_declaration"},
		sigStyle:    sigBraceStyle,
		docStyle:    docJSDocBlock,
		parentFn:    ancestorParent("class_declaration", "interface_declaration", "enum_declaration"),
	},
	"rust": {
		lang: rust.GetLanguage(),
		defQuery: `
			(function_item name: (identifier) @function.name) @function.def
			(struct_item name: (type_identifier) @struct.name) @struct.def
			(enum_item name: (type_identifier) @enum.name) @enum.def
			(trait_item name: (type_identifier) @trait.name) @trait.def
			(macro_definition name: (identifier) @macro.name) @macro.def
		`,
		importTypes: []string{"use_declaration"},
		sigStyle:    sigRustFn,
		docStyle:    docRustTripleSlash,
		parentFn:    ancestorParent("impl_item", "trait_item"),
	},
}
