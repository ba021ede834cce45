// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package langmap classifies file extensions into language tags and flags
// extensions that are known-binary so the Walker can skip them without
// opening the file.
package langmap

import "strings"

// byExtension maps a lowercased extension (including the leading dot) to a
// language tag. Extensions absent from this table classify as unknown
// ("", false).
var byExtension = map[string]string{
	".py":    "python",
	".pyi":   "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".mjs":   "javascript",
	".cjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".rs":    "rust",
	".go":    "go",
	".java":  "java",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".rb":    "ruby",
	".php":   "php",
	".cs":    "csharp",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".sh":    "shell",
	".bash":  "shell",
	".yaml":  "yaml",
	".yml":   "yaml",
	".json":  "json",
	".toml":  "toml",
	".md":    "markdown",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".proto": "protobuf",
}

// binaryExtensions is the extension set the Walker uses to gate out
// executables, archives, images, media, fonts, compiled artifacts, and
// databases without reading file content.
var binaryExtensions = map[string]bool{
	// executables / compiled artifacts
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".o": true,
	".a": true, ".class": true, ".pyc": true, ".pyo": true, ".wasm": true,
	// archives
	".zip": true, ".tar": true, ".gz": true, ".bz2": true, ".xz": true,
	".7z": true, ".rar": true, ".jar": true, ".war": true,
	// images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".webp": true, ".tiff": true, ".svg": true,
	// media
	".mp3": true, ".mp4": true, ".wav": true, ".avi": true, ".mov": true,
	".mkv": true, ".flac": true, ".ogg": true,
	// fonts
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true, ".eot": true,
	// databases
	".db": true, ".sqlite": true, ".sqlite3": true,
	// misc binary
	".pdf": true, ".bin": true, ".dat": true,
}

// Classify returns the language tag for a file's extension (case-insensitive
// on the extension only). The second return value is false for unknown
// extensions, matching spec.md §4.1's "unknown extensions yield None."
func Classify(extension string) (string, bool) {
	lang, ok := byExtension[strings.ToLower(extension)]
	return lang, ok
}

// IsBinaryExtension reports whether extension belongs to the Walker's
// binary-extension gate.
func IsBinaryExtension(extension string) bool {
	return binaryExtensions[strings.ToLower(extension)]
}
