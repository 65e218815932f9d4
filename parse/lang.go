package parse

import (
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/kotlin"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language identifies a supported grammar.
type Language string

const (
	LangGo         Language = "go"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangJava       Language = "java"
	LangKotlin     Language = "kotlin"
)

// LanguageFromName resolves a language name as given on a command line.
func LanguageFromName(name string) (Language, bool) {
	switch Language(strings.ToLower(name)) {
	case LangGo, LangJavaScript, LangTypeScript, LangTSX,
		LangPython, LangRust, LangJava, LangKotlin:
		return Language(strings.ToLower(name)), true
	}
	return "", false
}

// LanguageFromExtension returns the Language for a file extension.
func LanguageFromExtension(ext string) (Language, bool) {
	switch strings.ToLower(ext) {
	case ".go":
		return LangGo, true
	case ".js", ".mjs", ".cjs", ".jsx":
		return LangJavaScript, true
	case ".ts", ".mts", ".cts":
		return LangTypeScript, true
	case ".tsx":
		return LangTSX, true
	case ".py", ".pyw":
		return LangPython, true
	case ".rs":
		return LangRust, true
	case ".java":
		return LangJava, true
	case ".kt", ".kts":
		return LangKotlin, true
	}
	return "", false
}

// LanguageFromPath returns the Language for a file path.
func LanguageFromPath(path string) (Language, bool) {
	return LanguageFromExtension(filepath.Ext(path))
}

func grammar(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangGo:
		return golang.GetLanguage(), nil
	case LangJavaScript:
		return javascript.GetLanguage(), nil
	case LangTypeScript:
		return typescript.GetLanguage(), nil
	case LangTSX:
		return tsx.GetLanguage(), nil
	case LangPython:
		return python.GetLanguage(), nil
	case LangRust:
		return rust.GetLanguage(), nil
	case LangJava:
		return java.GetLanguage(), nil
	case LangKotlin:
		return kotlin.GetLanguage(), nil
	}
	return nil, fmt.Errorf("parse: unsupported language %q", lang)
}
