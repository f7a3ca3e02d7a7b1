// Package codegen provides code generation helpers and constants.
package codegen

import (
	"unicode"
	"unicode/utf8"
)

// Identifiers used in generated table files.
const (
	FSMPackagePath  = "github.com/KromDaniel/addrspec/internal/fsm"
	FSMPackageName  = "fsm"
	StateType       = "State"
	NumStatesName   = "NumStates"
	NumClassesName  = "numClasses"
	ByteClassName   = "byteClass"
	TransitionsName = "classTransitions"
	AcceptName      = "acceptStates"

	// Generator is the tool name stamped into generated file headers.
	Generator = "addrspec"
)

// Ident returns base prefixed with prefix in lower camel case. An empty
// prefix returns base unchanged.
func Ident(prefix, base string) string {
	if prefix == "" {
		return base
	}
	return LowerFirst(prefix) + UpperFirst(base)
}

// LowerFirst converts the first character of a string to lowercase.
// Characters without case are left unchanged.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UpperFirst converts the first character of a string to uppercase.
// Characters without case are left unchanged.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(fn(r)) + s[size:]
}
