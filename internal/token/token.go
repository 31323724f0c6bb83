// Package token defines the commands recognized by the script parser and the
// positions used to point back into script source.
package token

import (
	"fmt"
	"unicode/utf8"
)

// Type describes the type of a script command as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char   int    // byte offset within the file
	Line   int    // 0-indexed line number
	Column int    // 0-indexed column number
	File   string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns the Position just past text on the same line. Columns
// count characters, not bytes.
func (p Position) Advance(text string) Position {
	return Position{
		Char:   p.Char + len(text),
		Line:   p.Line,
		Column: p.Column + utf8.RuneCountInString(text),
		File:   p.File,
	}
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.LineNumber(), p.ColumnNumber())
	}
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// Command types
const (
	STRING  Type = "STRING"
	DELAY   Type = "DELAY"
	REM     Type = "REM"
	UNKNOWN Type = "UNKNOWN"
)

// Commands that produce bytecode
var commands = map[string]Type{
	"STRING": STRING,
	"DELAY":  DELAY,
}

// Commands returns the command words that produce bytecode, sorted.
func Commands() []string {
	return []string{string(DELAY), string(STRING)}
}

// LookupCommand returns the command type for the given command word.
// Matching is case sensitive.
func LookupCommand(word string) Type {
	if tok, ok := commands[word]; ok {
		return tok
	}
	return UNKNOWN
}

// IsComment reports whether the line is a comment. Any line whose content
// starts with the REM marker is a comment, including e.g. "REMARK".
func IsComment(line string) bool {
	return len(line) >= len(REM) && line[:len(REM)] == string(REM)
}
