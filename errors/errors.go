// Package errors defines the errors raised while parsing and compiling
// scripts, each carrying an error code and a source location.
package errors

import (
	"fmt"
	"unicode/utf8"
)

// SourceLocation represents a position in script source.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

func withLocation(msg string, loc SourceLocation) string {
	if loc.IsZero() {
		return msg
	}
	return fmt.Sprintf("%s (%s)", msg, loc)
}

func formatted(code ErrorCode, kind, msg string, loc SourceLocation, endColumn int) *FormattedError {
	fe := &FormattedError{
		Code:      code,
		Kind:      kind,
		Message:   msg,
		Filename:  loc.Filename,
		Line:      loc.Line,
		Column:    loc.Column,
		EndColumn: endColumn,
	}
	if loc.Source != "" {
		fe.SourceLines = []SourceLineEntry{
			{Number: loc.Line, Text: loc.Source, IsMain: true},
		}
	}
	return fe
}

// MalformedLineError is returned by the strict parser for a line that cannot
// be split into a command and an argument.
type MalformedLineError struct {
	Location SourceLocation
	Text     string
}

func (e *MalformedLineError) Error() string {
	return withLocation(fmt.Sprintf("parse error: malformed line %q", e.Text), e.Location)
}

// Code returns E1001.
func (e *MalformedLineError) Code() ErrorCode { return E1001 }

// ToFormatted converts to the FormattedError type for display.
func (e *MalformedLineError) ToFormatted() *FormattedError {
	fe := formatted(E1001, "parse error", fmt.Sprintf("malformed line %q", e.Text),
		e.Location, e.Location.Column+utf8.RuneCountInString(e.Text)-1)
	fe.Hint = SuggestCommand(e.Text)
	fe.Note = "expected COMMAND followed by a space and an argument"
	return fe
}

// InvalidDurationError indicates a DELAY argument that is not a
// non-negative integer.
type InvalidDurationError struct {
	Location SourceLocation
	Value    string
	Cause    error
}

func (e *InvalidDurationError) Error() string {
	return withLocation(fmt.Sprintf("parse error: invalid duration %q", e.Value), e.Location)
}

func (e *InvalidDurationError) Unwrap() error {
	return e.Cause
}

// Code returns E1002.
func (e *InvalidDurationError) Code() ErrorCode { return E1002 }

// ToFormatted converts to the FormattedError type for display.
func (e *InvalidDurationError) ToFormatted() *FormattedError {
	end := e.Location.Column + utf8.RuneCountInString(e.Value) - 1
	fe := formatted(E1002, "parse error", fmt.Sprintf("invalid duration %q", e.Value), e.Location, end)
	fe.Note = "DELAY takes a non-negative number of milliseconds"
	return fe
}

// UnknownKeyError indicates a STRING character with no key map entry.
type UnknownKeyError struct {
	Location SourceLocation
	Char     rune
}

func (e *UnknownKeyError) Error() string {
	return withLocation(fmt.Sprintf("compile error: unknown key %q", e.Char), e.Location)
}

// Code returns E2001.
func (e *UnknownKeyError) Code() ErrorCode { return E2001 }

// ToFormatted converts to the FormattedError type for display.
func (e *UnknownKeyError) ToFormatted() *FormattedError {
	fe := formatted(E2001, "compile error", fmt.Sprintf("unknown key %q", e.Char), e.Location, 0)
	fe.Note = "add the character to the key map"
	return fe
}

// KeymapError describes a single bad entry in a key map file.
type KeymapError struct {
	ErrCode ErrorCode
	Key     string
	Value   string
	Cause   error
}

func (e *KeymapError) Error() string {
	msg := fmt.Sprintf("keymap error: %s for key %q", e.ErrCode.Description(), e.Key)
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *KeymapError) Unwrap() error {
	return e.Cause
}

// Code returns the key map error code.
func (e *KeymapError) Code() ErrorCode { return e.ErrCode }

// ToFormatted converts to the FormattedError type for display.
func (e *KeymapError) ToFormatted() *FormattedError {
	msg := fmt.Sprintf("%s for key %q", e.ErrCode.Description(), e.Key)
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	fe := &FormattedError{Code: e.ErrCode, Kind: "keymap error", Message: msg}
	if e.ErrCode == E3001 {
		fe.Note = `descriptors are three hex bytes: "modifier,reserved,keycode"`
	}
	return fe
}
