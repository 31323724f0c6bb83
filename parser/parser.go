// Package parser turns script text into an ast.Script.
//
// Each non-empty, non-comment line is split at its first space into a
// command and an argument. STRING and DELAY become typed instructions;
// anything else becomes an *ast.Unknown that the compiler skips.
package parser

import (
	"context"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/ahiru/ast"
	"github.com/deepnoodle-ai/ahiru/errors"
	"github.com/deepnoodle-ai/ahiru/internal/token"
)

// Parse the provided input as a script and return the resulting instructions.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Script, error) {
	p := New(input, options...)
	return p.Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in errors and positions.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithStrict rejects lines that hold no space with a MalformedLineError.
// By default such lines are accepted and their argument is the whole line,
// so "STRING" alone types the word "STRING".
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// Parser object
type Parser struct {
	input    string
	filename string
	strict   bool
}

// New returns a Parser for the given input.
func New(input string, options ...Option) *Parser {
	p := &Parser{input: input}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse the input. The first error aborts parsing.
func (p *Parser) Parse(ctx context.Context) (*ast.Script, error) {
	script := &ast.Script{Filename: p.filename}
	for _, line := range Lines(p.input, p.filename) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		instr, err := p.parseLine(line)
		if err != nil {
			return nil, err
		}
		script.Instructions = append(script.Instructions, instr)
	}
	return script, nil
}

func (p *Parser) parseLine(line Line) (ast.Instruction, error) {
	if p.strict && !line.HasSpace {
		return nil, &errors.MalformedLineError{
			Location: location(line.Pos, line.Source),
			Text:     line.Source,
		}
	}
	switch token.LookupCommand(line.Command) {
	case token.STRING:
		return &ast.String{
			From:   line.Pos,
			ArgPos: line.ArgPos,
			Text:   line.Argument,
			Source: line.Source,
		}, nil
	case token.DELAY:
		ms, err := ParseDuration(line.Argument)
		if err != nil {
			return nil, &errors.InvalidDurationError{
				Location: location(line.ArgPos, line.Source),
				Value:    line.Argument,
				Cause:    err,
			}
		}
		return &ast.Delay{
			From:         line.Pos,
			ArgPos:       line.ArgPos,
			Literal:      line.Argument,
			Milliseconds: ms,
			Source:       line.Source,
		}, nil
	default:
		return &ast.Unknown{
			From:     line.Pos,
			ArgPos:   line.ArgPos,
			Name:     line.Command,
			Argument: line.Argument,
			Source:   line.Source,
		}, nil
	}
}

// ParseDuration parses a DELAY argument as a non-negative number of
// milliseconds. Surrounding whitespace is ignored.
func ParseDuration(s string) (int, error) {
	ms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if ms < 0 {
		return 0, errNegative
	}
	return ms, nil
}

func location(pos token.Position, source string) errors.SourceLocation {
	return errors.SourceLocation{
		Filename: pos.File,
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
		Source:   source,
	}
}
