// Package compiler turns a parsed script into injection bytecode.
package compiler

import (
	"bytes"
	stderrors "errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/ahiru/ast"
	"github.com/deepnoodle-ai/ahiru/errors"
	"github.com/deepnoodle-ai/ahiru/internal/token"
	"github.com/deepnoodle-ai/ahiru/keymap"
)

// Option is a configuration function for a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for per-instruction debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Compiler) {
		c.log = logger
	}
}

// WithoutTrailingZero drops the zero length chunk that otherwise follows a
// delay that is an exact multiple of 255ms.
func WithoutTrailingZero() Option {
	return func(c *Compiler) {
		c.trimZero = true
	}
}

// Compiler holds configuration for compiling scripts. It keeps no state
// between calls and may be used from several goroutines.
type Compiler struct {
	keys     keymap.Lookup
	log      zerolog.Logger
	trimZero bool
}

// New returns a Compiler that resolves characters with km.
func New(km keymap.Lookup, options ...Option) *Compiler {
	c := &Compiler{keys: km, log: zerolog.Nop()}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Compile a script with the given key map.
func Compile(script *ast.Script, km keymap.Lookup, options ...Option) ([]byte, error) {
	return New(km, options...).Compile(script)
}

// Compile encodes every instruction in order. Unknown commands add no bytes.
// On error no bytes are returned.
func (c *Compiler) Compile(script *ast.Script) ([]byte, error) {
	var buf bytes.Buffer
	for _, instr := range script.Instructions {
		before := buf.Len()
		if err := c.compile(&buf, instr); err != nil {
			return nil, err
		}
		c.log.Debug().
			Int("line", instr.Pos().LineNumber()).
			Str("command", instr.Command()).
			Int("bytes", buf.Len()-before).
			Msg("compiled instruction")
	}
	return buf.Bytes(), nil
}

func (c *Compiler) compile(buf *bytes.Buffer, instr ast.Instruction) error {
	switch instr := instr.(type) {
	case *ast.String:
		offset, err := writeString(buf, instr.Text, c.keys)
		if err != nil {
			var unknown *errors.UnknownKeyError
			if stderrors.As(err, &unknown) {
				unknown.Location = location(instr.ArgPos.Advance(instr.Text[:offset]), instr.Source)
			}
			return err
		}
	case *ast.Delay:
		if err := writeDelay(buf, instr.Milliseconds, c.trimZero); err != nil {
			var invalid *errors.InvalidDurationError
			if stderrors.As(err, &invalid) {
				invalid.Location = location(instr.ArgPos, instr.Source)
			}
			return err
		}
	case *ast.Unknown:
		event := c.log.Debug().
			Int("line", instr.Pos().LineNumber()).
			Str("command", instr.Name)
		if hint := errors.SuggestCommand(instr.Name); hint != "" {
			event = event.Str("hint", hint)
		}
		event.Msg("skipping unknown command")
	default:
		return fmt.Errorf("unsupported instruction type %T", instr)
	}
	return nil
}

func location(pos token.Position, source string) errors.SourceLocation {
	return errors.SourceLocation{
		Filename: pos.File,
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
		Source:   source,
	}
}
