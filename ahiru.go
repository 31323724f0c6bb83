// Package ahiru compiles keystroke injection scripts into the raw bytecode
// run by USB keystroke injection hardware.
//
//	km, _ := keymap.Load("instructions.json")
//	code, err := ahiru.Compile("DELAY 500\nSTRING hello", km)
package ahiru

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/ahiru/compiler"
	"github.com/deepnoodle-ai/ahiru/keymap"
	"github.com/deepnoodle-ai/ahiru/parser"
)

// DefaultOutput is the conventional name of the compiled payload.
const DefaultOutput = "inject.bin"

// DefaultKeymap is the key map file read when none is configured.
const DefaultKeymap = "instructions.json"

// Option configures a compilation.
type Option func(*options)

type options struct {
	filename string
	strict   bool
	trimZero bool
	logger   *zerolog.Logger
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.strict {
		opts = append(opts, parser.WithStrict())
	}
	return opts
}

func (o *options) compilerOpts() []compiler.Option {
	var opts []compiler.Option
	if o.trimZero {
		opts = append(opts, compiler.WithoutTrailingZero())
	}
	if o.logger != nil {
		opts = append(opts, compiler.WithLogger(*o.logger))
	}
	return opts
}

// WithFilename sets the filename for the source code being compiled.
// This is used for error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithStrict rejects lines that hold no space instead of using the whole
// line as the argument.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithoutTrailingZero drops the zero length wait that follows a delay which
// is an exact multiple of 255ms.
func WithoutTrailingZero() Option {
	return func(o *options) {
		o.trimZero = true
	}
}

// WithLogger sets a logger for compiler debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// Compile parses and compiles source into bytecode.
func Compile(source string, km keymap.Lookup, opts ...Option) ([]byte, error) {
	o := collectOptions(opts...)
	script, err := parser.Parse(context.Background(), source, o.parserOpts()...)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(script, km, o.compilerOpts()...)
}

// CompileFile reads and compiles the script at path. The path is used as the
// filename in errors unless WithFilename is given.
func CompileFile(path string, km keymap.Lookup, opts ...Option) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithFilename(path)}, opts...)
	return Compile(string(data), km, opts...)
}
