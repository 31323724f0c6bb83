// Package ast defines the instructions produced by parsing a script.
package ast

import (
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/ahiru/internal/token"
)

// Node represents a portion of a parsed script. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Instruction is one line of a script. The set of instructions is closed:
// *String, *Delay and *Unknown.
type Instruction interface {
	Node
	// Command returns the command word as written in the source.
	Command() string
	instructionNode()
}

// String types literal text on the target device.
type String struct {
	From   token.Position // position of the command word
	ArgPos token.Position // position of the first argument character
	Text   string
	Source string // the full source line
}

func (x *String) instructionNode() {}

func (x *String) Pos() token.Position { return x.From }
func (x *String) End() token.Position { return x.ArgPos.Advance(x.Text) }
func (x *String) Command() string     { return string(token.STRING) }
func (x *String) String() string      { return "STRING " + x.Text }

// Delay pauses the target device for a number of milliseconds.
type Delay struct {
	From         token.Position
	ArgPos       token.Position
	Literal      string // the argument as written
	Milliseconds int
	Source       string
}

func (x *Delay) instructionNode() {}

func (x *Delay) Pos() token.Position { return x.From }
func (x *Delay) End() token.Position { return x.ArgPos.Advance(x.Literal) }
func (x *Delay) Command() string     { return string(token.DELAY) }
func (x *Delay) String() string      { return "DELAY " + strconv.Itoa(x.Milliseconds) }

// Unknown holds a line whose command is not recognized. It compiles to
// nothing.
type Unknown struct {
	From     token.Position
	ArgPos   token.Position
	Name     string
	Argument string
	Source   string
}

func (x *Unknown) instructionNode() {}

func (x *Unknown) Pos() token.Position { return x.From }
func (x *Unknown) End() token.Position { return x.ArgPos.Advance(x.Argument) }
func (x *Unknown) Command() string     { return x.Name }
func (x *Unknown) String() string      { return x.Source }

// Script is the ordered list of instructions parsed from one source text.
type Script struct {
	Filename     string
	Instructions []Instruction
}

// Len returns the number of instructions.
func (s *Script) Len() int {
	return len(s.Instructions)
}

func (s *Script) String() string {
	lines := make([]string, 0, len(s.Instructions))
	for _, instr := range s.Instructions {
		lines = append(lines, instr.String())
	}
	return strings.Join(lines, "\n")
}
