// Package dis supports analysis of compiled injection bytecode by
// disassembling it. Key presses are mapped back to characters with the
// key map that produced them.
package dis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/deepnoodle-ai/ahiru/bytecode"
	"github.com/deepnoodle-ai/ahiru/internal/table"
	"github.com/deepnoodle-ai/ahiru/keymap"
	"github.com/deepnoodle-ai/ahiru/op"
)

// Instruction represents a single bytecode instruction and its operand.
type Instruction struct {
	Offset  int
	Name    string
	Opcode  op.Code
	Operand byte
	// Char is the character typed by a KEY instruction. Valid only when
	// Mapped is true.
	Char   rune
	Mapped bool
}

// Annotation describes the effect of the instruction.
func (i Instruction) Annotation() string {
	if op.IsDelay(i.Opcode) {
		return fmt.Sprintf("%dms", i.Operand)
	}
	if i.Mapped {
		return strconv.QuoteRune(i.Char)
	}
	return ""
}

// Disassemble returns a parsed representation of the given bytecode. km may
// be nil, in which case key presses are left unannotated.
func Disassemble(code []byte, km keymap.Map) ([]Instruction, error) {
	if err := bytecode.Validate(code); err != nil {
		return nil, err
	}
	reverse := km.Reverse()
	var instructions []Instruction
	iter := bytecode.NewInstructionIter(code)
	for {
		val, ok := iter.Next()
		if !ok {
			break
		}
		instr := Instruction{
			Offset:  val.Offset,
			Name:    op.GetInfo(val.Code).Name,
			Opcode:  val.Code,
			Operand: val.Operand,
		}
		if !op.IsDelay(val.Code) {
			instr.Char, instr.Mapped = reverse[keymap.Chord{Keycode: byte(val.Code), Modifier: val.Operand}]
		}
		instructions = append(instructions, instr)
	}
	return instructions, nil
}

var (
	bold    = color.New(color.Bold)
	yellow  = color.New(color.FgYellow)
	green   = color.New(color.FgGreen)
	magenta = color.New(color.FgMagenta)
)

// Print a string representation of the given instructions to the given writer.
func Print(instructions []Instruction, writer io.Writer) {
	var lines [][]string
	for _, instr := range instructions {
		values := []string{
			strconv.Itoa(instr.Offset),
			bold.Sprint(instr.Name),
			fmt.Sprintf("%02x %02x", byte(instr.Opcode), instr.Operand),
		}
		switch {
		case op.IsDelay(instr.Opcode):
			values = append(values, yellow.Sprint(instr.Annotation()))
		case instr.Mapped:
			values = append(values, green.Sprint(instr.Annotation()))
		default:
			values = append(values, magenta.Sprint("?"))
		}
		lines = append(lines, values)
	}

	table.NewTable(writer).
		WithHeader([]string{"OFFSET", "OPCODE", "OPERANDS", "INFO"}).
		WithColumnAlignment([]table.Alignment{
			table.AlignRight,
			table.AlignLeft,
			table.AlignLeft,
			table.AlignLeft,
		}).
		WithHeaderAlignment([]table.Alignment{
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
		}).
		WithRows(lines).
		Render()
}

// Coalesce rebuilds script lines from instructions. Runs of mapped key
// presses become a STRING. Delay chunks are summed into one DELAY up to and
// including the first chunk shorter than op.MaxDelay, which always ends the
// encoding of a single DELAY line, so compiling the result reproduces the
// bytecode. Key presses that cannot be written in a STRING line are emitted
// as REM comments.
func Coalesce(instructions []Instruction) []string {
	var lines []string
	var text strings.Builder
	delay, inDelay := 0, false

	flush := func() {
		if text.Len() > 0 {
			lines = append(lines, "STRING "+text.String())
			text.Reset()
		}
		if inDelay {
			lines = append(lines, "DELAY "+strconv.Itoa(delay))
			delay, inDelay = 0, false
		}
	}

	for _, instr := range instructions {
		switch {
		case op.IsDelay(instr.Opcode):
			if text.Len() > 0 {
				flush()
			}
			delay += int(instr.Operand)
			inDelay = true
			if instr.Operand < op.MaxDelay {
				flush()
			}
		case instr.Mapped && instr.Char != '\n' && instr.Char != '\r':
			if inDelay {
				flush()
			}
			text.WriteRune(instr.Char)
		default:
			flush()
			if instr.Mapped {
				lines = append(lines, fmt.Sprintf("REM key %s", strconv.QuoteRune(instr.Char)))
			} else {
				info := op.GetInfo(instr.Opcode)
				lines = append(lines, fmt.Sprintf("REM unmapped key %02x %s %02x", byte(info.Code), info.Operand, instr.Operand))
			}
		}
	}
	flush()
	return lines
}
