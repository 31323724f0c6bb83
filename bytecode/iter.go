// Package bytecode walks compiled injection bytecode one instruction at a
// time.
package bytecode

import (
	"fmt"

	"github.com/deepnoodle-ai/ahiru/op"
)

// Instruction is one decoded instruction.
type Instruction struct {
	Offset  int
	Code    op.Code
	Operand byte
}

// Validate checks that code holds a whole number of instructions.
func Validate(code []byte) error {
	if len(code)%op.Width != 0 {
		return fmt.Errorf("bytecode length %d is not a multiple of %d", len(code), op.Width)
	}
	return nil
}

// InstructionIter iterates over the instructions in compiled bytecode.
type InstructionIter struct {
	code []byte
	pos  int
}

// NewInstructionIter creates a new instruction iterator for the given code.
// A trailing partial instruction is ignored; use Validate to reject it.
func NewInstructionIter(code []byte) *InstructionIter {
	return &InstructionIter{code: code}
}

// Next returns the next instruction.
// Returns false when there are no more instructions.
func (i *InstructionIter) Next() (Instruction, bool) {
	if i.pos+op.Width > len(i.code) {
		return Instruction{}, false
	}
	instr := Instruction{
		Offset:  i.pos,
		Code:    op.Code(i.code[i.pos]),
		Operand: i.code[i.pos+1],
	}
	i.pos += op.Width
	return instr, true
}

// All returns all instructions as a newly allocated slice.
func (i *InstructionIter) All() []Instruction {
	var results []Instruction
	for {
		instr, ok := i.Next()
		if !ok {
			break
		}
		results = append(results, instr)
	}
	return results
}
