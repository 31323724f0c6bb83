package bytecode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/ahiru/op"
)

func TestInstructionIter(t *testing.T) {
	code := []byte{0x00, 0x64, 0x04, 0x02}
	require.Nil(t, Validate(code))

	all := NewInstructionIter(code).All()
	require.Equal(t, []Instruction{
		{Offset: 0, Code: op.Delay, Operand: 0x64},
		{Offset: 2, Code: 0x04, Operand: 0x02},
	}, all)
}

func TestInstructionIterPartial(t *testing.T) {
	code := []byte{0x00, 0x64, 0x04}
	require.EqualError(t, Validate(code), "bytecode length 3 is not a multiple of 2")
	require.Len(t, NewInstructionIter(code).All(), 1)
	require.Empty(t, NewInstructionIter(nil).All())
}
