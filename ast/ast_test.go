package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/ahiru/internal/token"
)

func TestInstructions(t *testing.T) {
	str := &String{
		From:   token.Position{Line: 0},
		ArgPos: token.Position{Column: 7, Char: 7},
		Text:   "hello",
		Source: "STRING hello",
	}
	require.Equal(t, "STRING", str.Command())
	require.Equal(t, "STRING hello", str.String())
	require.Equal(t, 12, str.End().Column)

	delay := &Delay{Literal: "0100", Milliseconds: 100, Source: "DELAY 0100"}
	require.Equal(t, "DELAY", delay.Command())
	require.Equal(t, "DELAY 100", delay.String())

	unknown := &Unknown{Name: "GUI", Argument: "r", Source: "GUI r"}
	require.Equal(t, "GUI", unknown.Command())
	require.Equal(t, "GUI r", unknown.String())

	script := &Script{Instructions: []Instruction{delay, str, unknown}}
	require.Equal(t, 3, script.Len())
	require.Equal(t, "DELAY 100\nSTRING hello\nGUI r", script.String())
}
