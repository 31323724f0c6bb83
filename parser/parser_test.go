package parser

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/ahiru/ast"
	"github.com/deepnoodle-ai/ahiru/errors"
)

func TestLines(t *testing.T) {
	lines := Lines("STRING hi\nDELAY 100", "")
	require.Len(t, lines, 2)
	require.Equal(t, "STRING", lines[0].Command)
	require.Equal(t, "hi", lines[0].Argument)
	require.Equal(t, "DELAY", lines[1].Command)
	require.Equal(t, "100", lines[1].Argument)

	require.Equal(t, 1, lines[1].Pos.Line)
	require.Equal(t, 10, lines[1].Pos.Char)
	require.Equal(t, 6, lines[1].ArgPos.Column)
}

func TestLinesDropsCommentsAndBlankLines(t *testing.T) {
	lines := Lines("REM ignore this\n\nSTRING a\nREMARK also a comment\n", "")
	require.Len(t, lines, 1)
	require.Equal(t, "STRING", lines[0].Command)
	require.Equal(t, 2, lines[0].Pos.Line)
}

func TestLinesSplitsOnFirstSpace(t *testing.T) {
	lines := Lines("STRING Hello, World  ", "")
	require.Len(t, lines, 1)
	require.Equal(t, "Hello, World  ", lines[0].Argument)

	lines = Lines("STRING  leading", "")
	require.Equal(t, " leading", lines[0].Argument)

	lines = Lines("STRING ", "")
	require.Equal(t, "", lines[0].Argument)
	require.True(t, lines[0].HasSpace)
}

func TestLinesWithoutSpaceUseWholeLine(t *testing.T) {
	lines := Lines("ENTER", "")
	require.Len(t, lines, 1)
	require.Equal(t, "ENTER", lines[0].Command)
	require.Equal(t, "ENTER", lines[0].Argument)
	require.False(t, lines[0].HasSpace)
}

func TestLinesStripsCarriageReturn(t *testing.T) {
	lines := Lines("STRING a\r\nDELAY 5\r\n", "")
	require.Len(t, lines, 2)
	require.Equal(t, "a", lines[0].Argument)
	require.Equal(t, "5", lines[1].Argument)
}

func TestParse(t *testing.T) {
	script, err := Parse(context.Background(), "STRING hi\nDELAY 100")
	require.Nil(t, err)
	require.Equal(t, 2, script.Len())

	str, ok := script.Instructions[0].(*ast.String)
	require.True(t, ok)
	require.Equal(t, "hi", str.Text)

	delay, ok := script.Instructions[1].(*ast.Delay)
	require.True(t, ok)
	require.Equal(t, 100, delay.Milliseconds)
	require.Equal(t, "100", delay.Literal)
}

func TestParseComment(t *testing.T) {
	script, err := Parse(context.Background(), "REM ignore this")
	require.Nil(t, err)
	require.Equal(t, 0, script.Len())

	script, err = Parse(context.Background(), "")
	require.Nil(t, err)
	require.Equal(t, 0, script.Len())
}

func TestParseUnknownCommand(t *testing.T) {
	script, err := Parse(context.Background(), "FOO bar\nstring lower")
	require.Nil(t, err)
	require.Equal(t, 2, script.Len())

	unknown, ok := script.Instructions[0].(*ast.Unknown)
	require.True(t, ok)
	require.Equal(t, "FOO", unknown.Command())
	require.Equal(t, "bar", unknown.Argument)

	// Commands are case sensitive
	_, ok = script.Instructions[1].(*ast.Unknown)
	require.True(t, ok)
}

func TestParseNoSpaceLenient(t *testing.T) {
	script, err := Parse(context.Background(), "STRING")
	require.Nil(t, err)
	require.Equal(t, 1, script.Len())
	str, ok := script.Instructions[0].(*ast.String)
	require.True(t, ok)
	// The whole line, command included, becomes the argument
	require.Equal(t, "STRING", str.Text)
}

func TestParseNoSpaceStrict(t *testing.T) {
	_, err := Parse(context.Background(), "STRING ok\nSTRING", WithStrict(), WithFilename("p.txt"))
	require.NotNil(t, err)

	var malformed *errors.MalformedLineError
	require.True(t, stderrors.As(err, &malformed))
	require.Equal(t, "STRING", malformed.Text)
	require.Equal(t, "p.txt", malformed.Location.Filename)
	require.Equal(t, 2, malformed.Location.Line)
	require.Equal(t, 1, malformed.Location.Column)

	_, err = Parse(context.Background(), "ENTER", WithStrict())
	require.True(t, stderrors.As(err, &malformed))

	script, err := Parse(context.Background(), "STRING ok\nREM\n", WithStrict())
	require.Nil(t, err)
	require.Equal(t, 1, script.Len())
}

func TestParseDelayErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{"not a number", "DELAY abc", "abc"},
		{"negative", "DELAY -5", "-5"},
		{"float", "DELAY 1.5", "1.5"},
		{"empty", "DELAY ", ""},
		{"no space", "DELAY", "DELAY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), "STRING a\n"+tt.input)
			require.NotNil(t, err)
			var invalid *errors.InvalidDurationError
			require.True(t, stderrors.As(err, &invalid))
			require.Equal(t, tt.value, invalid.Value)
			require.Equal(t, 2, invalid.Location.Line)
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"0", 0},
		{"255", 255},
		{" 100 ", 100},
		{"+7", 7},
		{"0100", 100},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		require.Nil(t, err, tt.input)
		require.Equal(t, tt.expected, got)
	}
	_, err := ParseDuration("-1")
	require.ErrorIs(t, err, errNegative)
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, "STRING a")
	require.ErrorIs(t, err, context.Canceled)
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"STRING hi\nDELAY 100",
		"REM comment",
		"DELAY 99999999999999999999",
		"STRING",
		"\r\n\r\n",
		"FOO bar baz",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		script, err := Parse(context.Background(), input)
		if err == nil && script == nil {
			t.Fatal("nil script without error")
		}
	})
}
