package parser

import (
	"strings"

	"github.com/deepnoodle-ai/ahiru/internal/token"
)

// Line is one script line split into its command and argument.
type Line struct {
	Command  string
	Argument string
	Source   string
	Pos      token.Position // start of the line
	ArgPos   token.Position // start of the argument
	// HasSpace is false when the line holds no space. Such lines use the
	// whole line as their argument.
	HasSpace bool
}

// Lines splits input into (command, argument) lines. Empty lines and lines
// starting with REM are dropped. A trailing carriage return is removed from
// each line.
func Lines(input string, filename string) []Line {
	var lines []Line
	offset := 0
	for i, text := range strings.Split(input, "\n") {
		start := offset
		offset += len(text) + 1
		text = strings.TrimSuffix(text, "\r")
		if text == "" || token.IsComment(text) {
			continue
		}
		pos := token.Position{Char: start, Line: i, File: filename}
		line := Line{Source: text, Pos: pos}
		if idx := strings.IndexByte(text, ' '); idx >= 0 {
			line.Command = text[:idx]
			line.Argument = text[idx+1:]
			line.ArgPos = pos.Advance(text[:idx+1])
			line.HasSpace = true
		} else {
			line.Command = text
			line.Argument = text
			line.ArgPos = pos
		}
		lines = append(lines, line)
	}
	return lines
}
