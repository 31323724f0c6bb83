package errors

import (
	stderrors "errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceLocation_String(t *testing.T) {
	require.Equal(t, "payload.txt:3:7", SourceLocation{Filename: "payload.txt", Line: 3, Column: 7}.String())
	require.Equal(t, "3:7", SourceLocation{Line: 3, Column: 7}.String())
	require.True(t, SourceLocation{}.IsZero())
	require.False(t, SourceLocation{Line: 1}.IsZero())
}

func TestMalformedLineError(t *testing.T) {
	err := &MalformedLineError{
		Location: SourceLocation{Filename: "p.txt", Line: 2, Column: 1, Source: "STRING"},
		Text:     "STRING",
	}
	require.Equal(t, `parse error: malformed line "STRING" (p.txt:2:1)`, err.Error())
	require.Equal(t, E1001, err.Code())

	expected := strings.Join([]string{
		`parse error[E1001]: malformed line "STRING"`,
		"  --> p.txt:2:1",
		"   |",
		" 2 | STRING",
		"   | ^^^^^^",
		"   = note: expected COMMAND followed by a space and an argument",
		"",
	}, "\n")
	require.Equal(t, expected, NewFormatter(false).Format(err.ToFormatted()))

	err.Text = "STRNG"
	require.Equal(t, "Did you mean 'STRING'?", err.ToFormatted().Hint)
	require.Contains(t, NewFormatter(false).Format(err.ToFormatted()),
		"   = hint: Did you mean 'STRING'?\n")
}

func TestInvalidDurationError(t *testing.T) {
	cause := stderrors.New("boom")
	err := &InvalidDurationError{
		Location: SourceLocation{Line: 1, Column: 7, Source: "DELAY abc"},
		Value:    "abc",
		Cause:    cause,
	}
	require.Equal(t, `parse error: invalid duration "abc" (1:7)`, err.Error())
	require.ErrorIs(t, err, cause)
	require.Contains(t, NewFormatter(false).Format(err.ToFormatted()), "      ^^^\n")
}

func TestUnknownKeyError(t *testing.T) {
	err := &UnknownKeyError{Char: 'é'}
	require.Equal(t, `compile error: unknown key 'é'`, err.Error())
	require.Equal(t, E2001, err.Code())

	var target *UnknownKeyError
	require.True(t, stderrors.As(error(err), &target))
	require.Equal(t, 'é', target.Char)
}

func TestKeymapError(t *testing.T) {
	cause := stderrors.New("bad hex")
	err := &KeymapError{ErrCode: E3001, Key: "A", Value: "zz,00,04", Cause: cause}
	require.Equal(t, `keymap error: invalid key descriptor for key "A" (value "zz,00,04"): bad hex`, err.Error())
	require.ErrorIs(t, err, cause)

	fe := err.ToFormatted()
	require.Equal(t, E3001, fe.Code)
	require.Equal(t, `invalid key descriptor for key "A" (value "zz,00,04"): bad hex`, fe.Message)
	require.Equal(t, strings.Join([]string{
		`keymap error[E3001]: invalid key descriptor for key "A" (value "zz,00,04"): bad hex`,
		`   = note: descriptors are three hex bytes: "modifier,reserved,keycode"`,
		"",
	}, "\n"), NewFormatter(false).Format(fe))

	fe = (&KeymapError{ErrCode: E3002, Key: "ab"}).ToFormatted()
	require.Equal(t, `invalid key name for key "ab"`, fe.Message)
	require.Empty(t, fe.Note)
}

func TestErrorCode_Description(t *testing.T) {
	require.Equal(t, "malformed line", E1001.Description())
	require.Equal(t, "unknown key", E2001.Description())
	require.Equal(t, "unknown error", ErrorCode("E9999").Description())
	require.Equal(t, "E1002", E1002.String())
}

func TestErrorCode_Category(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		category string
	}{
		{E1001, "parse"},
		{E1002, "parse"},
		{E2001, "compile"},
		{E3001, "keymap"},
		{ErrorCode("X"), "unknown"},
		{ErrorCode("E9001"), "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.category, tt.code.Category(), string(tt.code))
	}
}

func TestFormatMultiple(t *testing.T) {
	f := NewFormatter(false)
	require.Equal(t, "", f.FormatMultiple(nil))

	errs := []*FormattedError{
		{Message: "first"},
		{Message: "second"},
	}
	out := f.FormatMultiple(errs)
	require.Contains(t, out, "error[1/2]: first\n")
	require.Contains(t, out, "error[2/2]: second\n")
	require.True(t, strings.HasSuffix(out, "found 2 errors\n"))
}

func TestSuggestSimilar(t *testing.T) {
	candidates := []string{"STRING", "DELAY"}

	got := SuggestSimilar("DELA", candidates)
	require.Len(t, got, 1)
	require.Equal(t, "DELAY", got[0].Value)

	got = SuggestSimilar("delay", candidates)
	require.Len(t, got, 1)
	require.Equal(t, "DELAY", got[0].Value)

	require.Empty(t, SuggestSimilar("STRING", candidates))
	require.Empty(t, SuggestSimilar("GUI", candidates))
	require.Empty(t, SuggestSimilar("", candidates))

	require.Equal(t, "Did you mean 'DELAY'?", FormatSuggestions([]Suggestion{{Value: "DELAY"}}))
	require.Equal(t, "Did you mean one of: 'A', 'B'?",
		FormatSuggestions([]Suggestion{{Value: "A"}, {Value: "B"}}))
	require.Equal(t, "", FormatSuggestions(nil))
}

func TestSuggestCommand(t *testing.T) {
	require.Equal(t, "Did you mean 'DELAY'?", SuggestCommand("DELY"))
	require.Equal(t, "Did you mean 'STRING'?", SuggestCommand("string"))
	require.Equal(t, "", SuggestCommand("STRING"))
	require.Equal(t, "", SuggestCommand("GUI"))
}

func TestEditDistance(t *testing.T) {
	tests := []struct{ a, b string }{
		{"", "abc"},
		{"kitten", "sitting"},
		{"STRING", "STRIGN"},
	}
	want := []int{3, 3, 2}
	for i, tt := range tests {
		require.Equal(t, want[i], editDistance(tt.a, tt.b), strconv.Itoa(i))
	}
}
