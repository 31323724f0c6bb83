package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/ahiru/errors"
	"github.com/deepnoodle-ai/ahiru/keymap"
)

var red = color.New(color.FgRed).SprintFunc()

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (a *app) useColor() bool {
	return !a.v.GetBool("no-color") && isTerminal(a.stderr)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func (a *app) processGlobalFlags() {
	if !a.useColor() {
		color.NoColor = true
	}
	level := zerolog.InfoLevel
	if a.v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{
		Out:        a.stderr,
		NoColor:    !a.useColor(),
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()
}

func (a *app) loadKeymap() (keymap.Map, error) {
	path := a.v.GetString("keymap")
	km, err := keymap.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("keymap", path).Int("keys", len(km)).Msg("loaded keymap")
	return km, nil
}

func (a *app) printJSON(value any) error {
	var data []byte
	var err error
	if a.v.GetBool("no-color") || !isTerminal(a.stdout) {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = prettyjson.Marshal(value)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, string(data))
	return nil
}

// printError writes err to stderr, using the rich diagnostic format when the
// error carries source context.
func (a *app) printError(err error) {
	formatter := errors.NewFormatter(a.useColor())

	var merr *multierror.Error
	if stderrors.As(err, &merr) {
		formatted := make([]*errors.FormattedError, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			var ferr errors.FormattableError
			if stderrors.As(e, &ferr) {
				formatted = append(formatted, ferr.ToFormatted())
			} else {
				formatted = append(formatted, &errors.FormattedError{Message: e.Error()})
			}
		}
		fmt.Fprint(a.stderr, formatter.FormatMultiple(formatted))
		return
	}
	var ferr errors.FormattableError
	if stderrors.As(err, &ferr) {
		fmt.Fprint(a.stderr, formatter.Format(ferr.ToFormatted()))
		return
	}
	fmt.Fprintln(a.stderr, red(err.Error()))
}
