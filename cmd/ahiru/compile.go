package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/ahiru"
)

func (a *app) compileOptions() []ahiru.Option {
	opts := []ahiru.Option{ahiru.WithLogger(a.log)}
	if a.v.GetBool("strict") {
		opts = append(opts, ahiru.WithStrict())
	}
	if a.v.GetBool("no-trailing-zero") {
		opts = append(opts, ahiru.WithoutTrailingZero())
	}
	return opts
}

func (a *app) runCompile(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	km, err := a.loadKeymap()
	if err != nil {
		return err
	}
	script := args[0]
	code, err := ahiru.CompileFile(script, km, a.compileOptions()...)
	if err != nil {
		return err
	}

	output := a.v.GetString("output")
	if err := os.WriteFile(output, code, 0o644); err != nil {
		return err
	}
	a.log.Info().
		Str("script", script).
		Str("output", output).
		Int("bytes", len(code)).
		Msg("compiled")

	if a.v.GetBool("hex") {
		fmt.Fprint(a.stdout, hex.Dump(code))
	}
	return nil
}
