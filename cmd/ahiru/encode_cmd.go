package main

import (
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/ahiru"
	"github.com/deepnoodle-ai/ahiru/b64"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <script> [output]",
		Short: "Write a script as base64 text",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			output := ahiru.DefaultOutput
			if len(args) > 1 {
				output = args[1]
			}
			if err := b64.EncodeFile(args[0], output); err != nil {
				return err
			}
			a.log.Info().Str("script", args[0]).Str("output", output).Msg("encoded")
			return nil
		},
	}
}
