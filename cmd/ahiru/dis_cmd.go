package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/ahiru"
	"github.com/deepnoodle-ai/ahiru/dis"
)

func newDisCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dis [file]",
		Short: "Disassemble compiled bytecode",
		Long: `Disassemble compiled bytecode (inject.bin by default). Key presses are
mapped back to characters using the configured key map.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := ahiru.DefaultOutput
			if len(args) > 0 {
				path = args[0]
			}
			code, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			km, err := a.loadKeymap()
			if err != nil {
				return err
			}
			instructions, err := dis.Disassemble(code, km)
			if err != nil {
				return err
			}
			if source, _ := cmd.Flags().GetBool("source"); source {
				for _, line := range dis.Coalesce(instructions) {
					fmt.Fprintln(a.stdout, line)
				}
				return nil
			}
			dis.Print(instructions, a.stdout)
			return nil
		},
	}
	cmd.Flags().Bool("source", false, "print a script equivalent to the bytecode")
	return cmd
}
