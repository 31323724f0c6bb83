package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/ahiru/internal/table"
	"github.com/deepnoodle-ai/ahiru/keymap"
)

func newKeymapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keymap",
		Short: "List or validate the configured key map",
		Long: fmt.Sprintf(`List or validate the configured key map.

Builtin layouts: %v`, keymap.BuiltinNames()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			km, err := a.loadKeymap()
			if err != nil {
				return err
			}
			if check, _ := cmd.Flags().GetBool("check"); check {
				fmt.Fprintf(a.stdout, "ok: %d keys\n", len(km))
				return nil
			}
			var rows [][]string
			for _, r := range km.Runes() {
				d := km[r]
				rows = append(rows, []string{
					strconv.QuoteRune(r),
					fmt.Sprintf("%02x", d.Modifier),
					fmt.Sprintf("%02x", d.Reserved),
					fmt.Sprintf("%02x", d.Keycode),
				})
			}
			table.NewTable(a.stdout).
				WithHeader([]string{"CHAR", "MODIFIER", "RESERVED", "KEYCODE"}).
				WithRows(rows).
				Render()
			return nil
		},
	}
	cmd.Flags().Bool("check", false, "only validate the key map")
	return cmd
}
