package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/ahiru/ast"
	"github.com/deepnoodle-ai/ahiru/parser"
)

type parsedInstruction struct {
	Line     int    `json:"line"`
	Type     string `json:"type"`
	Command  string `json:"command"`
	Argument string `json:"argument"`
	Value    *int   `json:"value,omitempty"`
}

func toParsed(instr ast.Instruction) parsedInstruction {
	p := parsedInstruction{
		Line:    instr.Pos().LineNumber(),
		Command: instr.Command(),
	}
	switch instr := instr.(type) {
	case *ast.String:
		p.Type = "string"
		p.Argument = instr.Text
	case *ast.Delay:
		p.Type = "delay"
		p.Argument = instr.Literal
		ms := instr.Milliseconds
		p.Value = &ms
	case *ast.Unknown:
		p.Type = "unknown"
		p.Argument = instr.Argument
	}
	return p
}

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <script>",
		Short: "Print the instructions parsed from a script as JSON",
		Args:  cobra.ExactArgs(1),
		// The root command binds its own --strict flag to the same key, so
		// this one is bound only when parse is the command being run.
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.v.BindPFlag("strict", cmd.Flags().Lookup("strict"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var opts []parser.Option
			opts = append(opts, parser.WithFilename(args[0]))
			if a.v.GetBool("strict") {
				opts = append(opts, parser.WithStrict())
			}
			script, err := parser.Parse(context.Background(), string(data), opts...)
			if err != nil {
				return err
			}
			out := make([]parsedInstruction, 0, script.Len())
			for _, instr := range script.Instructions {
				out = append(out, toParsed(instr))
			}
			return a.printJSON(out)
		},
	}
	cmd.Flags().Bool("strict", false, "reject lines that have no space between command and argument")
	return cmd
}
