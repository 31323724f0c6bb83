package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/ahiru"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// app carries the configuration and output streams shared by all commands.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ahiru <script>",
		Short: "Compile keystroke injection scripts into inject.bin",
		Long: `Compile a keystroke injection script (STRING, DELAY and REM lines)
into the raw bytecode loaded by USB keystroke injection hardware.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			a.processGlobalFlags()
			return nil
		},
		RunE: a.runCompile,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is .ahiru.{yaml,toml,json} in $HOME or the working directory)")
	pf.StringP("keymap", "k", ahiru.DefaultKeymap, "key map file (.json or .toml) or builtin:<name>")
	pf.Bool("no-color", false, "disable colored output")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	for _, name := range []string{"config", "keymap", "no-color", "verbose"} {
		a.v.BindPFlag(name, pf.Lookup(name))
	}

	f := root.Flags()
	f.StringP("output", "o", ahiru.DefaultOutput, "compiled output file")
	f.Bool("strict", false, "reject lines that have no space between command and argument")
	f.Bool("no-trailing-zero", false, "drop the zero length wait after delays that are multiples of 255ms")
	f.Bool("hex", false, "print a hex dump of the compiled bytecode")
	for _, name := range []string{"output", "strict", "no-trailing-zero", "hex"} {
		a.v.BindPFlag(name, f.Lookup(name))
	}

	root.AddCommand(
		newParseCmd(a),
		newDisCmd(a),
		newEncodeCmd(a),
		newKeymapCmd(a),
		newVersionCmd(a),
	)
	return root
}

// loadConfig reads an optional config file and AHIRU_* environment variables.
func (a *app) loadConfig() error {
	a.v.SetEnvPrefix("ahiru")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return err
		}
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", cfgFile, err)
		}
		return nil
	}

	a.v.SetConfigName(".ahiru")
	a.v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		a.v.AddConfigPath(home)
	}
	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return a.printJSON(map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
			}
			fmt.Fprintln(a.stdout, version)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "print as JSON")
	return cmd
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
		log:    zerolog.Nop(),
	}
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.printError(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
