package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/pier/internal/runner"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <alias> [args...]",
		Short: "Run a script",
		Long: `Runs the script stored under alias through the configured shell
(default_shell in the config file, else $SHELL, else sh). Extra arguments
are appended to the command. The exit code of the script is passed through.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.open()
			if err != nil {
				return err
			}
			script, err := p.FetchScript(args[0])
			if err != nil {
				return err
			}

			r := &runner.Runner{
				Shell:  p.DefaultShell(),
				Stdin:  a.in,
				Stdout: a.out,
				Stderr: a.errOut,
				Logger: a.logger,
			}
			return r.Run(cmd.Context(), script, args[1:])
		},
	}

	// flags after the alias belong to the script
	cmd.Flags().SetInterspersed(false)

	return cmd
}
