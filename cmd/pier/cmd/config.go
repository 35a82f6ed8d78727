package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/pier/foundation/core/error"
	"github.com/msto63/pier/foundation/utils/filex"
	"github.com/msto63/pier/pkg/core/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Create an empty config file if none exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path := a.settings.ConfigPath

				created, err := filex.CreateIfMissing(path)
				if err != nil {
					return mdwerror.Wrap(err, "cannot create config file").
						WithCode(mdwerror.CodeConfigWrite).
						WithOperation("config.init").
						WithDetail("path", path)
				}

				if !created {
					fmt.Fprintf(a.out, "%s %s\n", a.styles.Muted("Config already exists:"), path)
					return nil
				}
				fmt.Fprintf(a.out, "%s %s\n", a.styles.Success("Created"), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file in use and the lookup order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(a.out, a.settings.ConfigPath)
				if !a.verbose {
					return nil
				}

				paths, err := config.DefaultPaths()
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, a.styles.Muted("lookup: "+config.EnvConfigPath+", "+strings.Join(paths, ", ")))
				return nil
			},
		},
	)

	return cmd
}
