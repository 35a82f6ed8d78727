package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <alias>",
		Aliases: []string{"rm"},
		Short:   "Remove a script",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.open()
			if err != nil {
				return err
			}
			if err := p.RemoveScript(args[0]); err != nil {
				return err
			}
			if err := a.write(p); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s %s\n", a.styles.Success("- Removed"), a.styles.Alias(args[0]))
			return nil
		},
	}
}
