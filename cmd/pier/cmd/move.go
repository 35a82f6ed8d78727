package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMoveCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "move <from> <to>",
		Aliases: []string{"mv"},
		Short:   "Rename a script",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]

			p, err := a.open()
			if err != nil {
				return err
			}
			if err := p.MoveScript(from, to, force); err != nil {
				return err
			}
			if err := a.write(p); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s %s -> %s\n", a.styles.Success("~ Moved"), a.styles.Alias(from), a.styles.Alias(to))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the target alias if it exists")

	return cmd
}
