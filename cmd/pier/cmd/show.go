package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <alias>",
		Short: "Print the command of a script",
		Long: `Prints the command stored under alias. With --verbose the description,
reference and tags are printed as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.open()
			if err != nil {
				return err
			}
			script, err := p.FetchScript(args[0])
			if err != nil {
				return err
			}

			if !a.verbose {
				fmt.Fprintln(a.out, script.Command)
				return nil
			}

			fmt.Fprintf(a.out, "%s %s\n", a.styles.Muted("alias:      "), a.styles.Alias(script.Alias))
			fmt.Fprintf(a.out, "%s %s\n", a.styles.Muted("command:    "), script.Command)
			if script.Description != "" {
				fmt.Fprintf(a.out, "%s %s\n", a.styles.Muted("description:"), script.Description)
			}
			if script.Reference != "" {
				fmt.Fprintf(a.out, "%s %s\n", a.styles.Muted("reference:  "), script.Reference)
			}
			if len(script.Tags) > 0 {
				fmt.Fprintf(a.out, "%s %s\n", a.styles.Muted("tags:       "), a.styles.Tag(strings.Join(script.Tags, ", ")))
			}
			return nil
		},
	}
}
