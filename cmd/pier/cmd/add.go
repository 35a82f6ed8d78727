package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/pier/internal/registry"
)

type addOptions struct {
	alias       string
	description string
	reference   string
	tags        []string
	force       bool
}

func newAddCmd(a *app) *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add <command>",
		Short: "Add a script under an alias",
		Long: `Adds a command to the registry. Everything after the flags is joined
into the command, so quoting is only needed for shell operators.

Examples:
  pier add 'docker ps -a' -a dps
  pier add kubectl get pods -a kgp -t k8s -d "pods in current ns"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(a, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&opts.alias, "alias", "a", "", "Alias for the script (required)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Description")
	cmd.Flags().StringVarP(&opts.reference, "reference", "r", "", "Reference (URL, alias or note)")
	cmd.Flags().StringSliceVarP(&opts.tags, "tag", "t", nil, "Tag, repeatable or comma separated")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing alias")
	_ = cmd.MarkFlagRequired("alias")

	return cmd
}

func runAdd(a *app, opts addOptions, command string) error {
	p, err := a.open()
	if err != nil {
		return err
	}

	script := registry.Script{
		Alias:       opts.alias,
		Command:     command,
		Description: opts.description,
		Reference:   opts.reference,
		Tags:        opts.tags,
	}
	if err := p.AddScript(script, opts.force); err != nil {
		return err
	}
	if err := a.write(p); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s\n", a.styles.Success("+ Added"), a.styles.Alias(opts.alias))
	return nil
}
