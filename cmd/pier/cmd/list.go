package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/msto63/pier/foundation/utils/slicex"
	mdwstringx "github.com/msto63/pier/foundation/utils/stringx"
	"github.com/msto63/pier/internal/registry"
)

const defaultListWidth = 60

type listOptions struct {
	query       string
	tags        []string
	allTags     bool
	aliasesOnly bool
	tagsOnly    bool
	full        bool
	width       int
}

func newListCmd(a *app) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List scripts",
		Long: `Lists scripts in the order they were added.

Examples:
  pier ls                 # all scripts
  pier ls -q docker       # aliases containing "docker"
  pier ls -t git -t gh    # scripts tagged git or gh
  pier ls -t git -t gh --all-tags
  pier ls -a              # aliases only, one per line`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Only aliases containing this text")
	cmd.Flags().StringSliceVarP(&opts.tags, "tag", "t", nil, "Only scripts with this tag, repeatable")
	cmd.Flags().BoolVar(&opts.allTags, "all-tags", false, "Require every --tag instead of any")
	cmd.Flags().BoolVarP(&opts.aliasesOnly, "aliases-only", "a", false, "Print aliases only")
	cmd.Flags().BoolVar(&opts.tagsOnly, "tags-only", false, "Print the distinct tags only")
	cmd.Flags().BoolVarP(&opts.full, "full", "f", false, "Show full commands and all metadata")
	cmd.Flags().IntVarP(&opts.width, "width", "w", defaultListWidth, "Truncate commands to this many characters")
	cmd.MarkFlagsMutuallyExclusive("aliases-only", "tags-only")

	return cmd
}

func runList(a *app, opts listOptions) error {
	p, err := a.open()
	if err != nil {
		return err
	}

	scripts, err := p.ListScripts(registry.ListOptions{
		Query:    opts.query,
		Tags:     opts.tags,
		MatchAll: opts.allTags,
	})
	if err != nil {
		return err
	}

	switch {
	case opts.tagsOnly:
		tags := p.Registry().Tags()
		if opts.query != "" || len(opts.tags) > 0 {
			tags = distinctTags(scripts)
		}
		for _, tag := range tags {
			fmt.Fprintln(a.out, a.styles.Tag(tag))
		}
		return nil
	case opts.aliasesOnly:
		for _, s := range scripts {
			fmt.Fprintln(a.out, s.Alias)
		}
		return nil
	}

	if len(scripts) == 0 {
		fmt.Fprintln(a.out, a.styles.Muted("No scripts match"))
		return nil
	}

	fmt.Fprintln(a.out, renderTable(a.styles, scripts, opts))
	return nil
}

func renderTable(st styles, scripts []registry.Script, opts listOptions) string {
	t := table.NewWriter()

	style := table.StyleLight
	if st.color {
		style = table.StyleRounded
		style.Color.Header = text.Colors{text.Bold, text.FgHiCyan}
	} else {
		style.Options = table.OptionsNoBordersAndSeparators
	}
	t.SetStyle(style)

	header := table.Row{"Alias", "Command", "Tags"}
	if opts.full {
		header = append(header, "Description", "Reference")
	}
	t.AppendHeader(header)

	for _, s := range scripts {
		command := s.Command
		if !opts.full {
			command = mdwstringx.Truncate(mdwstringx.FirstLine(command), opts.width, "...")
		}

		row := table.Row{st.Alias(s.Alias), command, st.Tag(strings.Join(s.Tags, ","))}
		if opts.full {
			row = append(row, s.Description, s.Reference)
		}
		t.AppendRow(row)
	}

	return t.Render()
}

func distinctTags(scripts []registry.Script) []string {
	var all []string
	for _, s := range scripts {
		all = append(all, s.Tags...)
	}

	tags := slicex.Unique(all)
	sort.Strings(tags)
	return tags
}
