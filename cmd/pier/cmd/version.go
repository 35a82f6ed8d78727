package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/pier/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Fprintf(a.out, "pier v%s\n", info.Version)
			fmt.Fprintf(a.out, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(a.out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(a.out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(a.out, "  OS/Arch:    %s\n", info.Platform)
		},
	}
}
