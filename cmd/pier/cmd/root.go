package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/pier/foundation/core/error"
	mdwlog "github.com/msto63/pier/foundation/core/log"
	"github.com/msto63/pier/foundation/utils/filex"
	"github.com/msto63/pier/internal/pier"
	"github.com/msto63/pier/internal/runner"
	"github.com/msto63/pier/internal/store"
	"github.com/msto63/pier/pkg/core/config"
	"github.com/msto63/pier/pkg/core/logging"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	configFlag string
	verbose    bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	settings *config.Settings
	logger   *mdwlog.Logger
	styles   styles
}

// NewRootCmd builds the command tree reading and writing the given streams
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, logger: mdwlog.Discard()}

	rootCmd := &cobra.Command{
		Use:   "pier",
		Short: "A personal registry for shell one-liners",
		Long: `pier keeps the commands you keep retyping under short aliases.

Scripts live in a TOML file (default: $XDG_CONFIG_HOME/pier/config.toml,
override with --config or PIER_CONFIG_PATH).

Examples:
  pier add 'git log --oneline -20' -a gl -t git
  pier run gl
  pier ls -t git`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVarP(&a.configFlag, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/pier/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newAddCmd(a),
		newRemoveCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newMoveCmd(a),
		newRunCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// Execute runs the CLI against the process streams and returns the exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return execute(ctx, NewRootCmd(os.Stdin, os.Stdout, os.Stderr), os.Args[1:], os.Stderr)
}

func execute(ctx context.Context, root *cobra.Command, args []string, errOut io.Writer) int {
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	printError(errOut, err)

	if mdwerror.HasCode(err, mdwerror.CodeCommandFailed) {
		return runner.ExitCode(err)
	}
	return 1
}

// init resolves settings and the logger once flags are parsed
func (a *app) init() error {
	settings, err := config.Load(a.configFlag, a.verbose)
	if err != nil {
		return err
	}
	a.settings = settings

	logCfg := logging.DefaultLoggerConfig("pier")
	logCfg.Level = settings.LogLevel
	logCfg.Format = settings.LogFormat
	logCfg.Output = a.errOut
	a.logger = logging.NewLogger(logCfg)
	a.styles = newStyles(isTerminal(a.out))

	a.logger.Debug("settings resolved", mdwlog.Fields{
		"config": settings.ConfigPath,
		"level":  settings.LogLevel,
	})
	return nil
}

// open loads the resolved config file
func (a *app) open() (*pier.Pier, error) {
	p, err := pier.Open(a.settings.ConfigPath, store.Options{Logger: a.logger})
	if err != nil {
		a.logError(err)
		if mdwerror.HasCode(err, mdwerror.CodeConfigRead) && !filex.Exists(a.settings.ConfigPath) {
			return nil, mdwerror.Wrap(err, "no config file").
				WithDetail("hint", "run 'pier config init' to create "+a.settings.ConfigPath)
		}
		return nil, err
	}
	return p, nil
}

// write saves p and logs failures
func (a *app) write(p *pier.Pier) error {
	if err := p.Write(); err != nil {
		a.logError(err)
		return err
	}
	return nil
}

// logError records err with its code and details. The message itself is
// printed once by execute, so the structured record only shows up in
// verbose mode.
func (a *app) logError(err error) {
	if a.verbose {
		a.logger.LogError(err)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "pier: %v\n", err)

	if hint := errorHint(err); hint != "" {
		fmt.Fprintf(w, "pier: %s\n", hint)
	}
}

func errorHint(err error) string {
	var e *mdwerror.Error
	if !errors.As(err, &e) {
		return ""
	}
	if hint, ok := e.Detail("hint"); ok {
		if s, ok := hint.(string); ok {
			return s
		}
	}
	return ""
}
