// Package runner executes registered scripts through a shell
package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	mdwerror "github.com/msto63/pier/foundation/core/error"
	mdwlog "github.com/msto63/pier/foundation/core/log"
	"github.com/msto63/pier/internal/registry"
)

// DefaultShell is used when neither Runner.Shell nor $SHELL is set
const DefaultShell = "sh"

// Runner runs scripts as `<shell> -c "<command> <args...>"`
type Runner struct {
	// Shell overrides $SHELL
	Shell string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *mdwlog.Logger
}

// ResolveShell returns the shell a script is run with
func (r *Runner) ResolveShell() string {
	if r.Shell != "" {
		return r.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return DefaultShell
}

// CommandLine joins the script command and extra arguments
func CommandLine(script registry.Script, args []string) string {
	if len(args) == 0 {
		return script.Command
	}
	return script.Command + " " + strings.Join(args, " ")
}

// Command builds the process for script without starting it
func (r *Runner) Command(ctx context.Context, script registry.Script, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.ResolveShell(), "-c", CommandLine(script, args))
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd
}

// Run executes script and waits for it. A non-zero exit is reported as a
// COMMAND_FAILED error carrying the exit code.
func (r *Runner) Run(ctx context.Context, script registry.Script, args []string) error {
	const op = "runner.Run"

	logger := r.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}
	logger = logger.WithField("component", "runner")

	cmd := r.Command(ctx, script, args)
	logger.Debug("running script", mdwlog.Fields{
		"alias": script.Alias,
		"shell": cmd.Path,
		"line":  CommandLine(script, args),
	})

	err := cmd.Run()
	if err == nil {
		return nil
	}

	failure := mdwerror.Wrap(err, "command failed: "+script.Alias).
		WithCode(mdwerror.CodeCommandFailed).
		WithOperation(op).
		WithDetail("alias", script.Alias)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		failure = failure.WithDetail("exit_code", exitErr.ExitCode())
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		failure = failure.WithDetail("context", ctxErr.Error())
	}

	logger.Debug("script failed", mdwlog.Fields{"alias": script.Alias, "error": err.Error()})
	return failure
}

// ExitCode returns the process exit code recorded on a COMMAND_FAILED error,
// or 1 when none is recorded.
func ExitCode(err error) int {
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return 1
	}
	if code, ok := mdwErr.Detail("exit_code"); ok {
		if n, ok := code.(int); ok && n > 0 {
			return n
		}
	}
	return 1
}
