package runner

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/pier/foundation/core/error"
	mdwlog "github.com/msto63/pier/foundation/core/log"
	"github.com/msto63/pier/internal/registry"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestResolveShell(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		env   string
		want  string
	}{
		{"explicit", "/bin/zsh", "/bin/bash", "/bin/zsh"},
		{"env", "", "/bin/bash", "/bin/bash"},
		{"fallback", "", "", DefaultShell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			r := &Runner{Shell: tt.shell}
			if got := r.ResolveShell(); got != tt.want {
				t.Errorf("ResolveShell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	r := &Runner{Shell: "sh"}
	script := registry.Script{Alias: "greet", Command: "echo hi", Reference: "ignored"}

	cmd := r.Command(context.Background(), script, []string{"a", "b"})

	want := []string{"sh", "-c", "echo hi a b"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Args = %v, want %v", cmd.Args, want)
	}

	cmd = r.Command(context.Background(), script, nil)
	if got := cmd.Args[2]; got != "echo hi" {
		t.Errorf("command line = %q, want %q", got, "echo hi")
	}
}

func TestRun(t *testing.T) {
	skipOnWindows(t)

	var stdout bytes.Buffer
	r := &Runner{Shell: "sh", Stdout: &stdout}
	script := registry.Script{Alias: "greet", Command: "echo hello"}

	if err := r.Run(context.Background(), script, []string{"world"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("stdout = %q, want %q", got, "hello world\n")
	}
}

func TestRun_LogsFields(t *testing.T) {
	skipOnWindows(t)

	var logs bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatText,
		Output: &logs,
	})
	r := &Runner{Shell: "sh", Stdout: &bytes.Buffer{}, Logger: logger}

	if err := r.Run(context.Background(), registry.Script{Alias: "greet", Command: "true"}, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{"running script", "alias=greet", "component=runner"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log output missing %q: %q", want, logs.String())
		}
	}
}

func TestRun_Stdin(t *testing.T) {
	skipOnWindows(t)

	var stdout bytes.Buffer
	r := &Runner{Shell: "sh", Stdin: strings.NewReader("piped\n"), Stdout: &stdout}

	if err := r.Run(context.Background(), registry.Script{Alias: "cat", Command: "cat"}, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stdout.String() != "piped\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "piped\n")
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	var stderr bytes.Buffer
	r := &Runner{Shell: "sh", Stderr: &stderr}

	err := r.Run(context.Background(), registry.Script{Alias: "fail", Command: "echo oops >&2; exit 3"}, nil)
	if !mdwerror.HasCode(err, mdwerror.CodeCommandFailed) {
		t.Fatalf("error = %v, want COMMAND_FAILED", err)
	}
	if got := ExitCode(err); got != 3 {
		t.Errorf("ExitCode() = %d, want 3", got)
	}
	if stderr.String() != "oops\n" {
		t.Errorf("stderr = %q, want %q", stderr.String(), "oops\n")
	}
}

func TestRun_MissingShell(t *testing.T) {
	r := &Runner{Shell: "/nonexistent/shell"}

	err := r.Run(context.Background(), registry.Script{Alias: "x", Command: "true"}, nil)
	if !mdwerror.HasCode(err, mdwerror.CodeCommandFailed) {
		t.Fatalf("error = %v, want COMMAND_FAILED", err)
	}
	if got := ExitCode(err); got != 1 {
		t.Errorf("ExitCode() = %d, want 1", got)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := &Runner{Shell: "sh"}
	start := time.Now()
	err := r.Run(ctx, registry.Script{Alias: "slow", Command: "sleep 5"}, nil)

	if !mdwerror.HasCode(err, mdwerror.CodeCommandFailed) {
		t.Fatalf("error = %v, want COMMAND_FAILED", err)
	}
	if time.Since(start) > 4*time.Second {
		t.Errorf("Run() did not stop on context cancel")
	}
}

func TestExitCode_PlainError(t *testing.T) {
	if got := ExitCode(errors.New("boom")); got != 1 {
		t.Errorf("ExitCode() = %d, want 1", got)
	}
}
