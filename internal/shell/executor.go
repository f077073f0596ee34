package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

type Executor interface {
	Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error)
}

// IOBindings are the streams and directory handed to an external command.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

type DefaultExecutor struct {
	LookupFunc func(name, dir string) (string, bool)
}

// Execute resolves name, runs it with args and waits for it to exit. A child
// that ran and exited non-zero is not an error; its exit code is returned.
func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error) {
	path, ok := e.LookupFunc(name, io.Dir)

	if !ok {
		return -1, fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	externalCmd := exec.CommandContext(ctx, path, args...)
	externalCmd.Args = append([]string{name}, args...)
	externalCmd.Dir = io.Dir
	externalCmd.Stdin = childStdin(io.Stdin)
	externalCmd.Stdout = io.Stdout
	externalCmd.Stderr = io.Stderr

	slog.Debug("Starting external command.", "name", name, "path", path, "args", args, "dir", io.Dir)

	if err := externalCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, err
	}

	return 0, nil
}

// childStdin only lets a child inherit a real file. Any other reader is the
// shell's own input and must not be consumed by the child.
func childStdin(r io.Reader) io.Reader {
	if f, ok := r.(*os.File); ok {
		return f
	}

	return nil
}
