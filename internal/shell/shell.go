package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Builtin handles one builtin command. A returned error other than [ErrExit]
// ends the session.
type Builtin func(args []string, s *Shell) error

type Shell struct {
	in           *bufio.Reader
	stdin        io.Reader
	Out          io.Writer
	Err          io.Writer
	cwd          string
	pathDirs     []string
	getenv       func(string) string
	fs           FS
	builtins     map[string]Builtin
	executor     Executor
	parser       Parser
	prompt       *promptRenderer
	color        bool
	preserveCase bool
}

type Option func(*Shell)

// WithDir sets the starting working directory instead of the process one.
func WithDir(dir string) Option {
	return func(s *Shell) {
		s.cwd = dir
	}
}

func WithFS(fsys FS) Option {
	return func(s *Shell) {
		s.fs = fsys
	}
}

func WithExecutor(e Executor) Option {
	return func(s *Shell) {
		s.executor = e
	}
}

func WithParser(p Parser) Option {
	return func(s *Shell) {
		s.parser = p
	}
}

// WithGetenv replaces the environment lookup used for HOME and PATH.
func WithGetenv(getenv func(string) string) Option {
	return func(s *Shell) {
		s.getenv = getenv
	}
}

func WithColor(enabled bool) Option {
	return func(s *Shell) {
		s.color = enabled
	}
}

// WithPreserveCase makes searchfile print segments in their original case.
func WithPreserveCase(enabled bool) Option {
	return func(s *Shell) {
		s.preserveCase = enabled
	}
}

func New(reader io.Reader, out, errw io.Writer, opts ...Option) (*Shell, error) {
	s := &Shell{
		in:       bufio.NewReader(reader),
		stdin:    reader,
		Out:      out,
		Err:      errw,
		getenv:   os.Getenv,
		fs:       OSFS{},
		builtins: make(map[string]Builtin),
		parser:   NewFieldsParser(),
		color:    true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cwd == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		s.cwd = dir
	}

	if path := s.getenv("PATH"); path != "" {
		s.pathDirs = strings.Split(path, string(os.PathListSeparator))
	}

	if s.executor == nil {
		s.executor = &DefaultExecutor{LookupFunc: s.Lookup}
	}

	s.prompt = newPromptRenderer(out, s.color)
	s.registerBuiltins()

	return s, nil
}

// Dir returns the shell's working directory.
func (s *Shell) Dir() string {
	return s.cwd
}

func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.Out, s.prompt.render(s.cwd))

		if f, ok := s.Out.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("failed to flush output: %w", err)
			}
		}

		line, err := s.in.ReadString('\n')

		// a final line without newline is still run, EOF surfaces next round
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return fmt.Errorf("failed to read input: %w", err)
		}

		fields, err := s.parser.Parse(line)

		if err != nil {
			fmt.Fprintln(s.Err, "parse error:", err)
			continue
		}

		cmd := ""
		args := []string{}
		if len(fields) > 0 {
			cmd = fields[0]
			args = fields[1:]
		}

		if err := s.dispatch(cmd, args); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}

			return err
		}
	}
}

func (s *Shell) dispatch(cmd string, args []string) error {
	if fn, ok := s.builtins[cmd]; ok {
		slog.Debug("Dispatching builtin.", "cmd", cmd, "args", args, "cwd", s.cwd)
		return fn(args, s)
	}

	ioBinding := IOBindings{
		Stdin:  s.stdin,
		Stdout: s.Out,
		Stderr: s.Err,
		Dir:    s.cwd,
	}

	exitCode, err := s.executor.Execute(context.Background(), cmd, args, ioBinding)

	if err != nil {
		fmt.Fprintln(s.Err, "failed to execute command:", err)
		return nil
	}

	slog.Debug("External command finished.", "cmd", cmd, "exitCode", exitCode)

	return nil
}

// resolve makes path absolute against the shell's working directory.
func (s *Shell) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(s.cwd, path)
}

// Lookup finds an executable for name. Names with a path separator are taken
// relative to dir, everything else is searched for on PATH.
func (s *Shell) Lookup(name, dir string) (string, bool) {
	if name == "" {
		return "", false
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		pathToCheck := name
		if !filepath.IsAbs(pathToCheck) {
			pathToCheck = filepath.Join(dir, pathToCheck)
		}

		return pathToCheck, s.isExecutable(pathToCheck)
	}

	for _, pathDir := range s.pathDirs {
		if !filepath.IsAbs(pathDir) {
			pathDir = filepath.Join(dir, pathDir)
		}

		pathToCheck := filepath.Join(pathDir, name)

		if s.isExecutable(pathToCheck) {
			return pathToCheck, true
		}
	}

	return "", false
}

func (s *Shell) isExecutable(path string) bool {
	info, err := s.fs.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular() && info.Mode()&0o111 != 0
}
