package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

type commandHelp struct {
	Name string
	Desc string
}

var builtinCommandHelp = []commandHelp{
	{Name: "cd", Desc: "navigate to a directory, use ../ to move up"},
	{Name: "ls", Desc: "list files & directories in current location"},
	{Name: "exit", Desc: "terminate the interface"},
	{Name: "help", Desc: "print the terminal command guide"},
	{Name: "newdir", Desc: "create a new directory"},
	{Name: "newfile", Desc: "create a new file of specified ext. type"},
	{Name: "openfile", Desc: "open a text based file and print the content to the terminal"},
	{Name: "searchfile", Desc: "search a text based file and print highlighted content to the terminal if found"},
}

const searchTermHint = "Please enter a search term : searchfile [path] [search term]"

func (s *Shell) registerBuiltins() {

	s.builtins["exit"] = func(args []string, s *Shell) error {
		return ErrExit
	}

	s.builtins["help"] = func(args []string, s *Shell) error {
		fmt.Fprintln(s.Out, "    command  |  action  ")
		fmt.Fprintln(s.Out, "----------------------------------------------")
		for _, h := range builtinCommandHelp {
			fmt.Fprintf(s.Out, "- %-11s|    %s\n", h.Name, h.Desc)
		}
		fmt.Fprintln(s.Out)

		return nil
	}

	s.builtins["cd"] = func(args []string, s *Shell) error {

		target := "/"

		if len(args) > 0 {
			target = args[0]
		}

		if target == "-" {
			target = s.getenv("HOME")
			if target == "" {
				target = "/"
			}
		}

		dir := s.resolve(target)

		info, err := s.fs.Stat(dir)
		if err == nil && !info.IsDir() {
			err = ErrNotDirectory
		}

		if err == nil {
			err = s.fs.Access(dir)
		}

		// hold the physical path so ".." leaves a symlink the way chdir does
		if err == nil {
			dir, err = s.fs.EvalSymlinks(dir)
		}

		if err != nil {

			if errors.Is(err, ErrNotDirectory) {
				fmt.Fprintf(s.Err, "cd: %s: Not a directory\n", target)
			} else if os.IsNotExist(err) {
				fmt.Fprintf(s.Err, "cd: %s: No such file or directory\n", target)
			} else if os.IsPermission(err) {
				fmt.Fprintf(s.Err, "cd: %s: Permission denied\n", target)
			} else {
				fmt.Fprintf(s.Err, "cd: %s: %v\n", target, err)
			}

			return nil
		}

		s.cwd = dir

		return nil
	}

	s.builtins["ls"] = func(args []string, s *Shell) error {
		entries, err := s.fs.ReadDir(s.cwd)
		if err != nil {
			fmt.Fprintln(s.Err, "ls:", err)
			return nil
		}

		for _, entry := range entries {
			item := strings.TrimPrefix(filepath.Join(s.cwd, entry.Name()), s.cwd)
			fmt.Fprintf(s.Out, "%q\n", strings.ReplaceAll(item, `\`, ""))
		}
		fmt.Fprintln(s.Out)

		return nil
	}

	s.builtins["newdir"] = func(args []string, s *Shell) error {
		if len(args) == 0 {
			fmt.Fprintln(s.Out, "newdir: usage: newdir PATH")
			return nil
		}

		if err := s.fs.Mkdir(s.resolve(args[0]), 0o755); err != nil {
			slog.Debug("Ignoring newdir failure.", "path", args[0], "err", err)
		}

		return nil
	}

	s.builtins["newfile"] = func(args []string, s *Shell) error {
		if len(args) == 0 {
			fmt.Fprintln(s.Out, "newfile: usage: newfile PATH")
			return nil
		}

		if err := s.fs.CreateNew(s.resolve(args[0])); err != nil {
			slog.Debug("Ignoring newfile failure.", "path", args[0], "err", err)
		}

		return nil
	}

	s.builtins["openfile"] = func(args []string, s *Shell) error {
		if len(args) == 0 {
			fmt.Fprintln(s.Out, "openfile: usage: openfile PATH")
			return nil
		}

		content, err := s.readText(args[0])
		if err != nil {
			return fmt.Errorf("openfile: %w", err)
		}

		fmt.Fprintln(s.Out, content)
		fmt.Fprintln(s.Out)

		return nil
	}

	s.builtins["searchfile"] = func(args []string, s *Shell) error {
		if len(args) == 0 {
			fmt.Fprintln(s.Out, "searchfile: usage: searchfile PATH TERM")
			return nil
		}

		if len(args) < 2 {
			fmt.Fprintln(s.Out, searchTermHint)
			return nil
		}

		path, term := args[0], args[1]

		content, err := s.readText(path)
		if err != nil {
			return fmt.Errorf("searchfile: %w", err)
		}

		segments := SearchSegments(content, term, s.preserveCase)
		if segments == nil {
			fmt.Fprintf(s.Out, "%s not in %s\n", term, path)
			return nil
		}

		fmt.Fprintln(s.Out, searchStart)
		for i, seg := range segments {
			fmt.Fprintln(s.Out, seg)

			if i == len(segments)-1 {
				fmt.Fprintln(s.Out, searchEnd)
			} else {
				fmt.Fprintln(s.Out, searchDivider)
			}
		}

		return nil
	}
}

// readText reads a whole file relative to the working directory and rejects
// content that is not UTF-8.
func (s *Shell) readText(path string) (string, error) {
	resolved := s.resolve(path)

	data, err := s.fs.ReadFile(resolved)
	if err != nil {
		return "", err
	}

	slog.Debug("Read file.", "path", resolved, "size", humanize.Bytes(uint64(len(data))))

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s (%s): %w", path, humanize.Bytes(uint64(len(data))), ErrNotText)
	}

	return string(data), nil
}
