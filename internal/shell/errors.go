package shell

import "errors"

var (
	// ErrExit is returned by the exit builtin to stop the loop.
	ErrExit = errors.New("exit")

	// ErrNotFound occurs when an external command cannot be resolved to an
	// executable file.
	ErrNotFound = errors.New("not found")

	// ErrNotText occurs when a file read by openfile or searchfile is not
	// valid UTF-8 text.
	ErrNotText = errors.New("stream did not contain valid UTF-8")

	// ErrNotDirectory occurs when cd targets something that is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
