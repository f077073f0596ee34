package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error("Shell terminated.", "err", err)
		os.Exit(1)
	}
}
