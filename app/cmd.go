package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Neev4n/minishell/internal/config"
	"github.com/Neev4n/minishell/internal/shell"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//nolint:gochecknoglobals
var Version = "dev"

type options struct {
	configPath   string
	logLevel     string
	noColor      bool
	preserveCase bool
}

func newRootCmd(in io.Reader, out, errw io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "minishell",
		Short: "A minimal interactive command shell",
		Long: `minishell reads one line at a time, runs the builtins
cd, ls, help, newdir, newfile, openfile, searchfile and exit,
and runs anything else as an external program.

Settings are read from ~/.minishellrc (KEY=VALUE lines) unless --config is given.
Flags override the file.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), opts, in, out, errw)
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errw)
	addFlags(cmd.Flags(), opts)

	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.configPath, "config", "c", "", "read settings from this file instead of ~/"+config.DefaultFileName)
	flags.StringVarP(&opts.logLevel, "log-level", "l", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured prompt and logs")
	flags.BoolVar(&opts.preserveCase, "preserve-case", false, "print searchfile results in their original case")
}

func setupLogging(w io.Writer, level slog.Level, noColor bool) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	))
}

// resolveConfig loads the rc file and lets explicitly set flags win over it.
func resolveConfig(flags *pflag.FlagSet, opts *options) (*config.Config, error) {
	path, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = config.DefaultPath(home)
		}
	}

	cfg, err := config.NewHandler(&config.GodotenvProvider{}).Load(path, explicit)
	if err != nil {
		return nil, err
	}

	if flags.Changed("log-level") {
		level, err := config.ParseLevel(opts.logLevel)
		if err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = level
	}

	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}

	if flags.Changed("preserve-case") {
		cfg.PreserveCase = opts.preserveCase
	}

	return cfg, nil
}

func run(flags *pflag.FlagSet, opts *options, in io.Reader, out, errw io.Writer) error {
	cfg, err := resolveConfig(flags, opts)
	if err != nil {
		return err
	}

	setupLogging(errw, cfg.LogLevel, cfg.NoColor)

	s, err := shell.New(in, out, errw,
		shell.WithColor(!cfg.NoColor),
		shell.WithPreserveCase(cfg.PreserveCase),
	)
	if err != nil {
		return err
	}

	if err := s.Run(); err != nil {
		if errors.Is(err, io.EOF) {
			slog.Debug("Input closed, leaving shell.")
			return nil
		}

		return err
	}

	return nil
}
