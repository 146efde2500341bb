package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
	"github.com/alexisbeaulieu97/cellbutton/internal/logger"
	"github.com/alexisbeaulieu97/cellbutton/internal/settings"
)

// AppContext bundles the settings and logger created before a command runs.
type AppContext struct {
	Settings *settings.Settings
	Logger   *logger.Logger
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	s, err := settings.Load(flags.configPath)
	if err != nil {
		return newCommandError("load settings", flags.configPath, err, "Fix the settings file or pass a different one with --config.")
	}

	level := s.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         strings.ToLower(level),
		HumanReadable: s.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("configure logging", "level "+level, err, "Use one of trace, debug, info, warn or error.")
	}

	a.Settings = s
	a.Logger = log
	return nil
}

// CommandContext returns the command's context and a logger tagged with the
// invocation's correlation id and the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, *logger.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if logger.CorrelationID(ctx) == "" {
		ctx = logger.ContextWithCorrelationID(ctx, logger.NewCorrelationID())
	}
	log := a.Logger.WithContext(ctx).WithFields(map[string]any{"command": name})
	return ctx, log
}

func (a *AppContext) catalogPath(flag string) string {
	if flag != "" {
		return flag
	}
	if a.Settings != nil {
		return a.Settings.Catalog
	}
	return settings.Defaults().Catalog
}

// loadCatalog reads the catalog at path, or the built-in matrix when matrix
// is set.
func (a *AppContext) loadCatalog(operation, path string, matrix bool) (*catalog.Catalog, error) {
	if matrix {
		return catalog.Matrix(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, newCommandError(operation, "loading catalog "+path, err, "Fix the catalog errors shown above, or pass --matrix to use every kind and theme.")
	}
	return cat, nil
}
