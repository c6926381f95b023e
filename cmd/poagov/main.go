// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gridtokenx/poagov"
	"github.com/gridtokenx/poagov/internal/config"
	"github.com/gridtokenx/poagov/internal/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

const (
	programName = "poagov"
)

func slogPrintf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...),
		"component", programName,
	)
}

var (
	globalFlags = struct {
		signer string
		debug  bool
	}{}
	configFile string
)

func commonRun() *slog.Logger {
	// Configure logger
	logLevel := slog.LevelInfo
	addSource := false
	if globalFlags.debug {
		logLevel = slog.LevelDebug
		addSource = true
	}
	logger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     logLevel,
		}),
	)
	slog.SetDefault(logger)
	// Configure max processes with our logger wrapper, toss undo func
	_, err := maxprocs.Set(maxprocs.Logger(slogPrintf))
	if err != nil {
		// If we hit this, something really wrong happened
		slog.Error(err.Error())
		os.Exit(1)
	}
	logger.Info(
		"version: "+version.GetVersionString(),
		"component", programName,
	)
	return logger
}

// signerAuthority resolves the caller identity for authority operations
// from the --signer flag or the config file
func signerAuthority(cfg *config.Config) (poagov.Authority, error) {
	signer := globalFlags.signer
	if signer == "" {
		signer = cfg.Signer
	}
	if signer == "" {
		return "", errors.New(
			"no signer identity configured, use --signer or the config file",
		)
	}
	return poagov.Authority(signer), nil
}

func openEngine(
	cfg *config.Config,
	logger *slog.Logger,
	promRegistry prometheus.Registerer,
) (*poagov.Engine, error) {
	opts := []poagov.ConfigOptionFunc{
		poagov.WithLogger(logger),
		poagov.WithDataDir(cfg.DataDir),
	}
	if promRegistry != nil {
		opts = append(opts, poagov.WithPrometheusRegistry(promRegistry))
	}
	if cfg.Tracing {
		opts = append(opts, poagov.WithTracing(true))
		if cfg.TracingStdout {
			opts = append(opts, poagov.WithTracingStdout(true))
		}
	}
	return poagov.New(poagov.NewConfig(opts...))
}

// withEngine handles the common setup and teardown around a one-shot
// engine operation
func withEngine(
	cmd *cobra.Command,
	fn func(cfg *config.Config, e *poagov.Engine) error,
) error {
	logger := commonRun()
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		return errors.New("no config found in context")
	}
	e, err := openEngine(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer e.Close() //nolint:errcheck
	return fn(cfg, e)
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", programName, version.GetVersionString())
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Proof-of-authority governance for renewable energy certificates",
	}

	// Global flags
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.signer, "signer", "", "signer identity for authority operations")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	}

	// Subcommands
	rootCmd.AddCommand(
		initCommand(),
		pauseCommand(),
		unpauseCommand(),
		statsCommand(),
		setValidationCommand(),
		setMaintenanceCommand(),
		setLimitsCommand(),
		setContactCommand(),
		issueCommand(),
		validateCommand(),
		revokeCommand(),
		showCommand(),
		listCommand(),
		serveCommand(),
		versionCommand(),
	)

	// Execute cobra command
	if err := rootCmd.Execute(); err != nil {
		// NOTE: we purposely don't display the error, since cobra will have already displayed it
		os.Exit(1)
	}
}
