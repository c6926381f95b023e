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
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gridtokenx/poagov/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the engine with a prometheus metrics endpoint",
		Args:  cobra.NoArgs,
		RunE:  serveRun,
	}
}

func serveRun(cmd *cobra.Command, args []string) error {
	logger := commonRun()
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		return errors.New("no config found in context")
	}
	promRegistry := prometheus.NewRegistry()
	e, err := openEngine(cfg, logger, promRegistry)
	if err != nil {
		return err
	}
	defer e.Close() //nolint:errcheck
	// Serve prometheus metrics
	metricsListenAddr := net.JoinHostPort(
		cfg.MetricsBindAddr,
		strconv.FormatUint(uint64(cfg.MetricsPort), 10),
	)
	metricsMux := http.NewServeMux()
	metricsMux.Handle(
		"/metrics",
		promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
	)
	metricsSrv := &http.Server{
		Addr:              metricsListenAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 60 * time.Second,
	}
	go func() {
		logger.Info(
			fmt.Sprintf(
				"listening for prometheus metrics connections on %s",
				metricsListenAddr,
			),
			"component", programName,
		)
		if err := metricsSrv.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener failed: " + err.Error())
			os.Exit(1)
		}
	}()
	// Wait for shutdown signal
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signalCh
	logger.Info(
		"received signal, shutting down",
		"component", programName,
		"signal", sig.String(),
	)
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown metrics server: " + err.Error())
	}
	return nil
}
