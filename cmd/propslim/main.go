// SPDX-License-Identifier: MIT

// Command propslim builds a mesh, simplifies it with quadric error metrics
// and writes a YAML report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/propslim/internal/config"
	"github.com/katalvlaran/propslim/internal/logger"
)

func main() {
	// Parse CLI flags first
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger; stdout may carry the report, so the console goes to stderr.
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	log, err := logger.New(logger.Options{Level: cfg.Logging.Level, File: fileCfg, Console: os.Stderr})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("config", zap.Any("config", cfg))
	if err := run(ctx, cfg, log, os.Stdout); err != nil {
		log.Error("propslim failed", zap.Error(err))
		os.Exit(1)
	}
}
