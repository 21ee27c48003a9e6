// Command flock runs a flock headless and writes telemetry.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/simulation"
)

var (
	configFile = flag.String("config", "", "Configuration file (.json, .yaml), defaults when empty")
	schemaFile = flag.String("schema", "", "External JSON schema, the embedded one when empty")
	ticks      = flag.Int("ticks", -1, "Number of ticks, overrides run.ticks (0 runs until interrupted)")
	outputDir  = flag.String("out", "", "Telemetry output directory, overrides run.outputDir")
	logLevel   = flag.String("log-level", "", "debug, info, warn or error, overrides run.logLevel")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flock: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfg *simulation.Config
		err error
	)
	if *schemaFile != "" && *configFile != "" {
		cfg, err = simulation.LoadConfigWithSchema(*configFile, *schemaFile)
	} else {
		cfg, err = simulation.LoadOrDefault(*configFile)
	}
	if err != nil {
		return err
	}
	if *ticks >= 0 {
		cfg.Run.Ticks = *ticks
	}
	if *outputDir != "" {
		cfg.Run.OutputDir = *outputDir
	}
	if *logLevel != "" {
		cfg.Run.LogLevel = *logLevel
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, err := simulation.NewRunner(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := runner.Stop(context.Background()); err != nil {
			logger.Errorf("stopping: %v", err)
		}
	}()

	start := time.Now()
	done, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	logger.Infof("%d ticks (%.1fs simulated) in %s", done,
		float64(done)*runner.TimeStep().Seconds(), time.Since(start).Round(time.Millisecond))
	if cfg.Run.OutputDir != "" {
		logger.Infof("telemetry written to %s", cfg.Run.OutputDir)
	}
	return nil
}
