package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/liarsgame/internal/config"
	"github.com/lox/liarsgame/internal/randutil"
)

// Globals are the flags shared by every command
type Globals struct {
	Config string `short:"c" type:"path" default:"liarsgame.hcl" help:"HCL configuration file (defaults apply when missing)"`
	Debug  bool   `help:"Enable debug logging"`

	stdout io.Writer `kong:"-"`
	stderr io.Writer `kong:"-"`
}

func (g *Globals) out() io.Writer {
	if g.stdout == nil {
		return os.Stdout
	}
	return g.stdout
}

// logger writes warnings and errors to stderr, or everything with --debug.
// Verbose, from the flag or the config file, raises the level so that
// per-round game logs are shown.
func (g *Globals) logger(verbose bool) *log.Logger {
	w := g.stderr
	if w == nil {
		w = os.Stderr
	}
	level := log.WarnLevel
	switch {
	case g.Debug:
		level = log.DebugLevel
	case verbose:
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// load reads the configuration file and applies the overrides a command
// was given on the command line.
func (g *Globals) load(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// seedOverride picks the seed from the flag, then the file, then the clock.
func seedOverride(flag int64) func(*config.Config) {
	return func(cfg *config.Config) {
		if flag != 0 {
			cfg.Game.Seed = flag
		}
		cfg.Game.Seed = randutil.Resolve(cfg.Game.Seed, time.Now())
	}
}

// setupSignalHandler creates a context that is cancelled on interrupt signals
func setupSignalHandler(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Warn("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
