package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/textmenu/pkg/config"
	"github.com/mchmarny/textmenu/pkg/logger"
	"github.com/mchmarny/textmenu/pkg/menu"
	"github.com/mchmarny/textmenu/pkg/metric"
	"github.com/mchmarny/textmenu/pkg/server"
)

var (
	version = "v0.0.0" // Set at build time via -ldflags "-X main.version=version"
	commit  = "none"   // Set at build time via -ldflags "-X main.commit=commit"
)

// Options are the command-line options. Set flags override the config file.
type Options struct {
	Version     bool           `short:"v" long:"version" description:"Show the program version"`
	Config      string         `short:"c" long:"config" description:"Path to a YAML config file" default:"menudemo.yaml"`
	LogLevel    string         `long:"log-level" description:"Log level (debug, info, warn, error)" env:"LOG_LEVEL"`
	MetricsPort *int           `long:"metrics-port" description:"Serve /metrics, /healthz and /menu on this port, 0 disables"`
	ActionDelay *time.Duration `long:"action-delay" description:"How long each demo action pauses"`
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("menudemo %s (%s)\n", version, commit)
		return
	}

	if err := run(context.Background(), opts, bufio.NewReader(os.Stdin), os.Stdout); err != nil {
		slog.Error("menudemo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Options, in menu.LineReader, out io.Writer) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetDefaultLoggerWithLevel("menudemo", version, cfg.LogLevel)

	reg := prometheus.NewRegistry()
	root := buildMenus(in, out, cfg, metric.NewSelectionCounter(reg))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	if cfg.MetricsPort > 0 {
		srv := server.New(
			server.WithPort(cfg.MetricsPort),
			server.WithSimpleHealth(),
			server.WithMetrics(reg),
			server.WithHandler("/menu", root.Handler()),
		)
		go func() { serveErr <- srv.Serve(ctx) }()
	} else {
		serveErr <- nil
	}

	menuErr := root.Display()
	fmt.Fprintln(out, "\n~ Application Ended ~")

	cancel()
	return errors.Join(menuErr, <-serveErr)
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.MetricsPort != nil {
		cfg.MetricsPort = *opts.MetricsPort
	}
	if opts.ActionDelay != nil {
		cfg.ActionDelay = *opts.ActionDelay
	}
}
