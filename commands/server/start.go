package server

import (
	"context"
	"flag"
	"io/ioutil"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/safehold/safehold/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind     = "bind"
	flagDebug    = "debug"
	flagLogLevel = "log_level"
	flagMetrics  = "metrics"
)

// parseFlags overrides the configuration with the command line.
func parseFlags(cfg Config, args []string) (Config, error) {
	fl := flag.NewFlagSet("start", flag.ContinueOnError)
	fl.SetOutput(ioutil.Discard)
	fl.StringVar(&cfg.Bind, flagBind, cfg.Bind, "address server listens on")
	fl.BoolVar(&cfg.Debug, flagDebug, cfg.Debug, "call stack returned on error")
	fl.StringVar(&cfg.LogLevel, flagLogLevel, cfg.LogLevel, "one of debug, info, error or none")
	fl.StringVar(&cfg.MetricsAddr, flagMetrics, cfg.MetricsAddr, "address to serve prometheus metrics on, disabled if empty")
	if err := fl.Parse(args); err != nil {
		return cfg, errors.Wrap(errors.ErrInput, err.Error())
	}
	return cfg, cfg.Validate()
}

// AppGenerator lets us lazily initialize app, using the database path
// and logger potentially initialized with other flags. Metrics are
// registered with reg.
type AppGenerator func(dbPath string, logger log.Logger, debug bool, reg prometheus.Registerer) (abci.Application, error)

// StartCmd initializes the application and serves it until the process
// is interrupted.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	cfg, err := LoadConfig(home)
	if err != nil {
		return err
	}
	cfg, err = parseFlags(cfg, args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		select {
		case s := <-sig:
			logger.Info("Captured signal", "signal", s.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return Serve(ctx, gen, logger, home, cfg)
}

// Serve runs the abci server, and the metrics server if configured,
// until the context is cancelled.
func Serve(ctx context.Context, gen AppGenerator, logger log.Logger, home string, cfg Config) error {
	logger, err := cfg.Logger(logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, cfg.DBName)
	}
	app, err := gen(dbPath, logger, cfg.Debug, reg)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", cfg.Bind)
	svr, err := server.NewServer(cfg.Bind, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot start server: %s", err)
	}
	defer func() {
		if err := svr.Stop(); err != nil {
			logger.Error("Cannot stop server", "err", err)
		}
	}()

	if cfg.MetricsAddr != "" {
		ms := &http.Server{Addr: cfg.MetricsAddr, Handler: MetricsHandler(reg)}
		go func() {
			logger.Info("Serving metrics", "addr", cfg.MetricsAddr)
			if err := ms.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", "err", err)
			}
		}()
		defer ms.Close()
	}

	<-ctx.Done()
	logger.Info("Stopping ABCI app")
	return nil
}

// MetricsHandler exposes everything registered with reg.
func MetricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux
}
