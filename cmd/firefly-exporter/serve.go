package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/common/version"
	"golang.org/x/sync/errgroup"

	"github.com/khmm12/firefly-exporter/internal/adapter/firefly"
	"github.com/khmm12/firefly-exporter/internal/adapter/httpsrv"
	"github.com/khmm12/firefly-exporter/internal/adapter/prometheus"
	"github.com/khmm12/firefly-exporter/internal/adapter/worker"
	"github.com/khmm12/firefly-exporter/internal/common/logging"
	"github.com/khmm12/firefly-exporter/internal/ports"
	"github.com/khmm12/firefly-exporter/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type Firefly struct {
	BaseURL   string        `name:"base-url" env:"FF3_EXPORTER_BASEURL" help:"Base URL of the Firefly III installation (e.g., https://firefly.example.com)."`
	Token     string        `name:"token" env:"FF3_EXPORTER_TOKEN" help:"Personal access token used as bearer credential."`
	VerifyTLS bool          `name:"verify-tls" env:"FF3_EXPORTER_VERIFY_TLS" default:"true" negatable:"" help:"Verify the TLS certificate of the Firefly III API. Enabled by default."`
	Timeout   time.Duration `name:"timeout" env:"FF3_EXPORTER_TIMEOUT" default:"10s" help:"The maximum duration of a single API request (e.g., 5s, 1m)."`
	RateLimit float64       `name:"rate-limit" env:"FF3_EXPORTER_RATE_LIMIT" default:"0" help:"Maximum API requests per second. 0 disables the limit."`
}

type Collect struct {
	Interval int  `name:"interval" env:"FF3_EXPORTER_SLEEP" default:"30" help:"Seconds to wait between collection cycles."`
	FailFast bool `name:"fail-fast" env:"FF3_EXPORTER_FAIL_FAST" default:"true" negatable:"" help:"Stop the exporter on the first failed collection rule. When disabled, failed rules are skipped and counted."`
}

type Metrics struct {
	Port int    `name:"port" env:"FF3_EXPORTER_PORT" default:"8000" help:"TCP port to serve Prometheus metrics on."`
	Path string `name:"path" env:"FF3_EXPORTER_METRICS_PATH" default:"/metrics" help:"Path to serve Prometheus metrics"`
}

type Serve struct {
	Firefly  Firefly `embed:"" prefix:"firefly."`
	Collect  Collect `embed:"" prefix:"collect."`
	Metrics  Metrics `embed:"" prefix:"metrics."`
	LogLevel string  `name:"log.level" env:"FF3_EXPORTER_LOGLEVEL" default:"info" help:"Log level (debug, info, warn, error)"`
}

func (f Firefly) config() firefly.Config {
	return firefly.Config{
		BaseURL:   f.BaseURL,
		Token:     f.Token,
		VerifyTLS: f.VerifyTLS,
		Timeout:   f.Timeout,
		RateLimit: f.RateLimit,
		UserAgent: programName + "/" + version.Version,
	}
}

func (m Metrics) addr() string {
	return net.JoinHostPort("", strconv.Itoa(m.Port))
}

func (c Collect) interval() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

func serve(ctx context.Context, cli *CLI) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s := &cli.Serve

	// kong runs Validate during parsing; serve can also be entered without it.
	if err := cli.Validate(); err != nil {
		return err
	}

	logLevel, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse to log level: %w", err)
	}

	logger := logging.New(os.Stdout, logLevel)

	exporter, err := prometheus.NewExporter()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create prometheus exporter", logging.Error(err))
		return err
	}

	client, err := firefly.New(logger, s.Firefly.config(),
		firefly.WithTransportWrapper(exporter.InstrumentRoundTripper),
	)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create firefly client", logging.Error(err))
		return err
	}

	uc := usecase.NewCollectFinanceMetricsUseCase(
		logger,
		client,
		prometheus.NewFinanceMetricsPublisher(logger, exporter, client.BaseURL()),
		s.Collect.FailFast,
	)

	t := newTask(logger, uc, s.Collect.FailFast)

	httpsrv := httpsrv.NewServer(s.Metrics.addr(), httpsrv.ServerOptions{
		MetricsHandler: exporter.Handler(),
		MetricsPath:    s.Metrics.Path,
		Ready:          t.Ready,
	})

	worker := worker.NewWorker(logger, s.Collect.interval(), t)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "Start HTTP Server",
			slog.String("address", httpsrv.ListenAddr()),
			slog.String("path", s.Metrics.Path),
		)

		err := httpsrv.Start()
		if err != nil {
			logger.ErrorContext(ctx, "Failed to start HTTP Server", logging.Error(err))
		}

		return err
	})

	g.Go(func() error {
		logger.InfoContext(ctx, "Start Worker",
			slog.Duration("interval", s.Collect.interval()),
			slog.String("baseurl", client.BaseURL()),
			slog.Bool("fail_fast", s.Collect.FailFast),
		)

		return worker.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.InfoContext(ctx, "Stopping...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		logger.InfoContext(ctx, "Stopping Worker...")
		serr := worker.Shutdown(shutdownCtx)
		if serr != nil {
			logger.ErrorContext(ctx, "Failed to stop Worker", logging.Error(serr))
		}

		logger.InfoContext(ctx, "Stopping HTTP Server...")
		serr = httpsrv.Shutdown(shutdownCtx)
		if serr != nil {
			logger.ErrorContext(ctx, "Failed to stop HTTP Server", logging.Error(serr))
		}

		logger.InfoContext(ctx, "Stopped")

		return nil
	})

	return g.Wait()
}

type taskUC interface {
	Execute(ctx context.Context, cmd usecase.CollectFinanceMetricsCommand) error
}

type task struct {
	logger   *slog.Logger
	uc       taskUC
	failFast bool

	ready atomic.Bool
}

func newTask(logger *slog.Logger, uc taskUC, failFast bool) *task {
	return &task{
		logger:   logger,
		uc:       uc,
		failFast: failFast,
	}
}

// Ready reports whether at least one cycle completed without failures.
func (t *task) Ready() bool {
	return t.ready.Load()
}

func (t *task) Execute(ctx context.Context) error {
	now := time.Now()

	t.logger.InfoContext(ctx, "Run finance metrics collection")

	err := t.uc.Execute(ctx, usecase.CollectFinanceMetricsCommand{
		Today: now,
	})

	if err != nil {
		t.logger.ErrorContext(ctx, "Failed to collect finance metrics", logging.Error(err), slog.Duration("duration", time.Since(now)))

		if t.failFast {
			return err
		}

		return nil
	}

	t.ready.Store(true)
	t.logger.InfoContext(ctx, "Finished finance metrics collection", slog.Duration("duration", time.Since(now)))

	return nil
}

func (c *CLI) Validate() error {
	var errs []error

	s := &c.Serve

	if err := s.Firefly.config().Validate(); err != nil {
		errs = append(errs, err)
	}

	if s.Collect.Interval <= 0 {
		errs = append(errs, invalid("--collect.interval", "must be greater than zero"))
	}

	if !isPort(s.Metrics.Port) {
		errs = append(errs, invalid("--metrics.port", "must be between 1 and 65535"))
	}

	if !isHTTPPath(s.Metrics.Path) {
		errs = append(errs, invalid("--metrics.path", "must start with / and must not be /health or /ready"))
	}

	if !isLogLevel(s.LogLevel) {
		errs = append(errs, invalid("--log.level", "must be one of debug, info, warn, error"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func invalid(field, reason string) error {
	return &ports.ConfigurationError{Field: field, Reason: reason}
}
