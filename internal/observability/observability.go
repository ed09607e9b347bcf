// Package observability starts the optional tracing and profiling sinks.
package observability

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/config"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
)

// Runtime holds whatever Start enabled so it can be torn down in one call.
type Runtime struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
}

func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	var err error
	if rt.shutdownTracing, err = InitUptrace(cfg, logger); err != nil {
		return nil, err
	}
	if rt.stopProfiler, err = InitPyroscope(cfg, logger); err != nil {
		_ = rt.shutdownTracing(context.Background())
		return nil, err
	}
	if rt.pprof, err = StartPprofServer(cfg, logger); err != nil {
		_ = rt.stopProfiler()
		_ = rt.shutdownTracing(context.Background())
		return nil, err
	}
	return rt, nil
}

// Shutdown stops pprof, the profiler and the tracer, flushing pending spans
// within ctx.
func (rt *Runtime) Shutdown(ctx context.Context) error {
	if rt == nil {
		return nil
	}
	var errs []error
	if rt.pprof != nil {
		if err := rt.pprof.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if rt.stopProfiler != nil {
		if err := rt.stopProfiler(); err != nil {
			errs = append(errs, err)
		}
	}
	if rt.shutdownTracing != nil {
		if err := rt.shutdownTracing(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// InitUptrace configures the global OpenTelemetry providers to export to
// Uptrace. Disabled or DSN-less configs return a no-op shutdown.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("uptrace")
	noop := func(context.Context) error { return nil }

	switch {
	case !cfg.UptraceEnabled:
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return noop, nil
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return noop, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)
	return uptrace.Shutdown, nil
}
