package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/config"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "ipl-fantasy-tracker",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, ServiceName: "ipl-fantasy-tracker"}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestProfilersDisabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}

	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	if err != nil || srv != nil {
		t.Fatalf("expected no pprof server, got srv=%v err=%v", srv, err)
	}
}

func TestStart_AllDisabled(t *testing.T) {
	rt, err := Start(config.Config{ServiceName: "ipl-fantasy-tracker"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_PprofAddrClash(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: ":8080", HTTPAddr: ":8080"}
	if _, err := Start(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error when pprof shares the http addr")
	}
}

func TestRuntime_NilShutdown(t *testing.T) {
	var rt *Runtime
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("nil runtime shutdown: %v", err)
	}
}
