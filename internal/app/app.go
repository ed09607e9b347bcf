package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/config"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/roster"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/localstore"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/schedulefile"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/interfaces/httpapi"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/usecase"
)

// NewHTTPServer wires the tracker and loads its initial state. The returned
// cleanup releases the remote store.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	sched, err := schedulefile.Load(cfg.ScheduleFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load schedule: %w", err)
	}
	teams := roster.Default()

	blobs, err := localstore.NewFileStore(cfg.LocalStoreDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	remote, err := buildRemoteStores(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build remote store: %w", err)
	}

	syncSvc := usecase.NewSyncService(
		remote.tracker,
		localstore.NewSnapshots(blobs),
		teams,
		usecase.SyncConfig{
			RemoteTimeout: cfg.RemoteTimeout,
			SaveWorkers:   cfg.RemoteSaveWorkers,
		},
		logger,
	)
	trackerSvc := usecase.NewTrackerService(syncSvc, teams, sched, logger)
	noteSvc := usecase.NewNoteService(remote.notes)

	report := trackerSvc.Reload(ctx)
	logger.InfoContext(ctx, "initial state ready",
		"source", report.Source,
		"matches", len(sched.Matches()),
		"users", teams.Len(),
	)

	handler := httpapi.NewHandler(trackerSvc, noteSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, remote.close, nil
}
