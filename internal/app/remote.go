package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/ipl-fantasy-tracker/external/datastore"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/config"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/cache"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/usecase"
)

type remoteStores struct {
	tracker usecase.RemoteStore
	notes   note.Repository
	close   func() error
}

func noopClose() error { return nil }

func newIDGenerators() (points, users, stats, notes id.Generator) {
	return id.NewRandomGenerator("pt_"),
		id.NewRandomGenerator("usr_"),
		id.NewRandomGenerator("ms_"),
		id.NewRandomGenerator("note_")
}

// buildRemoteStores wires the configured remote driver, optionally behind
// the read-through cache.
func buildRemoteStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (remoteStores, error) {
	pointIDs, userIDs, statIDs, noteIDs := newIDGenerators()

	var out remoteStores
	switch cfg.RemoteDriver {
	case config.DriverPostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return remoteStores{}, err
		}
		out = remoteStores{
			tracker: usecase.RemoteStore{
				Points:     postgres.NewPointRepository(db, pointIDs),
				Users:      postgres.NewUserRepository(db, userIDs),
				MatchStats: postgres.NewMatchStatRepository(db, statIDs),
			},
			notes: postgres.NewNoteRepository(db, noteIDs),
			close: db.Close,
		}
	case config.DriverHTTP:
		client, err := datastore.NewClient(datastore.ClientConfig{
			BaseURL:        cfg.RemoteHTTPBaseURL,
			Token:          cfg.RemoteHTTPToken,
			Timeout:        cfg.RemoteTimeout,
			Logger:         logger,
			CircuitBreaker: cfg.RemoteCircuit,
		})
		if err != nil {
			return remoteStores{}, err
		}
		out = remoteStores{
			tracker: usecase.RemoteStore{
				Points:     datastore.NewPointRepository(client),
				Users:      datastore.NewUserRepository(client),
				MatchStats: datastore.NewMatchStatRepository(client),
			},
			notes: datastore.NewNoteRepository(client),
			close: noopClose,
		}
	case config.DriverMemory:
		out = remoteStores{
			tracker: usecase.RemoteStore{
				Points:     memory.NewPointRepository(pointIDs),
				Users:      memory.NewUserRepository(userIDs),
				MatchStats: memory.NewMatchStatRepository(statIDs),
			},
			notes: memory.NewNoteRepository(noteIDs),
			close: noopClose,
		}
	default:
		return remoteStores{}, fmt.Errorf("unsupported remote store driver %q", cfg.RemoteDriver)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		out.tracker = usecase.RemoteStore{
			Points:     cache.NewPointRepository(out.tracker.Points, store),
			Users:      cache.NewUserRepository(out.tracker.Users, store),
			MatchStats: cache.NewMatchStatRepository(out.tracker.MatchStats, store),
		}
		out.notes = cache.NewNoteRepository(out.notes, store)
	}

	logger.Info("remote store configured",
		"driver", cfg.RemoteDriver,
		"cache_enabled", cfg.CacheEnabled,
	)
	return out, nil
}
