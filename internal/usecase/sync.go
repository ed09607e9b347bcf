package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/roster"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
)

const (
	defaultRemoteTimeout = 10 * time.Second
	defaultSaveWorkers   = 4
)

type DataSource string

const (
	SourceRemote DataSource = "remote"
	SourceLocal  DataSource = "local"
	SourceEmpty  DataSource = "empty"
)

// RemoteStore groups the remote collections the tracker state lives in.
type RemoteStore struct {
	Points     fantasy.PointRepository
	Users      fantasy.UserRepository
	MatchStats fantasy.MatchStatRepository
}

func (r RemoteStore) configured() bool {
	return r.Points != nil && r.Users != nil && r.MatchStats != nil
}

// SnapshotStore is the local fallback holding the last saved state.
type SnapshotStore interface {
	Load() (state fantasy.State, found bool, problems []string)
	Save(state fantasy.State) error
}

type LoadReport struct {
	Source   DataSource `json:"source"`
	Message  string     `json:"message,omitempty"`
	Problems []string   `json:"problems,omitempty"`
}

type SaveReport struct {
	LocalSaved  bool     `json:"local_saved"`
	RemoteSaved bool     `json:"remote_saved"`
	Warnings    []string `json:"warnings,omitempty"`
}

type SyncConfig struct {
	RemoteTimeout time.Duration
	SaveWorkers   int
}

// SyncService moves tracker state between memory, the remote store and
// the local snapshot store. Remote trouble never fails a call; it is
// reported and the local store takes over.
type SyncService struct {
	remote  RemoteStore
	local   SnapshotStore
	roster  roster.Roster
	timeout time.Duration
	workers int
	logger  *logging.Logger
}

func NewSyncService(remote RemoteStore, local SnapshotStore, r roster.Roster, cfg SyncConfig, logger *logging.Logger) *SyncService {
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = defaultRemoteTimeout
	}
	if cfg.SaveWorkers <= 0 {
		cfg.SaveWorkers = defaultSaveWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		remote:  remote,
		local:   local,
		roster:  r,
		timeout: cfg.RemoteTimeout,
		workers: cfg.SaveWorkers,
		logger:  logger.Named("sync"),
	}
}

// Load reads the state from the remote store, or from the local store when
// any remote list fails. Users always cover the full roster.
func (s *SyncService) Load(ctx context.Context) (fantasy.State, LoadReport) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Load")
	defer span.End()

	state, err := s.loadRemote(ctx)
	if err == nil {
		state.Users = fantasy.NormalizeUsers(state.Users, s.roster)
		s.logger.InfoContext(ctx, "loaded state from remote store",
			"points", len(state.Points),
			"users", len(state.Users),
			"match_stats", len(state.MatchStats),
		)
		span.SetAttributes(attribute.String("tracker.source", string(SourceRemote)))
		return state, LoadReport{Source: SourceRemote}
	}

	s.logger.WarnContext(ctx, "remote load failed, falling back to local store", "error", err)
	report := LoadReport{
		Source:  SourceLocal,
		Message: fmt.Sprintf("%v: %v", ErrRemoteUnavailable, err),
	}

	var local fantasy.State
	var found bool
	if s.local != nil {
		local, found, report.Problems = s.local.Load()
	}
	if !found {
		report.Source = SourceEmpty
	}
	for _, problem := range report.Problems {
		s.logger.WarnContext(ctx, "local snapshot unreadable", "problem", problem)
	}
	local.Users = fantasy.NormalizeUsers(local.Users, s.roster)
	span.SetAttributes(attribute.String("tracker.source", string(report.Source)))
	return local, report
}

func (s *SyncService) loadRemote(ctx context.Context) (fantasy.State, error) {
	if !s.remote.configured() {
		return fantasy.State{}, fmt.Errorf("remote store is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var state fantasy.State
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.remote.Points.List(ctx)
		if err != nil {
			return fmt.Errorf("list fantasy points: %w", err)
		}
		state.Points = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.remote.Users.List(ctx)
		if err != nil {
			return fmt.Errorf("list fantasy users: %w", err)
		}
		state.Users = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.remote.MatchStats.List(ctx)
		if err != nil {
			return fmt.Errorf("list match stats: %w", err)
		}
		state.MatchStats = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return fantasy.State{}, err
	}
	return state, nil
}

// Save writes the full state locally, then pushes the delta for matchNo to
// the remote store. The returned state carries remote ids assigned during
// the push.
func (s *SyncService) Save(ctx context.Context, state fantasy.State, matchNo int) (fantasy.State, SaveReport) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Save", matchAttr(matchNo))
	defer span.End()

	state = state.Clone()
	var report SaveReport
	if s.local != nil {
		if err := s.local.Save(state); err != nil {
			s.logger.ErrorContext(ctx, "save local snapshot failed", "match_no", matchNo, "error", err)
			report.Warnings = append(report.Warnings, fmt.Sprintf("local snapshot not saved: %v", err))
		} else {
			report.LocalSaved = true
		}
	}

	if !s.remote.configured() {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%v: remote store is not configured", ErrRemoteWriteFailed))
		return state, report
	}

	remoteFailures := 0
	warn := func(step string, err error) {
		remoteFailures++
		s.logger.WarnContext(ctx, "remote save step failed", "match_no", matchNo, "step", step, "error", err)
		report.Warnings = append(report.Warnings, fmt.Sprintf("%v: %s: %v", ErrRemoteWriteFailed, step, err))
	}

	if err := s.replacePoints(ctx, &state, matchNo); err != nil {
		warn("replace points", err)
	}
	for _, err := range s.upsertUsers(ctx, state.Users) {
		warn("upsert user", err)
	}
	if err := s.upsertMatchStat(ctx, &state, matchNo); err != nil {
		warn("upsert match stat", err)
	}
	report.RemoteSaved = remoteFailures == 0
	span.SetAttributes(
		attribute.Bool("tracker.remote_saved", report.RemoteSaved),
		attribute.Int("tracker.remote_failures", remoteFailures),
	)

	if report.LocalSaved {
		if err := s.local.Save(state); err != nil {
			s.logger.WarnContext(ctx, "persist remote ids locally failed", "error", err)
		}
	}
	return state, report
}

// replacePoints deletes every remote row of the match before creating the
// new rows.
func (s *SyncService) replacePoints(ctx context.Context, state *fantasy.State, matchNo int) error {
	existing, err := withTimeout(ctx, s.timeout, func(ctx context.Context) ([]fantasy.PointEntry, error) {
		return s.remote.Points.ListByMatch(ctx, matchNo)
	})
	if err != nil {
		return fmt.Errorf("list match %d points: %w", matchNo, err)
	}
	for _, row := range existing {
		_, err := withTimeout(ctx, s.timeout, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.remote.Points.Delete(ctx, row.ID)
		})
		if err != nil {
			return fmt.Errorf("delete point %s: %w", row.ID, err)
		}
	}

	for i := range state.Points {
		entry := &state.Points[i]
		if entry.MatchNo != matchNo {
			continue
		}
		created, err := withTimeout(ctx, s.timeout, func(ctx context.Context) (fantasy.PointEntry, error) {
			return s.remote.Points.Create(ctx, *entry)
		})
		if err != nil {
			return fmt.Errorf("create point %s: %w", entry.MatchUserIndex, err)
		}
		entry.ID = created.ID
	}
	return nil
}

// upsertUsers writes every aggregate on a bounded worker pool, matching
// remote rows by user id.
func (s *SyncService) upsertUsers(ctx context.Context, users []fantasy.UserAggregate) []error {
	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return []error{fmt.Errorf("create worker pool: %w", err)}
	}
	defer workerPool.Release()

	var (
		mu      sync.Mutex
		errs    []error
		workers sync.WaitGroup
	)
	record := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	for i := range users {
		user := &users[i]
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			saved, err := s.upsertUser(ctx, *user)
			if err != nil {
				record(fmt.Errorf("user %d: %w", user.UserID, err))
				return
			}
			user.ID = saved.ID
		}); err != nil {
			workers.Done()
			record(fmt.Errorf("submit user %d: %w", user.UserID, err))
		}
	}
	workers.Wait()
	return errs
}

func (s *SyncService) upsertUser(ctx context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	found, err := withTimeout(ctx, s.timeout, func(ctx context.Context) ([]fantasy.UserAggregate, error) {
		return s.remote.Users.ListByUserID(ctx, user.UserID)
	})
	if err != nil {
		return fantasy.UserAggregate{}, err
	}
	return withTimeout(ctx, s.timeout, func(ctx context.Context) (fantasy.UserAggregate, error) {
		if len(found) > 0 {
			user.ID = found[0].ID
			return s.remote.Users.Update(ctx, user)
		}
		return s.remote.Users.Create(ctx, user)
	})
}

func (s *SyncService) upsertMatchStat(ctx context.Context, state *fantasy.State, matchNo int) error {
	idx := -1
	for i := range state.MatchStats {
		if state.MatchStats[i].MatchNo == matchNo {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	stat := &state.MatchStats[idx]

	found, err := withTimeout(ctx, s.timeout, func(ctx context.Context) ([]fantasy.MatchStat, error) {
		return s.remote.MatchStats.ListByMatch(ctx, matchNo)
	})
	if err != nil {
		return fmt.Errorf("list match %d stat: %w", matchNo, err)
	}
	saved, err := withTimeout(ctx, s.timeout, func(ctx context.Context) (fantasy.MatchStat, error) {
		if len(found) > 0 {
			stat.ID = found[0].ID
			return s.remote.MatchStats.Update(ctx, *stat)
		}
		return s.remote.MatchStats.Create(ctx, *stat)
	})
	if err != nil {
		return fmt.Errorf("save match %d stat: %w", matchNo, err)
	}
	stat.ID = saved.ID
	return nil
}

func withTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx)
}
