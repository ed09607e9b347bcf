package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/roster"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
)

type stateSyncer interface {
	Load(ctx context.Context) (fantasy.State, LoadReport)
	Save(ctx context.Context, state fantasy.State, matchNo int) (fantasy.State, SaveReport)
}

type LeaderboardRow struct {
	Position int `json:"position"`
	fantasy.UserAggregate
}

type Leaderboard struct {
	Rows             []LeaderboardRow `json:"rows"`
	CompletedMatches int              `json:"completed_matches"`
	Source           DataSource       `json:"source"`
}

type MatchView struct {
	schedule.Match
	Status   schedule.MatchStatus `json:"status"`
	HomeCode string               `json:"homeCode"`
	AwayCode string               `json:"awayCode"`
	Points   []fantasy.PointEntry `json:"points"`
}

type MatchDetail struct {
	MatchView
	Stat *fantasy.MatchStat `json:"stat,omitempty"`
}

type UserHistory struct {
	User    fantasy.UserAggregate `json:"user"`
	Points  []fantasy.PointEntry  `json:"points"`
	Matches int                   `json:"matches"`
}

type SubmitResult struct {
	Entries     []fantasy.PointEntry `json:"entries"`
	Leaderboard []LeaderboardRow     `json:"leaderboard"`
	MatchStat   fantasy.MatchStat    `json:"match_stat"`
	Save        SaveReport           `json:"save"`
}

// TrackerService owns the in-memory tracker state. Submissions and reloads
// are serialized; reads see the last committed state.
type TrackerService struct {
	writeMu sync.Mutex

	mu     sync.RWMutex
	state  fantasy.State
	report LoadReport

	syncer   stateSyncer
	roster   roster.Roster
	schedule schedule.Provider
	logger   *logging.Logger
	now      func() time.Time
}

func NewTrackerService(syncer stateSyncer, r roster.Roster, sched schedule.Provider, logger *logging.Logger) *TrackerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TrackerService{
		syncer:   syncer,
		roster:   r,
		schedule: sched,
		logger:   logger.Named("tracker"),
		now:      time.Now,
		state:    fantasy.State{Users: fantasy.ComputeLeaderboard(nil, r)},
		report:   LoadReport{Source: SourceEmpty},
	}
}

// Reload replaces the in-memory state with the persisted one. Derived
// collections are recomputed from the loaded points.
func (s *TrackerService) Reload(ctx context.Context) LoadReport {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrackerService.Reload")
	defer span.End()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	loaded, report := s.syncer.Load(ctx)
	state := fantasy.Reconcile(loaded, s.roster, s.schedule, s.now())

	s.mu.Lock()
	s.state = state
	s.report = report
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "tracker state loaded",
		"source", report.Source,
		"points", len(state.Points),
		"completed_matches", state.CompletedMatches(),
	)
	return report
}

func (s *TrackerService) snapshot() (fantasy.State, LoadReport) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), s.report
}

func (s *TrackerService) Leaderboard(ctx context.Context) Leaderboard {
	_, span := startUsecaseSpan(ctx, "usecase.TrackerService.Leaderboard")
	defer span.End()

	state, report := s.snapshot()
	return Leaderboard{
		Rows:             leaderboardRows(state.Users),
		CompletedMatches: state.CompletedMatches(),
		Source:           report.Source,
	}
}

func (s *TrackerService) Schedule(ctx context.Context) []MatchView {
	_, span := startUsecaseSpan(ctx, "usecase.TrackerService.Schedule")
	defer span.End()

	state, _ := s.snapshot()
	now := s.now()
	matches := s.schedule.Matches()
	out := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		out = append(out, s.matchView(state, m, now))
	}
	return out
}

func (s *TrackerService) Match(ctx context.Context, matchNo int) (MatchDetail, error) {
	_, span := startUsecaseSpan(ctx, "usecase.TrackerService.Match", matchAttr(matchNo))
	defer span.End()

	m, ok := s.schedule.Match(matchNo)
	if !ok {
		return MatchDetail{}, fmt.Errorf("%w: match %d", ErrNotFound, matchNo)
	}
	state, _ := s.snapshot()
	detail := MatchDetail{MatchView: s.matchView(state, m, s.now())}
	if stat, ok := state.MatchStat(matchNo); ok {
		detail.Stat = &stat
	}
	return detail, nil
}

func (s *TrackerService) MatchStats(ctx context.Context) []fantasy.MatchStat {
	_, span := startUsecaseSpan(ctx, "usecase.TrackerService.MatchStats")
	defer span.End()

	state, _ := s.snapshot()
	return state.MatchStats
}

func (s *TrackerService) SubmissionTemplate(ctx context.Context, matchNo int) ([]fantasy.SubmissionItem, error) {
	_, span := startUsecaseSpan(ctx, "usecase.TrackerService.SubmissionTemplate", matchAttr(matchNo))
	defer span.End()

	if _, ok := s.schedule.Match(matchNo); !ok {
		return nil, fmt.Errorf("%w: match %d", ErrNotFound, matchNo)
	}
	state, _ := s.snapshot()
	return fantasy.Template(state.PointsForMatch(matchNo), s.roster), nil
}

// SubmitMatchPoints validates raw, replaces the match's points and saves.
// Validation failures leave the state untouched and are returned as
// *fantasy.ValidationError. Persistence trouble is reported in the result.
func (s *TrackerService) SubmitMatchPoints(ctx context.Context, matchNo int, raw []byte) (SubmitResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrackerService.SubmitMatchPoints", matchAttr(matchNo))
	defer span.End()

	entries, err := fantasy.SubmitMatchPoints(matchNo, raw, s.roster, s.schedule)
	if err != nil {
		s.logger.WarnContext(ctx, "rejected match points", "match_no", matchNo, "error", err)
		return SubmitResult{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	prior, _ := s.snapshot()
	next := fantasy.ApplySubmission(prior, matchNo, entries, s.roster, s.schedule, s.now())
	saved, report := s.syncer.Save(ctx, next, matchNo)

	s.mu.Lock()
	s.state = saved
	s.mu.Unlock()

	stat, _ := saved.MatchStat(matchNo)
	s.logger.InfoContext(ctx, "match points submitted",
		"match_no", matchNo,
		"entries", len(entries),
		"remote_saved", report.RemoteSaved,
		"warnings", len(report.Warnings),
	)
	return SubmitResult{
		Entries:     saved.PointsForMatch(matchNo),
		Leaderboard: leaderboardRows(saved.Users),
		MatchStat:   stat,
		Save:        report,
	}, nil
}

func (s *TrackerService) UserHistory(ctx context.Context, userID int) (UserHistory, error) {
	_, span := startUsecaseSpan(ctx, "usecase.TrackerService.UserHistory", attribute.Int("tracker.user_id", userID))
	defer span.End()

	if _, ok := s.roster.ByID(userID); !ok {
		return UserHistory{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	state, _ := s.snapshot()
	user, _ := state.User(userID)
	points := state.PointsForUser(userID)
	sort.SliceStable(points, func(i, j int) bool { return points[i].MatchNo < points[j].MatchNo })
	return UserHistory{User: user, Points: points, Matches: len(points)}, nil
}

func (s *TrackerService) matchView(state fantasy.State, m schedule.Match, now time.Time) MatchView {
	points := state.PointsForMatch(m.MatchNo)
	return MatchView{
		Match:    m,
		Status:   schedule.Status(m, len(points) > 0, now),
		HomeCode: schedule.TeamCode(m.HomeTeam),
		AwayCode: schedule.TeamCode(m.AwayTeam),
		Points:   points,
	}
}

func leaderboardRows(users []fantasy.UserAggregate) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(users))
	for i, u := range users {
		rows = append(rows, LeaderboardRow{Position: i + 1, UserAggregate: u})
	}
	return rows
}
