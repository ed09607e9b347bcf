package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/roster"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/localstore"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
)

var testNow = time.Date(2025, 4, 1, 12, 0, 0, 0, schedule.MatchTimezone)

func testRoster() roster.Roster {
	return roster.MustNew([]roster.User{
		{ID: 1, TeamName: "A"},
		{ID: 2, TeamName: "B"},
	})
}

func testSchedule(t *testing.T) *schedule.Schedule {
	t.Helper()

	sched, err := schedule.New([]schedule.Match{
		{MatchNo: 1, Date: "2025-03-22", HomeTeam: "Kolkata Knight Riders", AwayTeam: "Royal Challengers Bengaluru", Venue: "Eden Gardens", Time: "7:30 PM"},
		{MatchNo: 2, Date: "2025-03-23", HomeTeam: "Chennai Super Kings", AwayTeam: "Mumbai Indians", Venue: "Chepauk", Time: "7:30 PM"},
		{MatchNo: 3, Date: "2025-05-01", HomeTeam: "Delhi Capitals", AwayTeam: "Punjab Kings", Venue: "Arun Jaitley Stadium"},
	})
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}
	return sched
}

func memoryRemote() RemoteStore {
	return RemoteStore{
		Points:     memory.NewPointRepository(id.NewRandomGenerator("pt_")),
		Users:      memory.NewUserRepository(id.NewRandomGenerator("usr_")),
		MatchStats: memory.NewMatchStatRepository(id.NewRandomGenerator("ms_")),
	}
}

func fileSnapshots(t *testing.T, dir string) *localstore.Snapshots {
	t.Helper()

	store, err := localstore.NewFileStore(dir)
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}
	return localstore.NewSnapshots(store)
}

func newTestTracker(t *testing.T, remote RemoteStore, dir string) *TrackerService {
	t.Helper()

	r := testRoster()
	syncer := NewSyncService(remote, fileSnapshots(t, dir), r, SyncConfig{RemoteTimeout: time.Second, SaveWorkers: 2}, logging.NewNop())
	svc := NewTrackerService(syncer, r, testSchedule(t), logging.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}
