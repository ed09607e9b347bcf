package fantasy

import (
	"sort"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/roster"
)

// ComputeLeaderboard aggregates entries per roster user and orders the
// result by total points descending, keeping roster order among equal
// totals. Entries for users outside the roster are ignored. Position fields
// are left zero.
func ComputeLeaderboard(entries []PointEntry, r roster.Roster) []UserAggregate {
	users := r.Users()
	board := make([]UserAggregate, len(users))
	slot := make(map[int]int, len(users))
	for i, u := range users {
		board[i] = UserAggregate{UserID: u.ID, TeamName: u.TeamName}
		slot[u.ID] = i
	}

	for _, e := range entries {
		i, ok := slot[e.UserID]
		if !ok {
			continue
		}
		agg := &board[i]
		if agg.MatchesPlayed == 0 || e.Points > agg.HighestScore {
			agg.HighestScore = e.Points
		}
		agg.TotalPoints += e.Points
		agg.MatchesPlayed++
		if e.MatchNo > agg.LastMatchNo {
			agg.LastMatchNo = e.MatchNo
			agg.LastMatchPoints = e.Points
		}
	}

	for i := range board {
		if board[i].MatchesPlayed > 0 {
			board[i].AverageScore = board[i].TotalPoints / float64(board[i].MatchesPlayed)
		}
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TotalPoints > board[j].TotalPoints
	})
	return board
}

// Rank maps user id to 1-based leaderboard position.
func Rank(board []UserAggregate) map[int]int {
	out := make(map[int]int, len(board))
	for i, agg := range board {
		out[agg.UserID] = i + 1
	}
	return out
}

// NormalizeUsers appends a zeroed aggregate for every roster user missing
// from users, in roster order.
func NormalizeUsers(users []UserAggregate, r roster.Roster) []UserAggregate {
	out := append([]UserAggregate(nil), users...)
	present := make(map[int]struct{}, len(users))
	for _, u := range users {
		present[u.UserID] = struct{}{}
	}
	for _, u := range r.Users() {
		if _, ok := present[u.ID]; ok {
			continue
		}
		out = append(out, UserAggregate{UserID: u.ID, TeamName: u.TeamName})
	}
	return out
}
