package fantasy

import (
	"sort"
	"time"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/roster"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
)

// ApplySubmission replaces every prior entry of matchNo with entries and
// recomputes the derived state.
//
// Rank movement comes from two leaderboard snapshots: one over the prior
// point set (before the match's old rows are removed) and one over the new
// point set. Users in the new batch or in the replaced rows get
// LastPosition and PositionChange from that diff, or zero when they had no
// entries before. Everyone else keeps their prior values. The returned users
// are in leaderboard order.
func ApplySubmission(prior State, matchNo int, entries []PointEntry, r roster.Roster, sched schedule.Provider, now time.Time) State {
	before := Rank(ComputeLeaderboard(prior.Points, r))

	ranked := make(map[int]bool)
	affected := make(map[int]bool, len(entries))
	points := make([]PointEntry, 0, len(prior.Points)+len(entries))
	for _, p := range prior.Points {
		ranked[p.UserID] = true
		if p.MatchNo == matchNo {
			affected[p.UserID] = true
			continue
		}
		points = append(points, p)
	}
	for _, e := range entries {
		affected[e.UserID] = true
	}
	points = append(points, entries...)

	board := ComputeLeaderboard(points, r)
	after := Rank(board)
	priorUsers := indexUsers(prior.Users)
	for i := range board {
		agg := &board[i]
		old, hasOld := priorUsers[agg.UserID]
		if hasOld {
			agg.ID = old.ID
		}
		switch {
		case affected[agg.UserID] && ranked[agg.UserID]:
			agg.LastPosition = before[agg.UserID]
			agg.PositionChange = before[agg.UserID] - after[agg.UserID]
		case affected[agg.UserID]:
			agg.LastPosition = 0
			agg.PositionChange = 0
		case hasOld:
			agg.LastPosition = old.LastPosition
			agg.PositionChange = old.PositionChange
		}
	}

	match, ok := sched.Match(matchNo)
	if !ok {
		match = schedule.Match{MatchNo: matchNo}
	}
	stat := ComputeMatchStat(match, entries, now)

	stats := make([]MatchStat, 0, len(prior.MatchStats)+1)
	for _, st := range prior.MatchStats {
		if st.MatchNo == matchNo {
			stat.ID = st.ID
			continue
		}
		stats = append(stats, st)
	}
	stats = append(stats, stat)
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].MatchNo < stats[j].MatchNo })

	return State{Points: points, Users: board, MatchStats: stats}
}

// ComputeMatchStat summarizes one match. The highest scorer is the first
// entry holding the maximum points.
func ComputeMatchStat(match schedule.Match, entries []PointEntry, now time.Time) MatchStat {
	stat := MatchStat{
		MatchNo:           match.MatchNo,
		MatchDate:         match.Date,
		TotalParticipants: len(entries),
		MatchStatus:       schedule.Status(match, len(entries) > 0, now),
	}
	if match.HomeTeam != "" || match.AwayTeam != "" {
		stat.MatchDetails = match.Details()
	}
	if len(entries) == 0 {
		return stat
	}

	var total float64
	for i, e := range entries {
		total += e.Points
		if i == 0 || e.Points > stat.HighestScore {
			stat.HighestScore = e.Points
			stat.HighestScorerID = e.UserID
		}
	}
	stat.AverageScore = total / float64(len(entries))
	if stat.MatchDate == "" {
		stat.MatchDate = entries[0].MatchDate
		stat.MatchDetails = entries[0].MatchDetails
	}
	return stat
}

// Reconcile recomputes the derived collections from the point set. Remote
// ids and rank movement are carried over from the loaded aggregates; stats
// of matches without points are kept as loaded.
func Reconcile(loaded State, r roster.Roster, sched schedule.Provider, now time.Time) State {
	board := ComputeLeaderboard(loaded.Points, r)
	priorUsers := indexUsers(loaded.Users)
	for i := range board {
		if old, ok := priorUsers[board[i].UserID]; ok {
			board[i].ID = old.ID
			board[i].LastPosition = old.LastPosition
			board[i].PositionChange = old.PositionChange
		}
	}

	byMatch := make(map[int][]PointEntry)
	for _, p := range loaded.Points {
		byMatch[p.MatchNo] = append(byMatch[p.MatchNo], p)
	}

	stats := make([]MatchStat, 0, len(loaded.MatchStats)+len(byMatch))
	done := make(map[int]bool, len(byMatch))
	for _, st := range loaded.MatchStats {
		if done[st.MatchNo] {
			continue
		}
		done[st.MatchNo] = true
		entries, ok := byMatch[st.MatchNo]
		if !ok {
			stats = append(stats, st)
			continue
		}
		fresh := ComputeMatchStat(matchOrStub(sched, st.MatchNo), inRankOrder(entries), now)
		fresh.ID = st.ID
		stats = append(stats, fresh)
	}
	for matchNo, entries := range byMatch {
		if done[matchNo] {
			continue
		}
		stats = append(stats, ComputeMatchStat(matchOrStub(sched, matchNo), inRankOrder(entries), now))
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].MatchNo < stats[j].MatchNo })

	return State{
		Points:     append([]PointEntry(nil), loaded.Points...),
		Users:      board,
		MatchStats: stats,
	}
}

func matchOrStub(sched schedule.Provider, matchNo int) schedule.Match {
	if m, ok := sched.Match(matchNo); ok {
		return m
	}
	return schedule.Match{MatchNo: matchNo}
}

// inRankOrder sorts stored rows by relative rank. Ranks were assigned in
// submission order among equal points, so the first row is the highest
// scorer ComputeMatchStat would have picked at submission time.
func inRankOrder(entries []PointEntry) []PointEntry {
	out := append([]PointEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RelativeRank < out[j].RelativeRank })
	return out
}

func indexUsers(users []UserAggregate) map[int]UserAggregate {
	out := make(map[int]UserAggregate, len(users))
	for _, u := range users {
		if _, ok := out[u.UserID]; !ok {
			out[u.UserID] = u
		}
	}
	return out
}
