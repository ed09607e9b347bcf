package fantasy

import (
	"sort"
	"strconv"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
)

// PointEntry is one user's fantasy score for one match. (MatchNo, UserID) is
// unique across the point set.
type PointEntry struct {
	ID             string  `json:"id,omitempty"`
	MatchNo        int     `json:"matchNo"`
	UserID         int     `json:"userId"`
	Points         float64 `json:"points"`
	MatchUserIndex string  `json:"matchUserIndex"`
	MatchDate      string  `json:"match_date"`
	TeamName       string  `json:"team_name"`
	MatchDetails   string  `json:"match_details"`
	RelativeRank   int     `json:"relative_rank"`
}

func MatchUserIndex(matchNo, userID int) string {
	return strconv.Itoa(matchNo) + ":" + strconv.Itoa(userID)
}

// UserAggregate is the derived per-user summary. Only ID, PositionChange and
// LastPosition carry information that cannot be recomputed from points.
type UserAggregate struct {
	ID              string  `json:"id,omitempty"`
	UserID          int     `json:"user_id"`
	TeamName        string  `json:"team_name"`
	TotalPoints     float64 `json:"total_points"`
	MatchesPlayed   int     `json:"matches_played"`
	HighestScore    float64 `json:"highest_score"`
	AverageScore    float64 `json:"average_score"`
	LastMatchPoints float64 `json:"last_match_points"`
	LastMatchNo     int     `json:"last_match_no"`
	PositionChange  int     `json:"position_change"`
	LastPosition    int     `json:"last_position"`
}

type MatchStat struct {
	ID                string               `json:"id,omitempty"`
	MatchNo           int                  `json:"matchNo"`
	HighestScorerID   int                  `json:"highest_scorer_id"`
	HighestScore      float64              `json:"highest_score"`
	AverageScore      float64              `json:"average_score"`
	TotalParticipants int                  `json:"total_participants"`
	MatchDate         string               `json:"match_date"`
	MatchDetails      string               `json:"match_details"`
	MatchStatus       schedule.MatchStatus `json:"match_status"`
}

// State is the unit loaded from and saved to the stores.
type State struct {
	Points     []PointEntry    `json:"points"`
	Users      []UserAggregate `json:"users"`
	MatchStats []MatchStat     `json:"match_stats"`
}

func (s State) Clone() State {
	return State{
		Points:     append([]PointEntry(nil), s.Points...),
		Users:      append([]UserAggregate(nil), s.Users...),
		MatchStats: append([]MatchStat(nil), s.MatchStats...),
	}
}

// PointsForMatch returns the match's entries in relative rank order.
func (s State) PointsForMatch(matchNo int) []PointEntry {
	out := make([]PointEntry, 0)
	for _, p := range s.Points {
		if p.MatchNo == matchNo {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RelativeRank < out[j].RelativeRank })
	return out
}

// PointsForUser returns the user's entries ordered by match number.
func (s State) PointsForUser(userID int) []PointEntry {
	out := make([]PointEntry, 0)
	for _, p := range s.Points {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchNo < out[j].MatchNo })
	return out
}

func (s State) HasPoints(matchNo int) bool {
	for _, p := range s.Points {
		if p.MatchNo == matchNo {
			return true
		}
	}
	return false
}

func (s State) MatchStat(matchNo int) (MatchStat, bool) {
	for _, st := range s.MatchStats {
		if st.MatchNo == matchNo {
			return st, true
		}
	}
	return MatchStat{}, false
}

func (s State) User(userID int) (UserAggregate, bool) {
	for _, u := range s.Users {
		if u.UserID == userID {
			return u, true
		}
	}
	return UserAggregate{}, false
}

// CompletedMatches counts distinct matches with at least one entry.
func (s State) CompletedMatches() int {
	seen := make(map[int]struct{})
	for _, p := range s.Points {
		seen[p.MatchNo] = struct{}{}
	}
	return len(seen)
}
