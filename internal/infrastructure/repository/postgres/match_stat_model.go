package postgres

import (
	"time"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
)

type matchStatTableModel struct {
	ID                int64      `db:"id,readonly"`
	PublicID          string     `db:"public_id"`
	MatchNo           int        `db:"match_no"`
	HighestScorerID   int        `db:"highest_scorer_id"`
	HighestScore      float64    `db:"highest_score"`
	AverageScore      float64    `db:"average_score"`
	TotalParticipants int        `db:"total_participants"`
	MatchDate         string     `db:"match_date"`
	MatchDetails      string     `db:"match_details"`
	MatchStatus       string     `db:"match_status"`
	CreatedAt         time.Time  `db:"created_at,readonly"`
	UpdatedAt         time.Time  `db:"updated_at,readonly"`
	DeletedAt         *time.Time `db:"deleted_at,readonly"`
}

func (m matchStatTableModel) toDomain() fantasy.MatchStat {
	return fantasy.MatchStat{
		ID:                m.PublicID,
		MatchNo:           m.MatchNo,
		HighestScorerID:   m.HighestScorerID,
		HighestScore:      m.HighestScore,
		AverageScore:      m.AverageScore,
		TotalParticipants: m.TotalParticipants,
		MatchDate:         m.MatchDate,
		MatchDetails:      m.MatchDetails,
		MatchStatus:       schedule.MatchStatus(m.MatchStatus),
	}
}

func matchStatModelFromDomain(publicID string, s fantasy.MatchStat) matchStatTableModel {
	return matchStatTableModel{
		PublicID:          publicID,
		MatchNo:           s.MatchNo,
		HighestScorerID:   s.HighestScorerID,
		HighestScore:      s.HighestScore,
		AverageScore:      s.AverageScore,
		TotalParticipants: s.TotalParticipants,
		MatchDate:         s.MatchDate,
		MatchDetails:      s.MatchDetails,
		MatchStatus:       string(s.MatchStatus),
	}
}
