package postgres

import (
	"time"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
)

type pointTableModel struct {
	ID             int64      `db:"id,readonly"`
	PublicID       string     `db:"public_id"`
	MatchNo        int        `db:"match_no"`
	UserID         int        `db:"user_id"`
	Points         float64    `db:"points"`
	MatchUserIndex string     `db:"match_user_index"`
	MatchDate      string     `db:"match_date"`
	TeamName       string     `db:"team_name"`
	MatchDetails   string     `db:"match_details"`
	RelativeRank   int        `db:"relative_rank"`
	CreatedAt      time.Time  `db:"created_at,readonly"`
	UpdatedAt      time.Time  `db:"updated_at,readonly"`
	DeletedAt      *time.Time `db:"deleted_at,readonly"`
}

func (m pointTableModel) toDomain() fantasy.PointEntry {
	return fantasy.PointEntry{
		ID:             m.PublicID,
		MatchNo:        m.MatchNo,
		UserID:         m.UserID,
		Points:         m.Points,
		MatchUserIndex: m.MatchUserIndex,
		MatchDate:      m.MatchDate,
		TeamName:       m.TeamName,
		MatchDetails:   m.MatchDetails,
		RelativeRank:   m.RelativeRank,
	}
}

func pointModelFromDomain(publicID string, e fantasy.PointEntry) pointTableModel {
	return pointTableModel{
		PublicID:       publicID,
		MatchNo:        e.MatchNo,
		UserID:         e.UserID,
		Points:         e.Points,
		MatchUserIndex: e.MatchUserIndex,
		MatchDate:      e.MatchDate,
		TeamName:       e.TeamName,
		MatchDetails:   e.MatchDetails,
		RelativeRank:   e.RelativeRank,
	}
}
