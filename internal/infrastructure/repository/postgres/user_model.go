package postgres

import (
	"time"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
)

type userTableModel struct {
	ID              int64      `db:"id,readonly"`
	PublicID        string     `db:"public_id"`
	UserID          int        `db:"user_id"`
	TeamName        string     `db:"team_name"`
	TotalPoints     float64    `db:"total_points"`
	MatchesPlayed   int        `db:"matches_played"`
	HighestScore    float64    `db:"highest_score"`
	AverageScore    float64    `db:"average_score"`
	LastMatchPoints float64    `db:"last_match_points"`
	LastMatchNo     int        `db:"last_match_no"`
	PositionChange  int        `db:"position_change"`
	LastPosition    int        `db:"last_position"`
	CreatedAt       time.Time  `db:"created_at,readonly"`
	UpdatedAt       time.Time  `db:"updated_at,readonly"`
	DeletedAt       *time.Time `db:"deleted_at,readonly"`
}

func (m userTableModel) toDomain() fantasy.UserAggregate {
	return fantasy.UserAggregate{
		ID:              m.PublicID,
		UserID:          m.UserID,
		TeamName:        m.TeamName,
		TotalPoints:     m.TotalPoints,
		MatchesPlayed:   m.MatchesPlayed,
		HighestScore:    m.HighestScore,
		AverageScore:    m.AverageScore,
		LastMatchPoints: m.LastMatchPoints,
		LastMatchNo:     m.LastMatchNo,
		PositionChange:  m.PositionChange,
		LastPosition:    m.LastPosition,
	}
}

func userModelFromDomain(publicID string, u fantasy.UserAggregate) userTableModel {
	return userTableModel{
		PublicID:        publicID,
		UserID:          u.UserID,
		TeamName:        u.TeamName,
		TotalPoints:     u.TotalPoints,
		MatchesPlayed:   u.MatchesPlayed,
		HighestScore:    u.HighestScore,
		AverageScore:    u.AverageScore,
		LastMatchPoints: u.LastMatchPoints,
		LastMatchNo:     u.LastMatchNo,
		PositionChange:  u.PositionChange,
		LastPosition:    u.LastPosition,
	}
}
