package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
	qb "github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/querybuilder"
)

const matchStatsTable = "match_stats"

type MatchStatRepository struct {
	db    *sqlx.DB
	idGen id.Generator
}

func NewMatchStatRepository(db *sqlx.DB, idGen id.Generator) *MatchStatRepository {
	return &MatchStatRepository{db: db, idGen: idGen}
}

func (r *MatchStatRepository) List(ctx context.Context) ([]fantasy.MatchStat, error) {
	return r.list(ctx)
}

func (r *MatchStatRepository) ListByMatch(ctx context.Context, matchNo int) ([]fantasy.MatchStat, error) {
	return r.list(ctx, qb.Eq("match_no", matchNo))
}

func (r *MatchStatRepository) list(ctx context.Context, conds ...qb.Condition) ([]fantasy.MatchStat, error) {
	query, args, err := qb.Select("*").From(matchStatsTable).
		Where(append(conds, qb.IsNull("deleted_at"))...).
		OrderBy("match_no").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match stats query: %w", err)
	}

	var rows []matchStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match stats: %w", err)
	}

	out := make([]fantasy.MatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchStatRepository) Create(ctx context.Context, stat fantasy.MatchStat) (fantasy.MatchStat, error) {
	publicID, err := r.idGen.NewID()
	if err != nil {
		return fantasy.MatchStat{}, fmt.Errorf("generate match stat id: %w", err)
	}

	query, args, err := qb.InsertModel(matchStatsTable, matchStatModelFromDomain(publicID, stat), "RETURNING public_id")
	if err != nil {
		return fantasy.MatchStat{}, fmt.Errorf("build insert match stat query: %w", err)
	}
	if err := r.db.GetContext(ctx, &stat.ID, query, args...); err != nil {
		return fantasy.MatchStat{}, fmt.Errorf("insert match stat %d: %w", stat.MatchNo, err)
	}
	return stat, nil
}

func (r *MatchStatRepository) Update(ctx context.Context, stat fantasy.MatchStat) (fantasy.MatchStat, error) {
	query, args, err := qb.Update(matchStatsTable).
		Set("highest_scorer_id", stat.HighestScorerID).
		Set("highest_score", stat.HighestScore).
		Set("average_score", stat.AverageScore).
		Set("total_participants", stat.TotalParticipants).
		Set("match_date", stat.MatchDate).
		Set("match_details", stat.MatchDetails).
		Set("match_status", string(stat.MatchStatus)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", stat.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fantasy.MatchStat{}, fmt.Errorf("build update match stat query: %w", err)
	}
	if err := execOne(ctx, r.db, query, args); err != nil {
		return fantasy.MatchStat{}, fmt.Errorf("update match stat %s: %w", stat.ID, err)
	}
	return stat, nil
}
