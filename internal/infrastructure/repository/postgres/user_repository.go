package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
	qb "github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/querybuilder"
)

const usersTable = "fantasy_users"

type UserRepository struct {
	db    *sqlx.DB
	idGen id.Generator
}

func NewUserRepository(db *sqlx.DB, idGen id.Generator) *UserRepository {
	return &UserRepository{db: db, idGen: idGen}
}

func (r *UserRepository) List(ctx context.Context) ([]fantasy.UserAggregate, error) {
	return r.list(ctx)
}

func (r *UserRepository) ListByUserID(ctx context.Context, userID int) ([]fantasy.UserAggregate, error) {
	return r.list(ctx, qb.Eq("user_id", userID))
}

func (r *UserRepository) list(ctx context.Context, conds ...qb.Condition) ([]fantasy.UserAggregate, error) {
	query, args, err := qb.Select("*").From(usersTable).
		Where(append(conds, qb.IsNull("deleted_at"))...).
		OrderBy("total_points DESC", "user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fantasy users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fantasy users: %w", err)
	}

	out := make([]fantasy.UserAggregate, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	publicID, err := r.idGen.NewID()
	if err != nil {
		return fantasy.UserAggregate{}, fmt.Errorf("generate fantasy user id: %w", err)
	}

	query, args, err := qb.InsertModel(usersTable, userModelFromDomain(publicID, user), "RETURNING public_id")
	if err != nil {
		return fantasy.UserAggregate{}, fmt.Errorf("build insert fantasy user query: %w", err)
	}
	if err := r.db.GetContext(ctx, &user.ID, query, args...); err != nil {
		return fantasy.UserAggregate{}, fmt.Errorf("insert fantasy user %d: %w", user.UserID, err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	query, args, err := qb.Update(usersTable).
		Set("team_name", user.TeamName).
		Set("total_points", user.TotalPoints).
		Set("matches_played", user.MatchesPlayed).
		Set("highest_score", user.HighestScore).
		Set("average_score", user.AverageScore).
		Set("last_match_points", user.LastMatchPoints).
		Set("last_match_no", user.LastMatchNo).
		Set("position_change", user.PositionChange).
		Set("last_position", user.LastPosition).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", user.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fantasy.UserAggregate{}, fmt.Errorf("build update fantasy user query: %w", err)
	}
	if err := execOne(ctx, r.db, query, args); err != nil {
		return fantasy.UserAggregate{}, fmt.Errorf("update fantasy user %s: %w", user.ID, err)
	}
	return user, nil
}
