package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
	qb "github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/querybuilder"
)

const pointsTable = "fantasy_points"

type PointRepository struct {
	db    *sqlx.DB
	idGen id.Generator
}

func NewPointRepository(db *sqlx.DB, idGen id.Generator) *PointRepository {
	return &PointRepository{db: db, idGen: idGen}
}

func (r *PointRepository) List(ctx context.Context) ([]fantasy.PointEntry, error) {
	return r.list(ctx)
}

func (r *PointRepository) ListByMatch(ctx context.Context, matchNo int) ([]fantasy.PointEntry, error) {
	return r.list(ctx, qb.Eq("match_no", matchNo))
}

func (r *PointRepository) list(ctx context.Context, conds ...qb.Condition) ([]fantasy.PointEntry, error) {
	query, args, err := qb.Select("*").From(pointsTable).
		Where(append(conds, qb.IsNull("deleted_at"))...).
		OrderBy("match_no", "relative_rank", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fantasy points query: %w", err)
	}

	var rows []pointTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fantasy points: %w", err)
	}

	out := make([]fantasy.PointEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PointRepository) Create(ctx context.Context, entry fantasy.PointEntry) (fantasy.PointEntry, error) {
	publicID, err := r.idGen.NewID()
	if err != nil {
		return fantasy.PointEntry{}, fmt.Errorf("generate fantasy point id: %w", err)
	}

	query, args, err := qb.InsertModel(pointsTable, pointModelFromDomain(publicID, entry), "RETURNING public_id")
	if err != nil {
		return fantasy.PointEntry{}, fmt.Errorf("build insert fantasy point query: %w", err)
	}
	if err := r.db.GetContext(ctx, &entry.ID, query, args...); err != nil {
		return fantasy.PointEntry{}, fmt.Errorf("insert fantasy point %s: %w", entry.MatchUserIndex, err)
	}
	return entry, nil
}

func (r *PointRepository) Delete(ctx context.Context, publicID string) error {
	if err := softDelete(ctx, r.db, pointsTable, publicID); err != nil {
		return fmt.Errorf("delete fantasy point %s: %w", publicID, err)
	}
	return nil
}
