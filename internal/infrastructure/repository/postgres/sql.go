package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/querybuilder"
)

var errNoRows = errors.New("no rows affected")

// softDelete marks the live row with the given public id as deleted.
func softDelete(ctx context.Context, db sqlx.ExecerContext, table, publicID string) error {
	query, args, err := qb.Update(table).
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("public_id", publicID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete %s query: %w", table, err)
	}
	return execOne(ctx, db, query, args)
}

// execOne runs a statement that must touch at least one row.
func execOne(ctx context.Context, db sqlx.ExecerContext, query string, args []any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return errNoRows
	}
	return nil
}
