package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
	qb "github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/querybuilder"
)

const notesTable = "notes"

type noteTableModel struct {
	ID        int64      `db:"id,readonly"`
	PublicID  string     `db:"public_id"`
	Content   string     `db:"content"`
	CreatedAt time.Time  `db:"created_at,readonly"`
	UpdatedAt time.Time  `db:"updated_at,readonly"`
	DeletedAt *time.Time `db:"deleted_at,readonly"`
}

type NoteRepository struct {
	db    *sqlx.DB
	idGen id.Generator
}

func NewNoteRepository(db *sqlx.DB, idGen id.Generator) *NoteRepository {
	return &NoteRepository{db: db, idGen: idGen}
}

func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	query, args, err := qb.Select("*").From(notesTable).
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select notes query: %w", err)
	}

	var rows []noteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}

	out := make([]note.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, note.Note{
			ID:        row.PublicID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return out, nil
}

func (r *NoteRepository) Create(ctx context.Context, n note.Note) (note.Note, error) {
	publicID, err := r.idGen.NewID()
	if err != nil {
		return note.Note{}, fmt.Errorf("generate note id: %w", err)
	}

	query, args, err := qb.InsertModel(notesTable, noteTableModel{PublicID: publicID, Content: n.Content}, "RETURNING *")
	if err != nil {
		return note.Note{}, fmt.Errorf("build insert note query: %w", err)
	}

	var row noteTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return note.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return note.Note{
		ID:        row.PublicID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *NoteRepository) Delete(ctx context.Context, publicID string) error {
	if err := softDelete(ctx, r.db, notesTable, publicID); err != nil {
		if errors.Is(err, errNoRows) {
			return fmt.Errorf("delete note %s: %w", publicID, note.ErrNotFound)
		}
		return fmt.Errorf("delete note %s: %w", publicID, err)
	}
	return nil
}
