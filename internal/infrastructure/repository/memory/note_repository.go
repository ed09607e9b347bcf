package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
)

type NoteRepository struct {
	rows *table[note.Note]
	now  func() time.Time
}

func NewNoteRepository(idGen id.Generator) *NoteRepository {
	return &NoteRepository{rows: newTable[note.Note](idGen), now: time.Now}
}

// List returns notes newest first.
func (r *NoteRepository) List(_ context.Context) ([]note.Note, error) {
	items := r.rows.list(nil)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, nil
}

func (r *NoteRepository) Create(_ context.Context, n note.Note) (note.Note, error) {
	now := r.now().UTC()
	return r.rows.create(func(publicID string) note.Note {
		n.ID = publicID
		n.CreatedAt = now
		n.UpdatedAt = now
		return n
	})
}

func (r *NoteRepository) Delete(_ context.Context, publicID string) error {
	if !r.rows.delete(publicID) {
		return fmt.Errorf("delete note %s: %w", publicID, note.ErrNotFound)
	}
	return nil
}
