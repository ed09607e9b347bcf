package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
)

func TestPointRepository_CreateListDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPointRepository(id.NewRandomGenerator("pt_"))

	first, err := repo.Create(ctx, fantasy.PointEntry{MatchNo: 1, UserID: 1, Points: 50, MatchUserIndex: "1:1"})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}
	if _, err := repo.Create(ctx, fantasy.PointEntry{MatchNo: 2, UserID: 1, Points: 20, MatchUserIndex: "2:1"}); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if _, err := repo.Create(ctx, fantasy.PointEntry{MatchNo: 1, UserID: 1, Points: 99, MatchUserIndex: "1:1"}); err == nil {
		t.Fatalf("expected duplicate match user to be rejected")
	}

	byMatch, err := repo.ListByMatch(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(byMatch) != 1 || byMatch[0].Points != 50 {
		t.Fatalf("unexpected match rows: %+v", byMatch)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); err == nil {
		t.Fatalf("expected second delete to fail")
	}
	if got := repo.Len(); got != 1 {
		t.Fatalf("unexpected row count: got=%d want=1", got)
	}
}

func TestUserRepository_UpdateRequiresExistingID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(id.NewRandomGenerator("usr_"))

	if _, err := repo.Update(ctx, fantasy.UserAggregate{ID: "missing", UserID: 1}); err == nil {
		t.Fatalf("expected update of unknown id to fail")
	}

	created, err := repo.Create(ctx, fantasy.UserAggregate{UserID: 3, TeamName: "JUSTIN CHALLENGERS"})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	created.TotalPoints = 88
	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}

	rows, _ := repo.ListByUserID(ctx, 3)
	if len(rows) != 1 || rows[0].TotalPoints != 88 {
		t.Fatalf("unexpected rows after update: %+v", rows)
	}
}

func TestNoteRepository_NewestFirstAndNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewNoteRepository(id.NewRandomGenerator("note_"))

	for _, content := range []string{"first", "second"} {
		if _, err := repo.Create(ctx, note.Note{Content: content}); err != nil {
			t.Fatalf("unexpected create error: %v", err)
		}
	}

	items, _ := repo.List(ctx)
	if len(items) != 2 || items[0].Content != "second" {
		t.Fatalf("unexpected note order: %+v", items)
	}

	if err := repo.Delete(ctx, "note_missing"); !errors.Is(err, note.ErrNotFound) {
		t.Fatalf("unexpected delete error: got=%v want=%v", err, note.ErrNotFound)
	}
}
