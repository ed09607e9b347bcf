package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
	notemock "github.com/riskibarqy/ipl-fantasy-tracker/internal/mocks/domain/note"
)

func TestNoteService_CreateTrimsContent(t *testing.T) {
	t.Parallel()

	repo := notemock.NewRepository(t)
	repo.On("Create", mock.Anything, note.Note{Content: "recheck match 4"}).
		Return(note.Note{ID: "note_1", Content: "recheck match 4"}, nil).
		Once()

	got, err := NewNoteService(repo).Create(context.Background(), "  recheck match 4 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "note_1" {
		t.Fatalf("unexpected note id: got=%s want=note_1", got.ID)
	}
}

func TestNoteService_CreateRejectsBlank(t *testing.T) {
	t.Parallel()

	repo := notemock.NewRepository(t)
	_, err := NewNoteService(repo).Create(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrInvalidInput)
	}
}

func TestNoteService_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "not found", repoErr: fmt.Errorf("delete: %w", note.ErrNotFound), want: ErrNotFound},
		{name: "remote down", repoErr: errors.New("connection reset"), want: ErrDependencyUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := notemock.NewRepository(t)
			repo.On("Delete", mock.Anything, "note_1").Return(tc.repoErr).Once()

			err := NewNoteService(repo).Delete(context.Background(), " note_1 ")
			if !errors.Is(err, tc.want) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tc.want)
			}
		})
	}
}

func TestNoteService_ListUnavailable(t *testing.T) {
	t.Parallel()

	repo := notemock.NewRepository(t)
	repo.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()

	if _, err := NewNoteService(repo).List(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrDependencyUnavailable)
	}
}
