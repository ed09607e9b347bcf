package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
)

type NoteService struct {
	repo note.Repository
}

func NewNoteService(repo note.Repository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) List(ctx context.Context) ([]note.Note, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NoteService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list notes: %v", ErrDependencyUnavailable, err)
	}
	return items, nil
}

func (s *NoteService) Create(ctx context.Context, content string) (note.Note, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NoteService.Create")
	defer span.End()

	content, err := note.NormalizeContent(content)
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	created, err := s.repo.Create(ctx, note.Note{Content: content})
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: create note: %v", ErrDependencyUnavailable, err)
	}
	return created, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NoteService.Delete")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: note id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return fmt.Errorf("%w: note %s", ErrNotFound, id)
		}
		return fmt.Errorf("%w: delete note: %v", ErrDependencyUnavailable, err)
	}
	return nil
}
