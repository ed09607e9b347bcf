package datastore

import (
	"context"
	"net/url"
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
)

type PointRepository struct{ client *Client }

func NewPointRepository(client *Client) *PointRepository {
	return &PointRepository{client: client}
}

func (r *PointRepository) List(ctx context.Context) ([]fantasy.PointEntry, error) {
	return list[fantasy.PointEntry](ctx, r.client, KindFantasyPoint, nil)
}

func (r *PointRepository) ListByMatch(ctx context.Context, matchNo int) ([]fantasy.PointEntry, error) {
	return list[fantasy.PointEntry](ctx, r.client, KindFantasyPoint, url.Values{"matchNo": {strconv.Itoa(matchNo)}})
}

func (r *PointRepository) Create(ctx context.Context, entry fantasy.PointEntry) (fantasy.PointEntry, error) {
	entry.ID = ""
	return create[fantasy.PointEntry](ctx, r.client, KindFantasyPoint, entry)
}

func (r *PointRepository) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, KindFantasyPoint, id)
}

type UserRepository struct{ client *Client }

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) List(ctx context.Context) ([]fantasy.UserAggregate, error) {
	return list[fantasy.UserAggregate](ctx, r.client, KindFantasyUser, nil)
}

func (r *UserRepository) ListByUserID(ctx context.Context, userID int) ([]fantasy.UserAggregate, error) {
	return list[fantasy.UserAggregate](ctx, r.client, KindFantasyUser, url.Values{"user_id": {strconv.Itoa(userID)}})
}

func (r *UserRepository) Create(ctx context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	user.ID = ""
	return create[fantasy.UserAggregate](ctx, r.client, KindFantasyUser, user)
}

func (r *UserRepository) Update(ctx context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	return update[fantasy.UserAggregate](ctx, r.client, KindFantasyUser, user.ID, user)
}

type MatchStatRepository struct{ client *Client }

func NewMatchStatRepository(client *Client) *MatchStatRepository {
	return &MatchStatRepository{client: client}
}

func (r *MatchStatRepository) List(ctx context.Context) ([]fantasy.MatchStat, error) {
	return list[fantasy.MatchStat](ctx, r.client, KindMatchStat, nil)
}

func (r *MatchStatRepository) ListByMatch(ctx context.Context, matchNo int) ([]fantasy.MatchStat, error) {
	return list[fantasy.MatchStat](ctx, r.client, KindMatchStat, url.Values{"matchNo": {strconv.Itoa(matchNo)}})
}

func (r *MatchStatRepository) Create(ctx context.Context, stat fantasy.MatchStat) (fantasy.MatchStat, error) {
	stat.ID = ""
	return create[fantasy.MatchStat](ctx, r.client, KindMatchStat, stat)
}

func (r *MatchStatRepository) Update(ctx context.Context, stat fantasy.MatchStat) (fantasy.MatchStat, error) {
	return update[fantasy.MatchStat](ctx, r.client, KindMatchStat, stat.ID, stat)
}

type NoteRepository struct{ client *Client }

func NewNoteRepository(client *Client) *NoteRepository {
	return &NoteRepository{client: client}
}

func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	return list[note.Note](ctx, r.client, KindNote, nil)
}

func (r *NoteRepository) Create(ctx context.Context, n note.Note) (note.Note, error) {
	return create[note.Note](ctx, r.client, KindNote, map[string]string{"content": n.Content})
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	err := r.client.delete(ctx, KindNote, id)
	if crerr.Is(err, ErrNotFound) {
		return crerr.Wrapf(note.ErrNotFound, "delete note %s", id)
	}
	return err
}
