package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/note"
	basecache "github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/cache"
)

const (
	pointPrefix     = "point:"
	userPrefix      = "user:"
	matchStatPrefix = "match_stat:"
	notePrefix      = "note:"
)

func loadSlice[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

type PointRepository struct {
	next  fantasy.PointRepository
	cache *basecache.Store
}

func NewPointRepository(next fantasy.PointRepository, cache *basecache.Store) *PointRepository {
	return &PointRepository{next: next, cache: cache}
}

func (r *PointRepository) List(ctx context.Context) ([]fantasy.PointEntry, error) {
	return loadSlice(ctx, r.cache, pointPrefix+"list", r.next.List)
}

func (r *PointRepository) ListByMatch(ctx context.Context, matchNo int) ([]fantasy.PointEntry, error) {
	return loadSlice(ctx, r.cache, pointPrefix+"match:"+strconv.Itoa(matchNo), func(ctx context.Context) ([]fantasy.PointEntry, error) {
		return r.next.ListByMatch(ctx, matchNo)
	})
}

func (r *PointRepository) Create(ctx context.Context, entry fantasy.PointEntry) (fantasy.PointEntry, error) {
	defer r.cache.DeletePrefix(ctx, pointPrefix)
	return r.next.Create(ctx, entry)
}

func (r *PointRepository) Delete(ctx context.Context, publicID string) error {
	defer r.cache.DeletePrefix(ctx, pointPrefix)
	return r.next.Delete(ctx, publicID)
}

type UserRepository struct {
	next  fantasy.UserRepository
	cache *basecache.Store
}

func NewUserRepository(next fantasy.UserRepository, cache *basecache.Store) *UserRepository {
	return &UserRepository{next: next, cache: cache}
}

func (r *UserRepository) List(ctx context.Context) ([]fantasy.UserAggregate, error) {
	return loadSlice(ctx, r.cache, userPrefix+"list", r.next.List)
}

func (r *UserRepository) ListByUserID(ctx context.Context, userID int) ([]fantasy.UserAggregate, error) {
	return loadSlice(ctx, r.cache, userPrefix+"id:"+strconv.Itoa(userID), func(ctx context.Context) ([]fantasy.UserAggregate, error) {
		return r.next.ListByUserID(ctx, userID)
	})
}

func (r *UserRepository) Create(ctx context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	defer r.cache.DeletePrefix(ctx, userPrefix)
	return r.next.Create(ctx, user)
}

func (r *UserRepository) Update(ctx context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	defer r.cache.DeletePrefix(ctx, userPrefix)
	return r.next.Update(ctx, user)
}

type MatchStatRepository struct {
	next  fantasy.MatchStatRepository
	cache *basecache.Store
}

func NewMatchStatRepository(next fantasy.MatchStatRepository, cache *basecache.Store) *MatchStatRepository {
	return &MatchStatRepository{next: next, cache: cache}
}

func (r *MatchStatRepository) List(ctx context.Context) ([]fantasy.MatchStat, error) {
	return loadSlice(ctx, r.cache, matchStatPrefix+"list", r.next.List)
}

func (r *MatchStatRepository) ListByMatch(ctx context.Context, matchNo int) ([]fantasy.MatchStat, error) {
	return loadSlice(ctx, r.cache, matchStatPrefix+"match:"+strconv.Itoa(matchNo), func(ctx context.Context) ([]fantasy.MatchStat, error) {
		return r.next.ListByMatch(ctx, matchNo)
	})
}

func (r *MatchStatRepository) Create(ctx context.Context, stat fantasy.MatchStat) (fantasy.MatchStat, error) {
	defer r.cache.DeletePrefix(ctx, matchStatPrefix)
	return r.next.Create(ctx, stat)
}

func (r *MatchStatRepository) Update(ctx context.Context, stat fantasy.MatchStat) (fantasy.MatchStat, error) {
	defer r.cache.DeletePrefix(ctx, matchStatPrefix)
	return r.next.Update(ctx, stat)
}

type NoteRepository struct {
	next  note.Repository
	cache *basecache.Store
}

func NewNoteRepository(next note.Repository, cache *basecache.Store) *NoteRepository {
	return &NoteRepository{next: next, cache: cache}
}

func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	return loadSlice(ctx, r.cache, notePrefix+"list", r.next.List)
}

func (r *NoteRepository) Create(ctx context.Context, n note.Note) (note.Note, error) {
	defer r.cache.DeletePrefix(ctx, notePrefix)
	return r.next.Create(ctx, n)
}

func (r *NoteRepository) Delete(ctx context.Context, publicID string) error {
	defer r.cache.DeletePrefix(ctx, notePrefix)
	return r.next.Delete(ctx, publicID)
}
