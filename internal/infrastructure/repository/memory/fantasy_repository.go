package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
)

type PointRepository struct {
	rows *table[fantasy.PointEntry]
}

func NewPointRepository(idGen id.Generator) *PointRepository {
	return &PointRepository{rows: newTable[fantasy.PointEntry](idGen)}
}

func (r *PointRepository) List(_ context.Context) ([]fantasy.PointEntry, error) {
	return r.rows.list(nil), nil
}

func (r *PointRepository) ListByMatch(_ context.Context, matchNo int) ([]fantasy.PointEntry, error) {
	return r.rows.list(func(e fantasy.PointEntry) bool { return e.MatchNo == matchNo }), nil
}

func (r *PointRepository) Create(_ context.Context, entry fantasy.PointEntry) (fantasy.PointEntry, error) {
	for _, existing := range r.rows.list(nil) {
		if existing.MatchNo == entry.MatchNo && existing.UserID == entry.UserID {
			return fantasy.PointEntry{}, fmt.Errorf("create fantasy point %s: duplicate match user", entry.MatchUserIndex)
		}
	}
	return r.rows.create(func(publicID string) fantasy.PointEntry {
		entry.ID = publicID
		return entry
	})
}

func (r *PointRepository) Delete(_ context.Context, publicID string) error {
	if !r.rows.delete(publicID) {
		return fmt.Errorf("delete fantasy point %s: not found", publicID)
	}
	return nil
}

func (r *PointRepository) Len() int {
	return r.rows.len()
}

type UserRepository struct {
	rows *table[fantasy.UserAggregate]
}

func NewUserRepository(idGen id.Generator) *UserRepository {
	return &UserRepository{rows: newTable[fantasy.UserAggregate](idGen)}
}

func (r *UserRepository) List(_ context.Context) ([]fantasy.UserAggregate, error) {
	return r.rows.list(nil), nil
}

func (r *UserRepository) ListByUserID(_ context.Context, userID int) ([]fantasy.UserAggregate, error) {
	return r.rows.list(func(u fantasy.UserAggregate) bool { return u.UserID == userID }), nil
}

func (r *UserRepository) Create(_ context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	return r.rows.create(func(publicID string) fantasy.UserAggregate {
		user.ID = publicID
		return user
	})
}

func (r *UserRepository) Update(_ context.Context, user fantasy.UserAggregate) (fantasy.UserAggregate, error) {
	if !r.rows.update(user.ID, user) {
		return fantasy.UserAggregate{}, fmt.Errorf("update fantasy user %s: not found", user.ID)
	}
	return user, nil
}

type MatchStatRepository struct {
	rows *table[fantasy.MatchStat]
}

func NewMatchStatRepository(idGen id.Generator) *MatchStatRepository {
	return &MatchStatRepository{rows: newTable[fantasy.MatchStat](idGen)}
}

func (r *MatchStatRepository) List(_ context.Context) ([]fantasy.MatchStat, error) {
	return r.rows.list(nil), nil
}

func (r *MatchStatRepository) ListByMatch(_ context.Context, matchNo int) ([]fantasy.MatchStat, error) {
	return r.rows.list(func(s fantasy.MatchStat) bool { return s.MatchNo == matchNo }), nil
}

func (r *MatchStatRepository) Create(_ context.Context, stat fantasy.MatchStat) (fantasy.MatchStat, error) {
	return r.rows.create(func(publicID string) fantasy.MatchStat {
		stat.ID = publicID
		return stat
	})
}

func (r *MatchStatRepository) Update(_ context.Context, stat fantasy.MatchStat) (fantasy.MatchStat, error) {
	if !r.rows.update(stat.ID, stat) {
		return fantasy.MatchStat{}, fmt.Errorf("update match stat %s: not found", stat.ID)
	}
	return stat, nil
}
