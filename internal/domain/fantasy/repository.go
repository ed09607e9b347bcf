package fantasy

import "context"

// PointRepository is the remote FantasyPoint collection.
type PointRepository interface {
	List(ctx context.Context) ([]PointEntry, error)
	ListByMatch(ctx context.Context, matchNo int) ([]PointEntry, error)
	Create(ctx context.Context, entry PointEntry) (PointEntry, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository is the remote FantasyUser collection.
type UserRepository interface {
	List(ctx context.Context) ([]UserAggregate, error)
	ListByUserID(ctx context.Context, userID int) ([]UserAggregate, error)
	Create(ctx context.Context, user UserAggregate) (UserAggregate, error)
	Update(ctx context.Context, user UserAggregate) (UserAggregate, error)
}

// MatchStatRepository is the remote MatchStat collection.
type MatchStatRepository interface {
	List(ctx context.Context) ([]MatchStat, error)
	ListByMatch(ctx context.Context, matchNo int) ([]MatchStat, error)
	Create(ctx context.Context, stat MatchStat) (MatchStat, error)
	Update(ctx context.Context, stat MatchStat) (MatchStat, error)
}
