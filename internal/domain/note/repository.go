package note

import "context"

// Repository is the remote Note collection.
type Repository interface {
	List(ctx context.Context) ([]Note, error)
	Create(ctx context.Context, n Note) (Note, error)
	Delete(ctx context.Context, id string) error
}
