package repository

import (
	"context"
	"errors"

	"github.com/quickpost/publisher/internal/publication"
)

var ErrNotFound = errors.New("publication not found")

// Repository stores the publication log. List returns newest first.
type Repository interface {
	Create(ctx context.Context, p *publication.Publication) error
	Get(ctx context.Context, id string) (*publication.Publication, error)
	List(ctx context.Context, limit int) ([]*publication.Publication, error)
}
