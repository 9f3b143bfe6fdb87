package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
)

// PostCriteria selects and orders posts. Zero-valued fields do not filter.
type PostCriteria struct {
	ID          string
	IDs         []string
	AuthorID    string
	NewestFirst bool
	Limit       int
}

// PostRepository defines the interface for content storage.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	Find(ctx context.Context, criteria PostCriteria) ([]entity.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}
