package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

// FollowRepository reads the follows table. Writes belong to the social
// graph service.
type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

func (r *FollowRepository) IsFollowing(ctx context.Context, targetID, viewerID string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM follows WHERE followed_id = $1 AND follower_id = $2)
	`, targetID, viewerID).Scan(&ok)
	return ok, err
}

func (r *FollowRepository) CountFollowers(ctx context.Context, targetID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM follows WHERE followed_id = $1`, targetID).Scan(&n)
	return n, err
}

func (r *FollowRepository) CountFollowing(ctx context.Context, targetID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM follows WHERE follower_id = $1`, targetID).Scan(&n)
	return n, err
}

var _ repository.FollowRepository = (*FollowRepository)(nil)
