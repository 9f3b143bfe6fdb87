package repository

import "context"

// FollowRepository is the read side of the social graph used by profile pages.
type FollowRepository interface {
	IsFollowing(ctx context.Context, targetID, viewerID string) (bool, error)
	CountFollowers(ctx context.Context, targetID string) (int64, error)
	CountFollowing(ctx context.Context, targetID string) (int64, error)
}
