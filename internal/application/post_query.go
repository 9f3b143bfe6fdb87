package application

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

// PostQuery is the single read pipeline behind every surface that returns
// posts: select, join each post to its author, project, then redact the
// author down to a PublicUser and set the ownership flag.
type PostQuery struct {
	Posts      repo.PostRepository
	Users      repo.UserRepository
	Logger     *logrus.Logger
	AvatarSize int
}

func NewPostQuery(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger, avatarSize int) *PostQuery {
	return &PostQuery{Posts: posts, Users: users, Logger: logger, AvatarSize: avatarSize}
}

// Run returns the aggregated posts matching criteria, in repository order.
// An empty viewerID is an anonymous viewer.
func (q *PostQuery) Run(ctx context.Context, criteria repo.PostCriteria, viewerID string) ([]entity.AggregatedPost, error) {
	posts, err := q.Posts.Find(ctx, criteria)
	if err != nil {
		return nil, persistence("find posts", err)
	}
	authors, err := q.joinAuthors(ctx, posts)
	if err != nil {
		return nil, persistence("join authors", err)
	}

	out := make([]entity.AggregatedPost, 0, len(posts))
	for _, p := range posts {
		author, ok := authors[p.AuthorID]
		if !ok {
			if q.Logger != nil {
				q.Logger.WithFields(logrus.Fields{"post_id": p.ID, "author_id": p.AuthorID}).Warn("post author missing; skipped")
			}
			continue
		}
		out = append(out, q.project(p, author, viewerID))
	}
	return out, nil
}

func (q *PostQuery) project(p entity.Post, author *entity.User, viewerID string) entity.AggregatedPost {
	return entity.AggregatedPost{
		ID:              p.ID,
		Title:           p.Title,
		Body:            p.Body,
		CreatedAt:       p.CreatedAt,
		Author:          PublicIdentity(author, q.AvatarSize),
		IsOwnedByViewer: viewerID != "" && author.ID == viewerID,
	}
}

// joinAuthors looks up each distinct author once. Authors that no longer
// exist are left out of the map.
func (q *PostQuery) joinAuthors(ctx context.Context, posts []entity.Post) (map[string]*entity.User, error) {
	authors := make(map[string]*entity.User)
	if len(posts) == 0 {
		return authors, nil
	}

	seen := make(map[string]struct{})
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, p := range posts {
		if _, dup := seen[p.AuthorID]; dup {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		authorID := p.AuthorID
		g.Go(func() error {
			u, err := q.Users.GetByID(gctx, authorID)
			if errors.Is(err, repo.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			authors[authorID] = u
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return authors, nil
}
