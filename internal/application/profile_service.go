package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

type ProfileService struct {
	Users      repo.UserRepository
	Posts      repo.PostRepository
	Follows    repo.FollowRepository
	Logger     *logrus.Logger
	AvatarSize int
}

func NewProfileService(users repo.UserRepository, posts repo.PostRepository, follows repo.FollowRepository, logger *logrus.Logger, avatarSize int) *ProfileService {
	return &ProfileService{Users: users, Posts: posts, Follows: follows, Logger: logger, AvatarSize: avatarSize}
}

// Build resolves username and gathers the follow flag and the three counters
// concurrently. Any failing branch fails the whole profile.
func (s *ProfileService) Build(ctx context.Context, username, viewerID string) (*entity.Profile, error) {
	u, err := s.Users.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("find profile user", err)
	}

	p := &entity.Profile{
		ID:              u.ID,
		Username:        u.Username,
		Avatar:          AvatarURL(u.Email, s.AvatarSize),
		IsViewerProfile: viewerID != "" && viewerID == u.ID,
	}

	g, gctx := errgroup.WithContext(ctx)
	if viewerID != "" {
		g.Go(func() (err error) {
			p.IsFollowing, err = s.Follows.IsFollowing(gctx, u.ID, viewerID)
			return err
		})
	}
	g.Go(func() (err error) {
		p.Counts.Posts, err = s.Posts.CountByAuthor(gctx, u.ID)
		return err
	})
	g.Go(func() (err error) {
		p.Counts.Followers, err = s.Follows.CountFollowers(gctx, u.ID)
		return err
	})
	g.Go(func() (err error) {
		p.Counts.Following, err = s.Follows.CountFollowing(gctx, u.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("profile", u.Username).Error("profile composition failed")
		}
		return nil, persistence("build profile", err)
	}
	return p, nil
}
