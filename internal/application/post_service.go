package application

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

// PostIndex is an optional full-text index over posts.
type PostIndex interface {
	Index(ctx context.Context, p *entity.Post) error
	Search(ctx context.Context, q string, size int) ([]string, error)
}

type PostService struct {
	Repo   repo.PostRepository
	Users  repo.UserRepository
	Query  *PostQuery
	Index  PostIndex
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, index PostIndex, logger *logrus.Logger, avatarSize int) *PostService {
	return &PostService{
		Repo:   posts,
		Users:  users,
		Query:  NewPostQuery(posts, users, logger, avatarSize),
		Index:  index,
		Logger: logger,
		Now:    time.Now,
	}
}

func (s *PostService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Create stores a post for an already authenticated author.
func (s *PostService) Create(ctx context.Context, in PostInput, authorID string) error {
	a := NormalizePost(in)
	p := &entity.Post{
		Title:     a.Title,
		Body:      a.Body,
		CreatedAt: s.now(),
		AuthorID:  authorID,
	}
	if err := ValidatePost(a); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("author_id", authorID).Error("create post failed")
		}
		return persistence("create post", err)
	}

	if s.Index != nil {
		if err := s.Index.Index(ctx, p); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("post index failed")
		}
	}
	return nil
}

// FindByID returns one aggregated post. A malformed id is ErrNotFound without
// touching the store.
func (s *PostService) FindByID(ctx context.Context, id, viewerID string) (*entity.AggregatedPost, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	posts, err := s.Query.Run(ctx, repo.PostCriteria{ID: parsed.String(), Limit: 1}, viewerID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNotFound
	}
	return &posts[0], nil
}

// FindByAuthor returns the author's posts newest first; an author without
// posts, or a malformed author id, gets an empty slice.
func (s *PostService) FindByAuthor(ctx context.Context, authorID, viewerID string) ([]entity.AggregatedPost, error) {
	parsed, err := uuid.Parse(authorID)
	if err != nil {
		return []entity.AggregatedPost{}, nil
	}
	return s.Query.Run(ctx, repo.PostCriteria{AuthorID: parsed.String(), NewestFirst: true}, viewerID)
}

// FindByAuthorUsername resolves the author first; an unknown username is ErrNotFound.
func (s *PostService) FindByAuthorUsername(ctx context.Context, username, viewerID string) ([]entity.AggregatedPost, error) {
	u, err := s.Users.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("find author", err)
	}
	return s.FindByAuthor(ctx, u.ID, viewerID)
}

// Search runs q against the index and returns hits in relevance order.
// Without an index it returns an empty result.
func (s *PostService) Search(ctx context.Context, q, viewerID string, size int) ([]entity.AggregatedPost, error) {
	q = strings.TrimSpace(q)
	if s.Index == nil || q == "" {
		return []entity.AggregatedPost{}, nil
	}
	hits, err := s.Index.Search(ctx, q, size)
	if err != nil {
		return nil, persistence("search posts", err)
	}
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		if parsed, pErr := uuid.Parse(h); pErr == nil {
			ids = append(ids, parsed.String())
		}
	}
	if len(ids) == 0 {
		return []entity.AggregatedPost{}, nil
	}
	posts, err := s.Query.Run(ctx, repo.PostCriteria{IDs: ids}, viewerID)
	if err != nil {
		return nil, err
	}
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	sort.SliceStable(posts, func(i, j int) bool { return rank[posts[i].ID] < rank[posts[j].ID] })
	return posts, nil
}
