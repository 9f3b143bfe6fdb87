package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

var errStoreDown = errors.New("connection refused")

type fakeUsers struct {
	mu    sync.Mutex
	byID  map[string]*entity.User
	calls atomic.Int32

	// Injected faults.
	createErr error
	lookupErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*entity.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	f.calls.Add(1)
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Username, u.Username) {
			return repo.ErrDuplicateUsername
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return repo.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) add(username, email string) *entity.User {
	u := &entity.User{ID: uuid.NewString(), Username: username, Email: email, PasswordHash: "digest:" + username}
	f.mu.Lock()
	f.byID[u.ID] = u
	f.mu.Unlock()
	return u
}

func (f *fakeUsers) find(match func(*entity.User) bool) (*entity.User, error) {
	f.calls.Add(1)
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.find(func(u *entity.User) bool { return u.ID == id })
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.find(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) })
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *fakeUsers) stored() []*entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out
}

type fakePosts struct {
	mu       sync.Mutex
	posts    []entity.Post
	calls    atomic.Int32
	criteria []repo.PostCriteria

	createErr error
	findErr   error
	countErr  error
}

func (f *fakePosts) Create(_ context.Context, p *entity.Post) error {
	f.calls.Add(1)
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = uuid.NewString()
	f.mu.Lock()
	f.posts = append(f.posts, *p)
	f.mu.Unlock()
	return nil
}

func (f *fakePosts) add(authorID, title string, at time.Time) entity.Post {
	p := entity.Post{ID: uuid.NewString(), Title: title, Body: title + " body", CreatedAt: at, AuthorID: authorID}
	f.mu.Lock()
	f.posts = append(f.posts, p)
	f.mu.Unlock()
	return p
}

func (f *fakePosts) Find(_ context.Context, c repo.PostCriteria) ([]entity.Post, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria = append(f.criteria, c)
	if f.findErr != nil {
		return nil, f.findErr
	}
	ids := map[string]bool{}
	for _, id := range c.IDs {
		ids[id] = true
	}
	var out []entity.Post
	for _, p := range f.posts {
		if c.ID != "" && p.ID != c.ID {
			continue
		}
		if len(c.IDs) > 0 && !ids[p.ID] {
			continue
		}
		if c.AuthorID != "" && p.AuthorID != c.AuthorID {
			continue
		}
		out = append(out, p)
	}
	if c.NewestFirst {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	if c.Limit > 0 && len(out) > c.Limit {
		out = out[:c.Limit]
	}
	return out, nil
}

func (f *fakePosts) CountByAuthor(_ context.Context, authorID string) (int64, error) {
	f.calls.Add(1)
	if f.countErr != nil {
		return 0, f.countErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

type fakeFollows struct {
	following map[[2]string]bool // {target, viewer}
	followers map[string]int64
	followees map[string]int64
	checks    atomic.Int32
	err       error
}

func (f *fakeFollows) IsFollowing(_ context.Context, targetID, viewerID string) (bool, error) {
	f.checks.Add(1)
	if f.err != nil {
		return false, f.err
	}
	return f.following[[2]string{targetID, viewerID}], nil
}

func (f *fakeFollows) CountFollowers(_ context.Context, targetID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.followers[targetID], nil
}

func (f *fakeFollows) CountFollowing(_ context.Context, targetID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.followees[targetID], nil
}

// fakeHasher salts with a counter so equal inputs produce different digests.
type fakeHasher struct {
	n   atomic.Int32
	err error
}

func (h *fakeHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return fmt.Sprintf("salt%d$%x", h.n.Add(1), plain), nil
}

func (h *fakeHasher) Verify(plain, digest string) bool {
	_, hashed, ok := strings.Cut(digest, "$")
	return ok && hashed == fmt.Sprintf("%x", plain)
}

type recordingNotifier struct {
	mu    sync.Mutex
	users []RegisteredUser
	err   error
}

func (n *recordingNotifier) UserRegistered(_ context.Context, u RegisteredUser, _ string) error {
	n.mu.Lock()
	n.users = append(n.users, u)
	n.mu.Unlock()
	return n.err
}

func strp(s string) *string { return &s }
