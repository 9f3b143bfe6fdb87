package application_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-ddd-social/internal/application"
	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-social/internal/domain/repository"
	"github.com/oksasatya/go-ddd-social/pkg/helpers"
)

// userTable is a minimal store for exercising UserService with the real
// bcrypt hasher.
type userTable struct {
	mu    sync.Mutex
	users []entity.User
}

func (r *userTable) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.NewString()
	r.users = append(r.users, *u)
	return nil
}

func (r *userTable) find(match func(entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			cp := u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *userTable) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id })
}

func (r *userTable) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username })
}

func (r *userTable) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func strp(s string) *string { return &s }

func TestRegister_MultiBytePasswordWithBcrypt(t *testing.T) {
	ctx := context.Background()
	svc := application.NewUserService(&userTable{}, helpers.NewBcryptHasher(bcrypt.MinCost), nil, nil, 0)

	// 40 characters is within the length rule but 80 bytes long.
	password := strings.Repeat("é", 40)
	got, err := svc.Register(ctx, application.RegisterInput{
		Username: strp("accent"),
		Email:    strp("accent@example.com"),
		Password: strp(password),
	})
	require.NoError(t, err)
	assert.Equal(t, "accent", got.Username)

	u, err := svc.Authenticate(ctx, application.CredentialsInput{Username: strp("accent"), Password: strp(password)})
	require.NoError(t, err)
	assert.Equal(t, got.ID, u.ID)

	_, err = svc.Authenticate(ctx, application.CredentialsInput{Username: strp("accent"), Password: strp(strings.Repeat("e", 40))})
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestRegister_MaxLengthPasswordWithBcrypt(t *testing.T) {
	ctx := context.Background()
	svc := application.NewUserService(&userTable{}, helpers.NewBcryptHasher(bcrypt.MinCost), nil, nil, 0)

	// 50 four-byte characters: the longest password the rules accept.
	password := strings.Repeat("😀", 50)
	_, err := svc.Register(ctx, application.RegisterInput{
		Username: strp("emoji"),
		Email:    strp("emoji@example.com"),
		Password: strp(password),
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, application.CredentialsInput{Username: strp("emoji"), Password: strp(password)})
	assert.NoError(t, err)
}
