package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-social/config"
	"github.com/oksasatya/go-ddd-social/internal/application"
	pginfra "github.com/oksasatya/go-ddd-social/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-social/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	userSvc := application.NewUserService(users, helpers.NewBcryptHasher(cfg.BcryptCost), nil, logger, cfg.AvatarSize)
	postSvc := application.NewPostService(posts, users, nil, logger, cfg.AvatarSize)

	username, email, password := "demouser", "demo@example.com", "password123"
	str := func(s string) *string { return &s }

	var id string
	reg, err := userSvc.Register(ctx, application.RegisterInput{Username: str(username), Email: str(email), Password: str(password)})
	var verr *application.ValidationError
	switch {
	case err == nil:
		id = reg.ID
		fmt.Printf("seeded user: id=%s username=%s email=%s password=%s\n", id, username, email, password)
	case errors.As(err, &verr) && verr.Has(application.CodeUsernameTaken):
		u, err := userSvc.Authenticate(ctx, application.CredentialsInput{Username: str(username), Password: str(password)})
		if err != nil {
			log.Fatalf("seed user exists but cannot log in: %v", err)
		}
		id = u.ID
		fmt.Printf("seed user already present: id=%s\n", id)
	default:
		log.Fatalf("failed to seed user: %v", err)
	}

	existing, err := postSvc.FindByAuthor(ctx, id, id)
	if err != nil {
		log.Fatalf("failed to list seed posts: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("seed posts already present: %d\n", len(existing))
		return
	}
	samples := []struct{ title, body string }{
		{"Hello world", "First post from the seed command."},
		{"Second thoughts", "Posts are listed newest first on the profile page."},
	}
	for _, s := range samples {
		if err := postSvc.Create(ctx, application.PostInput{Title: str(s.title), Body: str(s.body)}, id); err != nil {
			log.Fatalf("failed to seed post %q: %v", s.title, err)
		}
	}
	fmt.Printf("seeded %d posts for %s\n", len(samples), username)
}
