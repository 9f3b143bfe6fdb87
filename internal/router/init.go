package router

import (
	"github.com/oksasatya/go-ddd-social/internal/application"
	"github.com/oksasatya/go-ddd-social/internal/container"
	pginfra "github.com/oksasatya/go-ddd-social/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-social/internal/infrastructure/search"
	handlers "github.com/oksasatya/go-ddd-social/internal/interface/http"
	"github.com/oksasatya/go-ddd-social/internal/router/modules"
	"github.com/oksasatya/go-ddd-social/pkg/helpers"
	"github.com/oksasatya/go-ddd-social/pkg/mailer"
)

type Deps struct {
	Users    *application.UserService
	Posts    *application.PostService
	Profiles *application.ProfileService
	Exporter *application.PostExporter
	Sessions *helpers.SessionAuthenticator
	Tokens   helpers.TokenAuthenticator
}

// BuildDeps wires services from the container singletons. Optional
// integrations (search, exports, welcome mail) stay off when their client
// was not configured.
func BuildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	follows := pginfra.NewFollowRepository(pool)

	var notifier application.RegistrationNotifier
	if pub := container.GetRabbitPub(); pub != nil {
		notifier = mailer.NewWelcomeNotifier(pub, cfg)
	}
	var index application.PostIndex
	if es := container.GetES(); es != nil {
		index = search.NewPostIndex(es, cfg.ESPostsIndex)
	}
	var store application.ObjectStore
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		store = helpers.NewGCSStore(gcs, cfg.GCSBucket)
	}

	userSvc := application.NewUserService(users, helpers.NewBcryptHasher(cfg.BcryptCost), notifier, logger, cfg.AvatarSize)
	postSvc := application.NewPostService(posts, users, index, logger, cfg.AvatarSize)

	jwt := container.GetJWT()
	return Deps{
		Users:    userSvc,
		Posts:    postSvc,
		Profiles: application.NewProfileService(users, posts, follows, logger, cfg.AvatarSize),
		Exporter: application.NewPostExporter(postSvc.Query, store),
		Sessions: helpers.NewSessionAuthenticator(container.GetRedis(), jwt, cfg.SessionTTL),
		Tokens:   helpers.TokenAuthenticator{JWT: helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.APITokenTTL)},
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, d Deps) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userHandler := handlers.NewUserHandler(d.Users, d.Sessions, d.Tokens, logger, cfg.CookieDomain, cfg.CookieSecure)
	postHandler := handlers.NewPostHandler(d.Posts, d.Exporter, logger)
	profileHandler := handlers.NewProfileHandler(d.Profiles)

	r.Add(modules.NewHealthModule(container.GetPGPool(), container.GetRedis()))
	r.Add(modules.NewUserModule(userHandler, d.Sessions, d.Tokens))
	r.Add(modules.NewPostModule(postHandler, profileHandler, d.Sessions, d.Tokens))
}
