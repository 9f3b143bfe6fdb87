package mailer

import (
	"context"
	"time"

	"github.com/oksasatya/go-ddd-social/config"
	"github.com/oksasatya/go-ddd-social/internal/application"
	tpl "github.com/oksasatya/go-ddd-social/pkg/mailer/templates"
)

// Publisher puts a JSON message on a queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// WelcomeNotifier queues a welcome email for every new account.
type WelcomeNotifier struct {
	Pub Publisher
	Cfg *config.Config
}

func NewWelcomeNotifier(pub Publisher, cfg *config.Config) *WelcomeNotifier {
	return &WelcomeNotifier{Pub: pub, Cfg: cfg}
}

func (n *WelcomeNotifier) UserRegistered(ctx context.Context, u application.RegisteredUser, email string) error {
	if n.Pub == nil || n.Cfg == nil || !n.Cfg.MailSendEnabled {
		return nil
	}
	data := tpl.NewWelcomeData(n.Cfg, u.Username, email, tpl.WithTime(time.Now()), tpl.WithAvatar(u.Avatar))
	return n.Pub.PublishJSON(ctx, EmailJob{To: email, Template: tpl.Welcome, Data: data})
}

var _ application.RegistrationNotifier = (*WelcomeNotifier)(nil)
