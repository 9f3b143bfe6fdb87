package templates

import (
	"strings"
	"time"

	"github.com/oksasatya/go-ddd-social/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithAvatar(url string) Option { return func(d *EmailData) { d.Avatar = url } }

// NewBaseEmailData fills the shared fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, username, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Username:       username,
		RecipientEmail: recipient,
		Type:           typ,

		AppName:        cfg.AppName,
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		LogoURL:        cfg.LogoURL,
		SupportURL:     cfg.SupportURL,
	}
	if base := strings.TrimRight(cfg.PublicBaseURL, "/"); base != "" {
		d.ProfileURL = base + "/profile/" + username
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, username, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, Welcome, username, email, opts...))
}
