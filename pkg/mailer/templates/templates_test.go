package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-social/config"
)

func TestRenderWelcome(t *testing.T) {
	cfg := &config.Config{AppName: "Chirp", PublicBaseURL: "https://chirp.example/", CompanyName: "Chirp Inc."}
	data := NewWelcomeData(cfg, "alice1", "alice@example.com",
		WithTime(time.Date(2024, 2, 3, 4, 5, 0, 0, time.UTC)),
		WithAvatar("https://gravatar.com/avatar/abc?s=128"),
	)
	assert.Equal(t, "https://chirp.example/profile/alice1", data["ProfileURL"])
	assert.Equal(t, "welcome", data["Type"])

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Chirp, alice1!", subject)
	assert.Contains(t, text, "Hi alice1,")
	assert.Contains(t, text, "Your profile: https://chirp.example/profile/alice1")
	assert.Contains(t, text, "03 February 2024, 04:05")
	assert.Contains(t, text, "-- Chirp Inc.")
	assert.Contains(t, html, "alice1")
}

func TestRenderWelcome_Defaults(t *testing.T) {
	data := NewWelcomeData(&config.Config{}, "bob123", "bob@example.com")

	subject, text, _, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the community, bob123!", subject)
	assert.Contains(t, text, "Signed up: just now")
	assert.NotContains(t, text, "Your profile:")
}

func TestRenderEscapesHTML(t *testing.T) {
	data := NewWelcomeData(&config.Config{AppName: "Chirp"}, "<script>x</script>", "x@example.com")

	_, _, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>x</script>"))
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", map[string]any{})
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "fallback", defaultFn("fallback", ""))
	assert.Equal(t, "fallback", defaultFn("fallback", "   "))
	assert.Equal(t, "fallback", defaultFn("fallback", nil))
	assert.Equal(t, "fallback", defaultFn("fallback", 0))
	assert.Equal(t, "x", defaultFn("fallback", "x"))
	assert.Equal(t, 3, defaultFn("fallback", 3))
}
