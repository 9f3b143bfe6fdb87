package helpers

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("longpassword")
	require.NoError(t, err)
	b, err := h.Hash("longpassword")
	require.NoError(t, err)

	assert.NotEqual(t, "longpassword", a)
	assert.NotEqual(t, a, b, "digests are salted")
	assert.True(t, h.Verify("longpassword", a))
	assert.True(t, h.Verify("longpassword", b))
	assert.False(t, h.Verify("longpassword2", a))
	assert.False(t, h.Verify("longpassword", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("", ""))
}

func TestNewBcryptHasherCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).Cost)
	assert.Equal(t, 12, NewBcryptHasher(12).Cost)
}

func TestBcryptHasherLongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	// 40 characters, 80 bytes.
	plain := strings.Repeat("é", 40)
	digest, err := h.Hash(plain)
	require.NoError(t, err)
	assert.True(t, h.Verify(plain, digest))

	// Only the first 36 characters fit in 72 bytes.
	assert.True(t, h.Verify(strings.Repeat("é", 36)+"abcd", digest))
	assert.False(t, h.Verify(strings.Repeat("é", 35), digest))
}

func TestBcryptInputRuneBoundary(t *testing.T) {
	assert.Equal(t, []byte("short"), bcryptInput("short"))

	// 71 ASCII bytes then a 2-byte rune: the rune would straddle the limit.
	plain := strings.Repeat("a", 71) + "é" + "zz"
	got := bcryptInput(plain)
	assert.Equal(t, strings.Repeat("a", 71), string(got))
	assert.True(t, utf8.Valid(got))

	exact := strings.Repeat("b", 72)
	assert.Equal(t, exact, string(bcryptInput(exact+"tail")))
}
