package application

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentity(t *testing.T) {
	got := NormalizeIdentity(RegisterInput{
		Username: strp("  Alice1 "),
		Email:    strp("\tAlice@Example.COM\n"),
		Password: strp("  Secret Pass  "),
	})
	assert.Equal(t, "alice1", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "  Secret Pass  ", got.Password, "passwords are kept as typed")
}

func TestNormalizeIdentity_MissingFieldsBecomeEmpty(t *testing.T) {
	got := NormalizeIdentity(RegisterInput{})
	assert.Equal(t, IdentityAttempt{}, got)
}

func TestNormalizePost_PreservesCase(t *testing.T) {
	got := NormalizePost(PostInput{Title: strp("  Hello World "), Body: strp("\n Body Text \n")})
	assert.Equal(t, ContentAttempt{Title: "Hello World", Body: "Body Text"}, got)
}

func identityInput(a IdentityAttempt) RegisterInput {
	return RegisterInput{Username: &a.Username, Email: &a.Email, Password: &a.Password}
}

func postInput(a ContentAttempt) PostInput {
	return PostInput{Title: &a.Title, Body: &a.Body}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []RegisterInput{
		{},
		{Username: strp(" MiXeD "), Email: strp(" A@B.C "), Password: strp(" pw ")},
		{Username: strp("ünïcode "), Email: strp("\t\t"), Password: strp("")},
		{Username: strp("already"), Email: strp("clean@example.com"), Password: strp("password1")},
	}
	for _, in := range inputs {
		once := NormalizeIdentity(in)
		twice := NormalizeIdentity(identityInput(once))
		assert.Equal(t, once, twice)
	}

	posts := []PostInput{
		{},
		{Title: strp("  T  "), Body: strp(" B ")},
		{Title: strp("Keep Case"), Body: strp("x")},
	}
	for _, in := range posts {
		once := NormalizePost(in)
		assert.Equal(t, once, NormalizePost(postInput(once)))
	}
}

func TestStringField(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"username":"bob","email":42,"password":null,"extra":"x"}`), &m))

	require.NotNil(t, StringField(m, "username"))
	assert.Equal(t, "bob", *StringField(m, "username"))
	assert.Nil(t, StringField(m, "email"), "numbers are not text")
	assert.Nil(t, StringField(m, "password"))
	assert.Nil(t, StringField(m, "missing"))

	in := RegisterInput{
		Username: StringField(m, "username"),
		Email:    StringField(m, "email"),
		Password: StringField(m, "password"),
	}
	assert.Equal(t, IdentityAttempt{Username: "bob"}, NormalizeIdentity(in))
}
