package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserPassword(t *testing.T) {
	t.Run("hash and verify", func(t *testing.T) {
		u := &User{}
		require.NoError(t, u.SetPassword("foo", bcrypt.MinCost))

		assert.NotEqual(t, "foo", u.Password)
		assert.True(t, u.HasUsablePassword())
		assert.True(t, u.CheckPassword("foo"))
		assert.False(t, u.CheckPassword("bar"))
	})

	t.Run("empty password is unusable", func(t *testing.T) {
		u := &User{}
		require.NoError(t, u.SetPassword("", bcrypt.MinCost))

		assert.False(t, u.HasUsablePassword())
		assert.False(t, u.CheckPassword(""))
		assert.False(t, u.CheckPassword("!"))
	})

	t.Run("zero value never verifies", func(t *testing.T) {
		u := &User{}
		assert.False(t, u.CheckPassword(""))
	})
}

func TestUserString(t *testing.T) {
	u := &User{Email: "simple@email.com", Organization: Organization{Name: "Test Company"}}
	assert.Equal(t, "simple@email.com - Test Company", u.String())
	assert.Equal(t, "Test Company", u.OrganizationName())
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
}
