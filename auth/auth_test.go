package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("should verify the original password and refuse others", func(t *testing.T) {
		req := require.New(t)

		hash, err := HashPassword("hunter2")
		req.NoError(err)

		match, err := ComparePassword("hunter2", hash)
		req.NoError(err)
		req.True(match)

		match, err = ComparePassword("hunter3", hash)
		req.NoError(err)
		req.False(match)
	})

	t.Run("should salt every hash differently", func(t *testing.T) {
		req := require.New(t)

		first, err := HashPassword("hunter2")
		req.NoError(err)
		second, err := HashPassword("hunter2")
		req.NoError(err)

		req.NotEqual(first, second)
	})

	t.Run("should refuse a mangled hash", func(t *testing.T) {
		req := require.New(t)

		_, err := ComparePassword("hunter2", "not-a-hash")

		req.Error(err)
	})
}

func TestIssuer(t *testing.T) {
	t.Run("should round-trip claims through a signed token", func(t *testing.T) {
		req := require.New(t)
		issuer := NewIssuer("secret", time.Hour)

		token, err := issuer.Issue("u-1", true)
		req.NoError(err)

		claims, err := issuer.Validate(token)
		req.NoError(err)
		req.Equal("u-1", claims.UserID)
		req.True(claims.Admin)
	})

	t.Run("should refuse tokens from another issuer", func(t *testing.T) {
		req := require.New(t)
		issuer := NewIssuer("secret", time.Hour)

		foreign, err := NewIssuer("other", time.Hour).Issue("u-1", false)
		req.NoError(err)

		_, err = issuer.Validate(foreign)
		req.Error(err)
	})

	t.Run("should refuse expired tokens", func(t *testing.T) {
		req := require.New(t)
		issuer := NewIssuer("secret", -time.Minute)

		token, err := issuer.Issue("u-1", false)
		req.NoError(err)

		_, err = issuer.Validate(token)
		req.Error(err)
	})
}
