package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitd/habitd/pkg/jwt"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("with valid signing key", func(t *testing.T) {
		service, err := jwt.New([]byte("secret"))
		require.NoError(t, err)
		require.NotNil(t, service)
	})

	t.Run("with empty signing key", func(t *testing.T) {
		service, err := jwt.New([]byte{})
		require.Error(t, err)
		require.Equal(t, jwt.ErrMissingSigningKey, err)
		require.Nil(t, service)
	})
}

func TestNewFromString(t *testing.T) {
	t.Parallel()
	t.Run("with valid signing key", func(t *testing.T) {
		service, err := jwt.NewFromString("secret")
		require.NoError(t, err)
		require.NotNil(t, service)
	})

	t.Run("with empty signing key", func(t *testing.T) {
		service, err := jwt.NewFromString("")
		require.Error(t, err)
		require.Equal(t, jwt.ErrMissingSigningKey, err)
		require.Nil(t, service)
	})
}

func TestIssue(t *testing.T) {
	t.Parallel()
	service, err := jwt.New([]byte("secret"))
	require.NoError(t, err)

	t.Run("access token", func(t *testing.T) {
		token, err := service.Issue("user123", jwt.TokenAccess, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Len(t, strings.Split(token, "."), 3)
	})

	t.Run("refresh token", func(t *testing.T) {
		token, err := service.Issue("user123", jwt.TokenRefresh, 7*24*time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("empty subject", func(t *testing.T) {
		token, err := service.Issue("", jwt.TokenAccess, time.Hour)
		require.Error(t, err)
		require.Equal(t, jwt.ErrMissingSubject, err)
		require.Empty(t, token)
	})

	t.Run("unknown token type", func(t *testing.T) {
		token, err := service.Issue("user123", jwt.TokenType("session"), time.Hour)
		require.Error(t, err)
		require.Equal(t, jwt.ErrInvalidTokenType, err)
		require.Empty(t, token)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()
	service, err := jwt.New([]byte("secret"))
	require.NoError(t, err)

	t.Run("subject round-trips", func(t *testing.T) {
		token, err := service.Issue("user123", jwt.TokenAccess, time.Hour)
		require.NoError(t, err)

		claims, err := service.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "user123", claims.Subject)
		assert.Equal(t, jwt.TokenAccess, claims.TokenType)
		assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
	})

	t.Run("refresh type round-trips", func(t *testing.T) {
		token, err := service.Issue("user123", jwt.TokenRefresh, time.Hour)
		require.NoError(t, err)

		claims, err := service.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenRefresh, claims.TokenType)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := service.Issue("user123", jwt.TokenAccess, -time.Minute)
		require.NoError(t, err)

		_, err = service.Decode(token)
		require.Error(t, err)
		require.Equal(t, jwt.ErrExpired, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := service.Decode("not-a-token")
		require.Equal(t, jwt.ErrMalformed, err)

		_, err = service.Decode("")
		require.Equal(t, jwt.ErrMalformed, err)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := service.Issue("user123", jwt.TokenAccess, time.Hour)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		parts[1] = parts[1][:len(parts[1])-2] + "xx"
		_, err = service.Decode(strings.Join(parts, "."))
		require.Equal(t, jwt.ErrBadSignature, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other, err := jwt.New([]byte("other-secret"))
		require.NoError(t, err)

		token, err := other.Issue("user123", jwt.TokenAccess, time.Hour)
		require.NoError(t, err)

		_, err = service.Decode(token)
		require.Equal(t, jwt.ErrBadSignature, err)
	})
}

func TestTokenTypeValid(t *testing.T) {
	t.Parallel()
	assert.True(t, jwt.TokenAccess.Valid())
	assert.True(t, jwt.TokenRefresh.Valid())
	assert.False(t, jwt.TokenType("").Valid())
	assert.False(t, jwt.TokenType("other").Valid())
}
