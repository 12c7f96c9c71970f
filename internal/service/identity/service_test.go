package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginVerifyRoundTrip(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})
	ctx := context.Background()

	user, token, err := svc.Login(ctx, "amara@example.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "amara", user.Name)
	assert.Equal(t, "amara@example.com", user.Email)
	assert.NotEmpty(t, user.ID)

	got, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.Email, got.Email)
}

func TestRegister(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Amara Okafor", "amara@example.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Amara Okafor", user.Name)

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "", "amara@example.com", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "amara@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})
	ctx := context.Background()

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := New(Config{Secret: "other-secret"})
		_, token, err := other.Login(ctx, "amara@example.com", "hunter2")
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		stale := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		token, err := stale.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		anon := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := anon.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
