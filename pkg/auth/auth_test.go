package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookshare/bookshare-service/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{Secret: "test-secret", TokenTTL: time.Hour}

	token, expiresAt, err := auth.NewToken(cfg, "e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41", "tester")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := auth.ParseToken(cfg.Secret, token)
	require.NoError(t, err)
	require.Equal(t, "e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41", claims.Profile.UserUid)
	require.Equal(t, "tester", claims.Profile.Username)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{Secret: "test-secret", TokenTTL: time.Hour}

	token, _, err := auth.NewToken(cfg, "uid", "tester")
	require.NoError(t, err)

	_, err = auth.ParseToken("other-secret", token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{Secret: "test-secret", TokenTTL: -time.Minute}

	token, _, err := auth.NewToken(cfg, "uid", "tester")
	require.NoError(t, err)

	_, err = auth.ParseToken(cfg.Secret, token)
	require.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	t.Parallel()
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, auth.CheckPassword(hash, "correct horse battery staple"))
	require.False(t, auth.CheckPassword(hash, "wrong password"))
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	ctx := auth.SetAuthContext(context.Background(), "uid-1", "tester")

	uid, err := auth.UserUid(ctx)
	require.NoError(t, err)
	require.Equal(t, "uid-1", uid)

	name, err := auth.Username(ctx)
	require.NoError(t, err)
	require.Equal(t, "tester", name)

	_, err = auth.UserUid(context.Background())
	require.Error(t, err)
}
