package auth

import (
	"context"
	"testing"
	"time"

	"dealroom/config"
	domainerrors "dealroom/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecretVerifier(t *testing.T, secret string) *sharedSecretVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		IssuerURL:    testIssuer,
		Audience:     testAudience,
		SharedSecret: secret,
	}

	verifier, err := NewSharedSecretVerifier(cfg)
	require.NoError(t, err)

	return verifier.(*sharedSecretVerifier)
}

func mintHS256Token(t *testing.T, secret string, mutate func(jwt.MapClaims)) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   "b2c1f1f0-0000-4000-8000-000000000002",
		"iss":   testIssuer,
		"aud":   testAudience,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"roles": []string{"seller", "admin"},
	}
	if mutate != nil {
		mutate(claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestSharedSecretVerifier_ValidToken(t *testing.T) {
	t.Parallel()

	v := newSecretVerifier(t, "local-dev-secret")

	principal, err := v.Verify(context.Background(), mintHS256Token(t, "local-dev-secret", nil))
	require.NoError(t, err)
	assert.Equal(t, "b2c1f1f0-0000-4000-8000-000000000002", principal.Subject)
	assert.True(t, principal.HasRole("admin"))
	assert.True(t, principal.HasRole("seller"))
	assert.False(t, principal.HasRole("buyer"))
}

func TestSharedSecretVerifier_WrongSecret(t *testing.T) {
	t.Parallel()

	v := newSecretVerifier(t, "local-dev-secret")

	_, err := v.Verify(context.Background(), mintHS256Token(t, "some-other-secret", nil))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestSharedSecretVerifier_RejectsMissingExpiry(t *testing.T) {
	t.Parallel()

	v := newSecretVerifier(t, "local-dev-secret")

	token := mintHS256Token(t, "local-dev-secret", func(c jwt.MapClaims) {
		delete(c, "exp")
	})

	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestNewSharedSecretVerifier_RequiresSecret(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{IssuerURL: testIssuer, Audience: testAudience}

	_, err := NewSharedSecretVerifier(cfg)
	require.Error(t, err)
}
