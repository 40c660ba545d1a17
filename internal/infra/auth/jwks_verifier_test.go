package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"dealroom/config"
	domainerrors "dealroom/internal/domain/errors"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
)

const (
	testAudience = "https://api.dealroom.test"
	testIssuer   = "https://auth.dealroom.test/"
)

// jwksServer serves a mutable JWKS document and counts fetches.
type jwksServer struct {
	server  *httptest.Server
	keys    atomic.Value // jose.JSONWebKeySet
	fetches atomic.Int64
}

func newJWKSServer(t *testing.T) *jwksServer {
	t.Helper()

	s := &jwksServer{}
	s.keys.Store(jose.JSONWebKeySet{})
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.fetches.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s.keys.Load())
	}))
	t.Cleanup(s.server.Close)

	return s
}

func (s *jwksServer) publish(kid string, pub *rsa.PublicKey) {
	set := s.keys.Load().(jose.JSONWebKeySet)
	set.Keys = append(set.Keys, jose.JSONWebKey{
		Key:       pub,
		KeyID:     kid,
		Algorithm: "RS256",
		Use:       "sig",
	})
	s.keys.Store(set)
}

func newTestVerifier(t *testing.T, jwksURL string) *jwksVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		IssuerURL:    testIssuer,
		Audience:     testAudience,
		JWKSURL:      jwksURL,
		FetchTimeout: 5 * time.Second,
	}

	verifier, err := NewJWKSVerifier(cfg, slog.Default())
	require.NoError(t, err)

	return verifier.(*jwksVerifier)
}

// mintToken signs an RS256 token carrying the standard claims plus roles.
func mintToken(t *testing.T, key *rsa.PrivateKey, kid string, mutate func(jwt.MapClaims)) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   "b2c1f1f0-0000-4000-8000-000000000001",
		"iss":   testIssuer,
		"aud":   testAudience,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"roles": []string{"buyer"},
	}
	if mutate != nil {
		mutate(claims)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return key
}

func TestJWKSVerifier_ValidToken(t *testing.T) {
	t.Parallel()

	key := generateKey(t)
	srv := newJWKSServer(t)
	srv.publish("key-1", &key.PublicKey)

	v := newTestVerifier(t, srv.server.URL)

	principal, err := v.Verify(context.Background(), mintToken(t, key, "key-1", nil))
	require.NoError(t, err)
	assert.Equal(t, "b2c1f1f0-0000-4000-8000-000000000001", principal.Subject)
	assert.True(t, principal.HasRole("buyer"))
	assert.Equal(t, testIssuer, principal.Issuer)
}

func TestJWKSVerifier_MissingToken(t *testing.T) {
	t.Parallel()

	srv := newJWKSServer(t)
	v := newTestVerifier(t, srv.server.URL)

	_, err := v.Verify(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	assert.Equal(t, int64(0), srv.fetches.Load())
}

func TestJWKSVerifier_ExpiredToken(t *testing.T) {
	t.Parallel()

	key := generateKey(t)
	srv := newJWKSServer(t)
	srv.publish("key-1", &key.PublicKey)

	v := newTestVerifier(t, srv.server.URL)

	token := mintToken(t, key, "key-1", func(c jwt.MapClaims) {
		c["exp"] = time.Now().Add(-time.Minute).Unix()
	})

	_, err := v.Verify(context.Background(), token)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
}

func TestJWKSVerifier_WrongAudience(t *testing.T) {
	t.Parallel()

	key := generateKey(t)
	srv := newJWKSServer(t)
	srv.publish("key-1", &key.PublicKey)

	v := newTestVerifier(t, srv.server.URL)

	token := mintToken(t, key, "key-1", func(c jwt.MapClaims) {
		c["aud"] = "https://some-other-api.test"
	})

	_, err := v.Verify(context.Background(), token)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
}

func TestJWKSVerifier_WrongIssuer(t *testing.T) {
	t.Parallel()

	key := generateKey(t)
	srv := newJWKSServer(t)
	srv.publish("key-1", &key.PublicKey)

	v := newTestVerifier(t, srv.server.URL)

	token := mintToken(t, key, "key-1", func(c jwt.MapClaims) {
		c["iss"] = "https://evil.example.com/"
	})

	_, err := v.Verify(context.Background(), token)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
}

func TestJWKSVerifier_UntrustedKey(t *testing.T) {
	t.Parallel()

	trusted := generateKey(t)
	untrusted := generateKey(t)

	srv := newJWKSServer(t)
	srv.publish("key-1", &trusted.PublicKey)

	v := newTestVerifier(t, srv.server.URL)

	// Same kid, different private key: signature verification must fail.
	_, err := v.Verify(context.Background(), mintToken(t, untrusted, "key-1", nil))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
}

func TestJWKSVerifier_UnknownKeyID_RefetchesBeforeFailing(t *testing.T) {
	t.Parallel()

	key := generateKey(t)
	srv := newJWKSServer(t)
	srv.publish("key-1", &key.PublicKey)

	v := newTestVerifier(t, srv.server.URL)

	// Warm the cache.
	_, err := v.Verify(context.Background(), mintToken(t, key, "key-1", nil))
	require.NoError(t, err)
	require.Equal(t, int64(1), srv.fetches.Load())

	// A token with an unknown kid must trigger a refetch before failing.
	_, err = v.Verify(context.Background(), mintToken(t, key, "key-2", nil))
	assert.ErrorIs(t, err, domainerrors.ErrKeyNotFound)
	assert.Equal(t, int64(2), srv.fetches.Load())
}

func TestJWKSVerifier_KeyRotation_StaleCacheDoesNotRejectValidToken(t *testing.T) {
	t.Parallel()

	oldKey := generateKey(t)
	newKey := generateKey(t)

	srv := newJWKSServer(t)
	srv.publish("key-1", &oldKey.PublicKey)

	v := newTestVerifier(t, srv.server.URL)

	// Warm the cache with the old key set.
	_, err := v.Verify(context.Background(), mintToken(t, oldKey, "key-1", nil))
	require.NoError(t, err)

	// The provider rotates in a new key; the cached set does not have it.
	srv.publish("key-2", &newKey.PublicKey)

	principal, err := v.Verify(context.Background(), mintToken(t, newKey, "key-2", nil))
	require.NoError(t, err)
	assert.NotNil(t, principal)
}

func TestJWKSVerifier_FetchFailure(t *testing.T) {
	t.Parallel()

	key := generateKey(t)
	srv := newJWKSServer(t)
	srv.publish("key-1", &key.PublicKey)

	v := newTestVerifier(t, srv.server.URL)
	srv.server.Close()

	_, err := v.Verify(context.Background(), mintToken(t, key, "key-1", nil))
	assert.ErrorIs(t, err, domainerrors.ErrKeyNotFound)
}

func TestNewJWKSVerifier_RequiresIssuerAndAudience(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{Audience: testAudience}

	_, err := NewJWKSVerifier(cfg, slog.Default())
	require.Error(t, err)
}
