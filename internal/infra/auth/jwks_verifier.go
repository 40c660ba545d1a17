// Package auth provides concrete implementations of the token verification
// domain service.
package auth

import (
	"context"
	"crypto"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"dealroom/config"
	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/service"
	"dealroom/internal/errors"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

const jwksWellKnownPath = ".well-known/jwks.json"

// tokenClaims is the claim set consumed from verified bearer tokens.
type tokenClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// jwksVerifier verifies RS256 tokens against the identity provider's
// published key set. Keys are cached between requests; a key-id miss always
// triggers a refetch before the token is rejected, so key rotation at the
// provider never invalidates freshly minted tokens.
type jwksVerifier struct {
	audience   string
	issuer     string
	jwksURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu   sync.RWMutex
	keys map[string]crypto.PublicKey
}

// NewJWKSVerifier is the constructor for jwksVerifier.
func NewJWKSVerifier(cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.IssuerURL == "" || cfg.Auth.Audience == "" {
		return nil, errors.New("auth issuer and audience must be configured")
	}

	jwksURL := cfg.Auth.JWKSURL
	if jwksURL == "" {
		jwksURL = strings.TrimSuffix(cfg.Auth.IssuerURL, "/") + "/" + jwksWellKnownPath
	}

	return &jwksVerifier{
		audience:   cfg.Auth.Audience,
		issuer:     cfg.Auth.IssuerURL,
		jwksURL:    jwksURL,
		httpClient: &http.Client{Timeout: cfg.Auth.FetchTimeout},
		logger:     logger,
		keys:       make(map[string]crypto.PublicKey),
	}, nil
}

// Verify implements service.TokenVerifier.
func (v *jwksVerifier) Verify(ctx context.Context, rawToken string) (*service.Principal, error) {
	if rawToken == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token header has no key id")
		}

		return v.keyForID(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrKeyNotFound) {
			return nil, domainerrors.ErrKeyNotFound.WithDetails(err.Error())
		}

		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}

	return &service.Principal{
		Subject: claims.Subject,
		Roles:   entity.RolesFromStrings(claims.Roles),
		Issuer:  claims.Issuer,
	}, nil
}

// keyForID returns the published key matching the key id. On a cache miss
// the key set is refetched once before the lookup fails.
func (v *jwksVerifier) keyForID(ctx context.Context, kid string) (crypto.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	v.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := v.refetchKeys(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, domainerrors.ErrKeyNotFound.WrapMessage("no published key matches kid " + kid)
	}

	return key, nil
}

// refetchKeys replaces the cached key set with the provider's current one.
func (v *jwksVerifier) refetchKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build JWKS request")
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrKeyNotFound.WrapMessage("key set fetch failed: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domainerrors.ErrKeyNotFound.WrapMessage("key set fetch returned " + resp.Status)
	}

	var keySet jose.JSONWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&keySet); err != nil {
		return domainerrors.ErrKeyNotFound.WrapMessage("key set decode failed: " + err.Error())
	}

	keys := make(map[string]crypto.PublicKey, len(keySet.Keys))
	for _, k := range keySet.Keys {
		if !k.Valid() || !k.IsPublic() || k.KeyID == "" {
			continue
		}
		keys[k.KeyID] = k.Key
	}

	v.mu.Lock()
	v.keys = keys
	v.mu.Unlock()

	v.logger.DebugContext(ctx, "Refreshed JWKS key set",
		slog.String("url", v.jwksURL),
		slog.Int("keys", len(keys)),
	)

	return nil
}
