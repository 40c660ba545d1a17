package auth

import (
	"context"

	"dealroom/config"
	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/service"
	"dealroom/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// sharedSecretVerifier verifies HS256 tokens signed with a shared secret.
// Local development only; production deployments verify against the identity
// provider's published key set instead.
type sharedSecretVerifier struct {
	secret   []byte
	audience string
	issuer   string
}

// NewSharedSecretVerifier is the constructor for sharedSecretVerifier.
func NewSharedSecretVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.SharedSecret == "" {
		return nil, errors.New("auth shared secret must be configured")
	}

	return &sharedSecretVerifier{
		secret:   []byte(cfg.Auth.SharedSecret),
		audience: cfg.Auth.Audience,
		issuer:   cfg.Auth.IssuerURL,
	}, nil
}

// Verify implements service.TokenVerifier.
func (v *sharedSecretVerifier) Verify(_ context.Context, rawToken string) (*service.Principal, error) {
	if rawToken == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}

	return &service.Principal{
		Subject: claims.Subject,
		Roles:   entity.RolesFromStrings(claims.Roles),
		Issuer:  claims.Issuer,
	}, nil
}
