// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"context"

	"dealroom/internal/domain/entity"
)

// Principal is the authenticated identity carried by a verified bearer token.
type Principal struct {
	// Subject is the identity provider's 'sub' claim; it matches users.id.
	Subject string
	// Roles are decoded from the 'roles' claim, if present.
	Roles entity.Roles
	// Issuer is the trusted issuer that minted the token.
	Issuer string
}

// HasRole reports whether the principal carries the given role. All role
// checks go through here so handlers never inspect raw claim encodings.
func (p *Principal) HasRole(role entity.Role) bool {
	return p.Roles.Contains(role)
}

// TokenVerifier authenticates an opaque bearer token against the trusted
// identity provider's published key set.
//
// Verification is pure: no state outlives the call apart from the verifier's
// own key-set cache, and a cached key set must never cause a valid token to
// be rejected (the implementation refetches on key-id miss before failing).
type TokenVerifier interface {
	// Verify checks the token's signature, audience, issuer, and expiry,
	// returning the authenticated principal on success. Failures map to the
	// domain error taxonomy: errors.ErrInvalidToken for signature/claim
	// mismatches, errors.ErrKeyNotFound when no published key matches.
	Verify(ctx context.Context, rawToken string) (*Principal, error)
}
