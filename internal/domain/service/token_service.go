package service

import (
	"printshop/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the verified identity claims of an access token.
type Claims struct {
	Subject int64
	Kind    entity.ActorKind
	Roles   entity.Roles
	jwt.RegisteredClaims
}

// Actor converts the claims into the explicit identity passed to the core.
func (c *Claims) Actor() entity.Actor {
	return entity.Actor{Kind: c.Kind, ID: c.Subject, Roles: c.Roles}
}

// TokenVerifier validates access tokens issued by the identity service.
type TokenVerifier interface {
	// VerifyAccessToken checks signature, expiry and token type.
	VerifyAccessToken(tokenString string) (*Claims, error)
}
