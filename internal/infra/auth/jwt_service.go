// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"

	"printshop/config"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/service"
	"printshop/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenType = "access"

// jwtVerifier checks HS256 access tokens minted by the identity service.
type jwtVerifier struct {
	secret []byte
}

// accessClaims is the token payload shared with the identity service.
type accessClaims struct {
	Kind  string   `json:"kind,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{secret: []byte(cfg.SecretKey.Access)}, nil
}

// VerifyAccessToken validates signature, expiry and type, then maps the subject to an actor.
func (v *jwtVerifier) VerifyAccessToken(tokenString string) (*service.Claims, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}
	if claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type: %q", claims.Type)
	}

	subject, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || subject <= 0 {
		return nil, errors.Errorf("invalid token subject: %q", claims.Subject)
	}

	roles := entity.RolesFromStrings(claims.Roles)
	kind := entity.ActorKind(claims.Kind)
	if kind != entity.ActorCustomer && kind != entity.ActorEmployee {
		kind = entity.ActorCustomer
		if roles.HasStaff() {
			kind = entity.ActorEmployee
		}
	}

	return &service.Claims{
		Subject:          subject,
		Kind:             kind,
		Roles:            roles,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
