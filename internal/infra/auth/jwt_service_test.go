package auth

import (
	"testing"
	"time"

	"printshop/config"
	"printshop/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestVerifier(t *testing.T) *jwtVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	verifier, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	return verifier.(*jwtVerifier)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTVerifier_EmptySecret(t *testing.T) {
	verifier, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, verifier)
}

func TestJWTVerifier_CustomerToken(t *testing.T) {
	verifier := newTestVerifier(t)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "17",
		"roles": []string{"customer"},
		"type":  "access",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})

	claims, err := verifier.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(17), claims.Subject)
	assert.Equal(t, entity.ActorCustomer, claims.Kind)
	assert.Equal(t, entity.CustomerActor(17), claims.Actor())
}

func TestJWTVerifier_StaffTokenInfersEmployee(t *testing.T) {
	verifier := newTestVerifier(t)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "5",
		"roles": []string{"employee", "unknown"},
		"type":  "access",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})

	claims, err := verifier.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.ActorEmployee, claims.Kind)
	assert.Equal(t, entity.Roles{entity.RoleEmployee}, claims.Roles)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier := newTestVerifier(t)
	future := time.Now().Add(time.Minute).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: signToken(t, "another-secret", jwt.MapClaims{"sub": "1", "type": "access", "exp": future})},
		{name: "expired", token: signToken(t, testSecret, jwt.MapClaims{"sub": "1", "type": "access", "exp": time.Now().Add(-time.Minute).Unix()})},
		{name: "missing exp", token: signToken(t, testSecret, jwt.MapClaims{"sub": "1", "type": "access"})},
		{name: "refresh token", token: signToken(t, testSecret, jwt.MapClaims{"sub": "1", "type": "refresh", "exp": future})},
		{name: "non numeric subject", token: signToken(t, testSecret, jwt.MapClaims{"sub": "abc", "type": "access", "exp": future})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.VerifyAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
