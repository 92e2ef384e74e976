package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "loadboard-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
	}{
		{name: "driver", role: models.RoleDriver},
		{name: "shipper", role: models.RoleShipper},
		{name: "admin", role: models.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			token, expiresAt, err := GenerateToken(userID, tt.role, getTestConfig())
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Greater(t, expiresAt, time.Now().Unix())

			claims, err := ValidateToken(token, getTestConfig().Secret)
			require.NoError(t, err)

			actor, err := ActorFromClaims(claims)
			require.NoError(t, err)
			assert.Equal(t, userID, actor.ID)
			assert.Equal(t, tt.role, actor.Role)
			assert.Equal(t, "loadboard-test", claims["iss"])
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), models.RoleDriver, getTestConfig())
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()
	cfg.Expiration = -5

	token, _, err := GenerateToken(uuid.New(), models.RoleDriver, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": uuid.NewString(), "role": "admin"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed, getTestConfig().Secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestActorFromClaims_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "missing user_id", claims: jwt.MapClaims{"role": "driver"}},
		{name: "bad user_id", claims: jwt.MapClaims{"user_id": "not-a-uuid", "role": "driver"}},
		{name: "missing role", claims: jwt.MapClaims{"user_id": uuid.NewString()}},
		{name: "unknown role", claims: jwt.MapClaims{"user_id": uuid.NewString(), "role": "passenger"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ActorFromClaims(tt.claims)
			assert.Error(t, err)
		})
	}
}
