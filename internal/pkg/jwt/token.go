package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingClaim = errors.New("missing claim")
)

// GenerateToken signs an HS256 token carrying the user id and role
func GenerateToken(userID uuid.UUID, role models.Role, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    string(role),
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies the signature and expiry and returns the claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ActorFromClaims extracts the caller identity from validated claims
func ActorFromClaims(claims jwt.MapClaims) (models.Actor, error) {
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return models.Actor{}, fmt.Errorf("%w: user_id", ErrMissingClaim)
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return models.Actor{}, fmt.Errorf("%w: user_id is not a valid UUID", ErrInvalidToken)
	}

	rawRole, ok := claims["role"].(string)
	if !ok {
		return models.Actor{}, fmt.Errorf("%w: role", ErrMissingClaim)
	}
	role := models.Role(rawRole)
	if !role.Valid() {
		return models.Actor{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, rawRole)
	}

	return models.Actor{ID: userID, Role: role}, nil
}
