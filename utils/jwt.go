package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"legalaid/config"
	"legalaid/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "legalaid-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for the given actor. The role claim is
// what the middleware hands to role-gated handlers.
func GenerateToken(actor models.Actor, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  actor.ID,
		"role": string(actor.Role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractActorFromToken extracts the authenticated actor (subject and role)
// from a valid JWT token string.
func ExtractActorFromToken(tokenString string) (models.Actor, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.Actor{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Actor{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Actor{}, errors.New("token does not contain a valid 'sub' claim")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return models.Actor{}, errors.New("token does not contain a valid 'role' claim")
	}

	return models.Actor{ID: sub, Role: models.Role(role)}, nil
}
