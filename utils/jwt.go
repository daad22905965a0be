package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// Load the signing secret from an environment variable. Fallback to a
// development default.
var signingSecret = []byte(getSigningSecret())

func getSigningSecret() string {
	secret := os.Getenv("TOKEN_SIGNING_SECRET")
	if secret == "" {
		secret = "roamify-dev-signing-secret"
	}
	return secret
}

// GenerateBearerToken mints a signed HS256 bearer token for the given
// subject (the provider client ID). The token expires after the given
// duration. Consumers treat the result as an opaque credential.
func GenerateBearerToken(subject string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret)
}

// ValidateBearerToken parses and validates a bearer token string.
func ValidateBearerToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingSecret, nil
	})
}
