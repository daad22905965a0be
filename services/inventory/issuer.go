package inventory

import (
	"context"
	"errors"
	"time"

	"roamify/utils"
)

// MockCredentialIssuer stands in for the provider's OAuth token endpoint.
// It mints a signed bearer token for any non-empty client pair; wire
// mechanics (grant types, refresh) are out of scope.
type MockCredentialIssuer struct {
	TokenTTL time.Duration
}

func NewMockCredentialIssuer() *MockCredentialIssuer {
	return &MockCredentialIssuer{TokenTTL: 30 * time.Minute}
}

func (m *MockCredentialIssuer) Issue(ctx context.Context, clientID, clientSecret string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if clientID == "" || clientSecret == "" {
		return "", errors.New("invalid client credentials")
	}
	token, err := utils.GenerateBearerToken(clientID, m.TokenTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
