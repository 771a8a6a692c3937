// Package googleauth verifies Google Sign-In ID tokens for the federated
// login path.
package googleauth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

var ErrNotConfigured = errors.New("google client id not configured")

type UserInfo struct {
	Email   string
	Name    string
	Picture string
}

type Verifier interface {
	Verify(ctx context.Context, idToken string) (UserInfo, error)
}

type IDTokenVerifier struct {
	clientID string
}

func NewIDTokenVerifier(clientID string) *IDTokenVerifier {
	return &IDTokenVerifier{clientID: clientID}
}

func (v *IDTokenVerifier) Verify(ctx context.Context, token string) (UserInfo, error) {
	if v.clientID == "" {
		return UserInfo{}, ErrNotConfigured
	}

	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return UserInfo{}, fmt.Errorf("verify id token: %w", err)
	}

	info := UserInfo{}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		info.Picture = picture
	}

	if info.Email == "" {
		return UserInfo{}, errors.New("email not found in token")
	}
	return info, nil
}
