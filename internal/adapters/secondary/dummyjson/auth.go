package dummyjson

import (
	"context"
	"fmt"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
)

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins,omitempty"`
}

type loginResponse struct {
	domain.Profile
	AccessToken string `json:"accessToken"`
	// Token is the field name used by older API versions.
	Token string `json:"token"`
}

// Authenticator implements login against /auth/login.
type Authenticator struct {
	client *Client
}

func NewAuthenticator(client *Client) *Authenticator {
	return &Authenticator{client: client}
}

// Login exchanges credentials for the user's profile and an access token.
func (a *Authenticator) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var resp loginResponse

	err := a.client.post(ctx, "/auth/login", loginRequest{
		Username:      creds.Username,
		Password:      creds.Password,
		ExpiresInMins: creds.SessionLifetimeMinutes,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to login %q: %w", creds.Username, err)
	}

	token := resp.AccessToken
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return nil, fmt.Errorf("login response for %q carries no token", creds.Username)
	}

	return &domain.AuthResult{Profile: resp.Profile, Token: token}, nil
}
