package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/event"
)

type AuthClient struct {
	api *Client
	bus *event.Bus
}

func NewAuthClient(api *Client, bus *event.Bus) *AuthClient {
	return &AuthClient{api: api, bus: bus}
}

// Login authenticates against the backend and stores the returned token and
// profile in the session.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := a.api.send(ctx, http.MethodPost, "/auth/login", nil, req, &resp, false); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := a.api.session.SetToken(resp.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if err := a.api.session.SetUser(&resp.User); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}
	a.bus.Publish(event.SessionChanged)
	return &resp, nil
}

func (a *AuthClient) Register(ctx context.Context, firstName, lastName, mobileNumber, email, password string) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	req := dto.RegisterRequest{
		FirstName:    firstName,
		LastName:     lastName,
		MobileNumber: mobileNumber,
		Email:        email,
		Password:     password,
	}
	if err := a.api.send(ctx, http.MethodPost, "/auth/register", nil, req, &resp, false); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if resp.Token != "" {
		if err := a.api.session.SetToken(resp.Token); err != nil {
			return nil, fmt.Errorf("store token: %w", err)
		}
		if err := a.api.session.SetUser(&resp.User); err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}
		a.bus.Publish(event.SessionChanged)
	}
	return &resp, nil
}

// Logout is purely local: it clears the session without any server call and
// therefore cannot fail.
func (a *AuthClient) Logout() {
	a.api.session.Clear()
	a.bus.Publish(event.SessionChanged)
}
