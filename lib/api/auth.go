// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// LoginResponse is the wire format for POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login authenticates with email and password and returns the bearer
// token. The token is NOT attached to the client automatically; the
// caller decides whether to SetToken and persist it.
func (client *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	var result LoginResponse
	if err := client.sendJSON(ctx, "login", http.MethodPost, "/auth/login", nil, payload, &result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("login: backend returned no token")
	}
	return result.Token, nil
}

// Registration is the payload for POST /auth/register.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Role      string `json:"role,omitempty"`
}

// Register creates a new account.
func (client *Client) Register(ctx context.Context, registration Registration) error {
	return client.sendJSON(ctx, "register", http.MethodPost, "/auth/register", nil, registration, nil)
}

// Me returns the authenticated user's profile ("who am I"). This is
// how the client resolves its own user id and role after hydrating a
// persisted token.
func (client *Client) Me(ctx context.Context) (User, error) {
	var user User
	if err := client.getJSON(ctx, "whoami", "/auth/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// SetUserRole promotes or demotes a user via
// PATCH /auth/users/{id}/role. Admin-only server-side.
func (client *Client) SetUserRole(ctx context.Context, userID, role string) error {
	path := "/auth/users/" + url.PathEscape(userID) + "/role"
	payload := map[string]string{"role": role}
	return client.sendJSON(ctx, "set user role", http.MethodPatch, path, nil, payload, nil)
}
