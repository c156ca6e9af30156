// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
)

// Users lists every account. Admin-scoped server-side; a regular user
// fetches only their own record via User.
func (client *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := client.getJSON(ctx, "list users", "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User fetches a single account by id.
func (client *Client) User(ctx context.Context, userID string) (User, error) {
	var user User
	path := "/users/" + url.PathEscape(userID)
	if err := client.getJSON(ctx, "get user", path, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// UserUpdate carries the editable profile fields for PUT /users/{id}.
// Role is not here — role changes go through SetUserRole.
type UserUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// UpdateUser saves edited profile fields.
func (client *Client) UpdateUser(ctx context.Context, userID string, update UserUpdate) error {
	path := "/users/" + url.PathEscape(userID)
	return client.sendJSON(ctx, "update user", http.MethodPut, path, nil, update, nil)
}

// DeleteUser removes an account. Admin-only server-side; the UI
// additionally refuses to delete the calling account.
func (client *Client) DeleteUser(ctx context.Context, userID string) error {
	path := "/users/" + url.PathEscape(userID)
	return client.sendJSON(ctx, "delete user", http.MethodDelete, path, nil, nil, nil)
}
