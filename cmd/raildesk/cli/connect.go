// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/raildesk-project/raildesk/lib/api"
	"github.com/raildesk-project/raildesk/lib/config"
	"github.com/raildesk-project/raildesk/lib/session"
)

// Connection is an authenticated backend connection: the API client
// hydrated from the persisted session, the cached identity, and the
// loaded configuration.
type Connection struct {
	Client  *api.Client
	Session *session.Session
	Config  *config.Config
}

// Connect loads the session from "raildesk login" and the client
// configuration, then builds an authenticated API client against the
// backend the session was issued by. The session's base URL wins over
// the configured one so commands always talk to the deployment they
// logged in to.
//
// Used by every CLI command that talks to the booking backend.
func Connect() (*Connection, error) {
	persisted, err := session.Load()
	if err != nil {
		return nil, err
	}

	configuration, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := api.New(persisted.BaseURL, persisted.Token)
	if timeout, err := configuration.RequestTimeout(); err == nil {
		client.SetTimeout(timeout)
	}

	return &Connection{
		Client:  client,
		Session: persisted,
		Config:  configuration,
	}, nil
}
