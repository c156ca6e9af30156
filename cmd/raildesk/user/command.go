// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package user implements the "raildesk user" command group: account
// management (list, get, update, delete, role changes). Everything
// except self-profile edits requires the ADMIN role.
package user

import "github.com/raildesk-project/raildesk/cmd/raildesk/cli"

// Command returns the "user" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Summary: "Account management commands (admin)",
		Description: `List and manage platform accounts.

Listing, deleting, and role changes require the ADMIN role; the
backend rejects the request otherwise. "user update" also works on
your own account. Use "raildesk whoami" to inspect your identity.`,
		Subcommands: []*cli.Command{
			listCommand(),
			getCommand(),
			updateCommand(),
			deleteCommand(),
			roleCommand(),
		},
	}
}
