// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package seat implements the "raildesk seat" command group: querying
// seat inventory for a train run and the admin-only inventory
// mutations (add, update, delete, init).
package seat

import "github.com/raildesk-project/raildesk/cmd/raildesk/cli"

// Command returns the "seat" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "seat",
		Summary: "Seat inventory commands",
		Description: `Inspect and manage seat inventory.

Seats are keyed by train, departure date, and seat number. Listing
works for every authenticated user; add, update, delete, and init
require the ADMIN role.`,
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(),
			updateCommand(),
			deleteCommand(),
			initCommand(),
		},
	}
}
