// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package booking implements the "raildesk booking" command group:
// creating bookings, listing them (role-scoped), and cancelling.
package booking

import "github.com/raildesk-project/raildesk/cmd/raildesk/cli"

// Command returns the "booking" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "booking",
		Summary: "Booking commands",
		Description: `Create, list, and cancel bookings.

Regular users see and cancel only their own bookings. Admins see every
booking, can book on behalf of any passenger with --user, and can
cancel any booking.`,
		Subcommands: []*cli.Command{
			createCommand(),
			listCommand(),
			cancelCommand(),
		},
	}
}
