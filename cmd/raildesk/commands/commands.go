// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete Raildesk CLI command tree.
package commands

import (
	"fmt"

	bookingcmd "github.com/raildesk-project/raildesk/cmd/raildesk/booking"
	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
	seatcmd "github.com/raildesk-project/raildesk/cmd/raildesk/seat"
	traincmd "github.com/raildesk-project/raildesk/cmd/raildesk/train"
	uicmd "github.com/raildesk-project/raildesk/cmd/raildesk/ui"
	usercmd "github.com/raildesk-project/raildesk/cmd/raildesk/user"
	"github.com/raildesk-project/raildesk/lib/version"
)

// Root builds and returns the complete Raildesk CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "raildesk",
		Description: `Raildesk: terminal client for the train booking platform.

Search trains, pick seats, and manage bookings from the command line
or the full-screen console ("raildesk ui"). Authenticate once with
"raildesk login"; every other command reuses the saved session.`,
		Subcommands: []*cli.Command{
			cli.LoginCommand(),
			cli.LogoutCommand(),
			cli.RegisterCommand(),
			cli.WhoamiCommand(),
			uicmd.Command(),
			traincmd.Command(),
			seatcmd.Command(),
			bookingcmd.Command(),
			usercmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("raildesk %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
