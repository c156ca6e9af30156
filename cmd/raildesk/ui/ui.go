// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui implements the "raildesk ui" command, launching the
// full-screen booking console.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
	"github.com/raildesk-project/raildesk/lib/deskui"
)

// Command returns the "ui" command that launches the interactive
// booking console.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "ui",
		Summary: "Interactive booking console",
		Description: `Launch the full-screen terminal UI for booking seats and managing
the platform.

Every user gets the Book, Bookings, and Trains tabs. Admins
additionally get Seats and Users. The console authenticates with the
session saved by "raildesk login".`,
		Usage: "raildesk ui",
		Examples: []cli.Example{
			{
				Description: "Open the booking console",
				Command:     "raildesk ui",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			identity := deskui.Identity{
				UserID: connection.Session.UserID,
				Email:  connection.Session.Email,
				Role:   connection.Session.Role,
			}
			model := deskui.New(connection.Client, identity, connection.Config.UI.SeatsPerRow)

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running booking console: %w", err)
			}
			return nil
		},
	}
}
