// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
	"github.com/raildesk-project/raildesk/lib/api"
)

func createCommand() *cli.Command {
	var outputJSON bool
	var forUser string
	var seats []string

	return &cli.Command{
		Name:    "create",
		Summary: "Book seats on a train run",
		Description: `Book one or more seats on a train for a journey date.

The booking is for the authenticated user unless --user names another
passenger's id, which requires the ADMIN role. Seat availability is
enforced by the backend; a conflict on any requested seat rejects the
whole booking.`,
		Usage: "raildesk booking create <train-id> <date> --seat <number> [--seat <number> ...] [flags]",
		Examples: []cli.Example{
			{
				Description: "Book two seats for yourself",
				Command:     "raildesk booking create trn-1005 2026-09-10 --seat 12 --seat 13",
			},
			{
				Description: "Book on behalf of a passenger (admin)",
				Command:     "raildesk booking create trn-1005 2026-09-10 --seat 4 --user usr-42",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flags.StringArrayVar(&seats, "seat", nil, "seat number to book (repeatable)")
			flags.StringVar(&forUser, "user", "", "book for this user id instead of yourself (admin)")
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("train id and date are required\n\nUsage: raildesk booking create <train-id> <date> --seat <number>")
			}
			if len(args) > 2 {
				return fmt.Errorf("unexpected argument: %s", args[2])
			}
			if len(seats) == 0 {
				return fmt.Errorf("at least one --seat is required")
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			userID := connection.Session.UserID
			if forUser != "" {
				if !connection.Session.IsAdmin() {
					return fmt.Errorf("--user requires the ADMIN role")
				}
				userID = forUser
			}

			logger := cli.NewCommandLogger().With("command", "booking/create")
			logger.Info("creating booking",
				"train", args[0], "date", args[1], "seats", seats, "user", userID)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			booking, err := connection.Client.CreateBooking(ctx, api.BookingRequest{
				TrainID:     args[0],
				UserID:      userID,
				JourneyDate: args[1],
				SeatNumbers: seats,
			})
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(booking)
			}
			fmt.Fprintf(os.Stderr, "Booked seats %s (booking %s)\n",
				strings.Join(booking.Seats, ", "), booking.ID)
			return nil
		},
	}
}
