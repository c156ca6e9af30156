// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
	"github.com/raildesk-project/raildesk/lib/api"
)

func listCommand() *cli.Command {
	var outputJSON bool
	var allUsers bool

	return &cli.Command{
		Name:    "list",
		Summary: "List bookings",
		Description: `List your bookings. With --all (admin), list every booking on the
platform instead.`,
		Usage: "raildesk booking list [flags]",
		Examples: []cli.Example{
			{
				Description: "Your bookings",
				Command:     "raildesk booking list",
			},
			{
				Description: "Every booking on the platform (admin)",
				Command:     "raildesk booking list --all",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.BoolVar(&allUsers, "all", false, "list every booking, not just your own (admin)")
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}
			if allUsers && !connection.Session.IsAdmin() {
				return fmt.Errorf("--all requires the ADMIN role")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			var bookings []api.Booking
			if allUsers {
				bookings, err = connection.Client.Bookings(ctx)
			} else {
				bookings, err = connection.Client.UserBookings(ctx, connection.Session.UserID)
			}
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(bookings)
			}
			printBookings(bookings, allUsers)
			return nil
		},
	}
}

func printBookings(bookings []api.Booking, showPassenger bool) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if showPassenger {
		fmt.Fprintln(writer, "ID\tPASSENGER\tTRAIN\tDATE\tSEATS\tSTATUS")
	} else {
		fmt.Fprintln(writer, "ID\tTRAIN\tDATE\tSEATS\tSTATUS")
	}
	for _, booking := range bookings {
		status := booking.Status
		if status == "" {
			status = "BOOKED"
		}
		train := booking.TrainNumber
		if booking.TrainName != "" {
			train = strings.TrimSpace(train + " " + booking.TrainName)
		}
		if train == "" {
			train = booking.TrainID
		}
		if showPassenger {
			passenger := booking.UserEmail
			if passenger == "" {
				passenger = booking.UserID
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
				booking.ID, passenger, train, booking.JourneyDate,
				strings.Join(booking.Seats, ","), status)
		} else {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
				booking.ID, train, booking.JourneyDate,
				strings.Join(booking.Seats, ","), status)
		}
	}
	writer.Flush()
}
