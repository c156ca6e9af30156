// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package seat

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
	"github.com/raildesk-project/raildesk/lib/api"
)

func listCommand() *cli.Command {
	var outputJSON bool
	var availableOnly bool

	return &cli.Command{
		Name:    "list",
		Summary: "List seat inventory for a train run",
		Usage:   "raildesk seat list <train-id> <date> [flags]",
		Examples: []cli.Example{
			{
				Description: "Full inventory for a run",
				Command:     "raildesk seat list trn-1005 2026-09-10",
			},
			{
				Description: "Only the seats still open",
				Command:     "raildesk seat list trn-1005 2026-09-10 --available",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.BoolVar(&availableOnly, "available", false, "list only available seat numbers")
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			trainID, date, err := runKey(args)
			if err != nil {
				return err
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if availableOnly {
				numbers, err := connection.Client.AvailableSeatNumbers(ctx, trainID, date)
				if err != nil {
					return err
				}
				if outputJSON {
					return cli.WriteJSON(numbers)
				}
				for _, number := range numbers {
					fmt.Println(number)
				}
				return nil
			}

			seats, err := connection.Client.Seats(ctx, trainID, date)
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(seats)
			}
			printSeats(seats)
			return nil
		},
	}
}

// runKey extracts the (train id, departure date) positional pair every
// seat command operates on.
func runKey(args []string) (trainID, date string, err error) {
	if len(args) < 2 {
		return "", "", fmt.Errorf("train id and date are required\n\nUsage: raildesk seat <command> <train-id> <date>")
	}
	if len(args) > 2 {
		return "", "", fmt.Errorf("unexpected argument: %s", args[2])
	}
	return args[0], args[1], nil
}

func printSeats(seats []api.Seat) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SEAT\tSTATUS")
	for _, seat := range seats {
		fmt.Fprintf(writer, "%s\t%s\n", seat.SeatNumber, seat.Status)
	}
	writer.Flush()
}
