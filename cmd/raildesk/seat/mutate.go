// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package seat

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
	"github.com/raildesk-project/raildesk/lib/api"
)

// parseStatus normalizes and validates a --status value.
func parseStatus(status string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(status))
	switch normalized {
	case api.SeatAvailable, api.SeatBooked:
		return normalized, nil
	default:
		return "", fmt.Errorf("invalid status %q (expected %s or %s)", status, api.SeatAvailable, api.SeatBooked)
	}
}

func addCommand() *cli.Command {
	var status string

	return &cli.Command{
		Name:    "add",
		Summary: "Add a seat to a run's inventory (admin)",
		Usage:   "raildesk seat add <train-id> <date> <seat-number> [flags]",
		Examples: []cli.Example{
			{
				Description: "Add seat 12A as available",
				Command:     "raildesk seat add trn-1005 2026-09-10 12A",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("add", pflag.ContinueOnError)
			flags.StringVar(&status, "status", api.SeatAvailable, "initial seat status (AVAILABLE or BOOKED)")
			return flags
		},
		Run: func(args []string) error {
			trainID, date, seatNumber, err := seatKey(args)
			if err != nil {
				return err
			}
			normalized, err := parseStatus(status)
			if err != nil {
				return err
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			seat := api.Seat{
				TrainID:       trainID,
				DepartureDate: date,
				SeatNumber:    seatNumber,
				Status:        normalized,
			}
			if err := connection.Client.CreateSeat(ctx, seat); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Added seat %s (%s)\n", seatNumber, normalized)
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	var status string

	return &cli.Command{
		Name:    "update",
		Summary: "Override a seat's status (admin)",
		Description: `Set a seat's status directly, bypassing the booking workflow. For
holding seats back from sale or releasing seats a stale booking left
marked BOOKED.`,
		Usage: "raildesk seat update <train-id> <date> <seat-number> --status <status>",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("update", pflag.ContinueOnError)
			flags.StringVar(&status, "status", "", "new seat status (AVAILABLE or BOOKED)")
			return flags
		},
		Run: func(args []string) error {
			trainID, date, seatNumber, err := seatKey(args)
			if err != nil {
				return err
			}
			if status == "" {
				return fmt.Errorf("--status is required")
			}
			normalized, err := parseStatus(status)
			if err != nil {
				return err
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			seat := api.Seat{
				TrainID:       trainID,
				DepartureDate: date,
				SeatNumber:    seatNumber,
				Status:        normalized,
			}
			if err := connection.Client.UpdateSeat(ctx, seat); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Seat %s is now %s\n", seatNumber, normalized)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Summary: "Remove a seat from a run's inventory (admin)",
		Usage:   "raildesk seat delete <train-id> <date> <seat-number>",
		Run: func(args []string) error {
			trainID, date, seatNumber, err := seatKey(args)
			if err != nil {
				return err
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.DeleteSeat(ctx, trainID, date, seatNumber); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Deleted seat %s\n", seatNumber)
			return nil
		},
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:    "init",
		Summary: "Bulk-create numbered seats for a run (admin)",
		Description: `Create seats 1..N for a train run in one call, all AVAILABLE. The
backend skips numbers that already exist, so re-running with a larger
count tops the inventory up without disturbing booked seats.`,
		Usage: "raildesk seat init <train-id> <date> <count>",
		Examples: []cli.Example{
			{
				Description: "Open 240 seats for sale",
				Command:     "raildesk seat init trn-1005 2026-09-10 240",
			},
		},
		Run: func(args []string) error {
			if len(args) < 3 {
				return fmt.Errorf("train id, date, and count are required\n\nUsage: raildesk seat init <train-id> <date> <count>")
			}
			if len(args) > 3 {
				return fmt.Errorf("unexpected argument: %s", args[3])
			}
			totalSeats, err := strconv.Atoi(args[2])
			if err != nil || totalSeats <= 0 {
				return fmt.Errorf("count must be a positive integer, got %q", args[2])
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "seat/init")
			logger.Info("initializing seat inventory",
				"train", args[0], "date", args[1], "count", totalSeats)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.InitializeSeats(ctx, args[0], args[1], totalSeats); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Initialized %d seats\n", totalSeats)
			return nil
		},
	}
}

// seatKey extracts the (train id, date, seat number) positional triple.
func seatKey(args []string) (trainID, date, seatNumber string, err error) {
	if len(args) < 3 {
		return "", "", "", fmt.Errorf("train id, date, and seat number are required\n\nUsage: raildesk seat <command> <train-id> <date> <seat-number>")
	}
	if len(args) > 3 {
		return "", "", "", fmt.Errorf("unexpected argument: %s", args[3])
	}
	return args[0], args[1], args[2], nil
}
