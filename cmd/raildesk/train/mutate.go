// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package train

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
	"github.com/raildesk-project/raildesk/lib/api"
)

// trainFlags registers the schedule fields shared by create and
// update. The returned flag set writes directly into train.
func trainFlags(name string, train *api.Train) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.IntVar(&train.TrainNumber, "number", 0, "train number")
	flags.StringVar(&train.Name, "name", "", "train name")
	flags.StringVar(&train.Source, "source", "", "origin station")
	flags.StringVar(&train.Destination, "destination", "", "destination station")
	flags.StringVar(&train.DepartureDate, "date", "", "departure date (YYYY-MM-DD)")
	flags.StringVar(&train.DepartureTime, "departs", "", "departure time (HH:MM)")
	flags.StringVar(&train.ArrivalTime, "arrives", "", "arrival time (HH:MM)")
	flags.IntVar(&train.TotalSeats, "seats", 0, "total seat count")
	return flags
}

func validateTrain(train api.Train) error {
	if train.TrainNumber <= 0 {
		return fmt.Errorf("--number must be a positive train number")
	}
	if train.Source == "" || train.Destination == "" {
		return fmt.Errorf("--source and --destination are required")
	}
	if train.DepartureDate == "" {
		return fmt.Errorf("--date is required")
	}
	return nil
}

func createCommand() *cli.Command {
	var train api.Train

	return &cli.Command{
		Name:    "create",
		Summary: "Add a train to the schedule (admin)",
		Usage:   "raildesk train create --number <n> --source <station> --destination <station> --date <date> [flags]",
		Examples: []cli.Example{
			{
				Description: "Schedule a new run",
				Command:     "raildesk train create --number 1005 --name \"Podi Menike\" --source Colombo --destination Badulla --date 2026-09-10 --departs 05:55 --arrives 16:05 --seats 240",
			},
		},
		Flags: func() *pflag.FlagSet { return trainFlags("create", &train) },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if err := validateTrain(train); err != nil {
				return err
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.CreateTrain(ctx, train); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Created train %s\n", train.Describe())
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	var train api.Train

	return &cli.Command{
		Name:    "update",
		Summary: "Update a scheduled train (admin)",
		Description: `Replace a train's schedule fields. The backend treats this as a
full update, so pass every field, not only the changed ones.`,
		Usage: "raildesk train update <train-id> [flags]",
		Flags: func() *pflag.FlagSet { return trainFlags("update", &train) },
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("train id is required\n\nUsage: raildesk train update <train-id> [flags]")
			}
			trainID := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}
			if err := validateTrain(train); err != nil {
				return err
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.UpdateTrain(ctx, trainID, train); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Updated train %s\n", trainID)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Summary: "Remove a train from the schedule (admin)",
		Description: `Delete a train. Its seat inventory and bookings go with it, so
this is for runs that were entered in error, not for cancellations.`,
		Usage: "raildesk train delete <train-id>",
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("train id is required\n\nUsage: raildesk train delete <train-id>")
			}
			trainID := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.DeleteTrain(ctx, trainID); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Deleted train %s\n", trainID)
			return nil
		},
	}
}
