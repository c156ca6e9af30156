// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package train

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

	return &cli.Command{
		Name:    "list",
		Summary: "List every scheduled train",
		Usage:   "raildesk train list [flags]",
		Examples: []cli.Example{
			{
				Description: "List the full catalog",
				Command:     "raildesk train list",
			},
			{
				Description: "Machine-readable output",
				Command:     "raildesk train list --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
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

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			trains, err := connection.Client.Trains(ctx)
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(trains)
			}
			printTrains(trains)
			return nil
		},
	}
}

func searchCommand() *cli.Command {
	var outputJSON bool
	var query api.TrainQuery

	return &cli.Command{
		Name:    "search",
		Summary: "Search trains by number, route, or date",
		Description: `Search the catalog server-side. All criteria are optional and
combine with AND; with no criteria this is equivalent to "train list".

Exits 1 when no trains match, so scripts can branch on the result
without parsing output.`,
		Usage: "raildesk train search [flags]",
		Examples: []cli.Example{
			{
				Description: "Trains from Colombo to Kandy on a date",
				Command:     "raildesk train search --source Colombo --destination Kandy --date 2026-09-10",
			},
			{
				Description: "Look up a train by number",
				Command:     "raildesk train search --number 1005",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("search", pflag.ContinueOnError)
			flags.StringVar(&query.TrainNumber, "number", "", "train number")
			flags.StringVar(&query.Source, "source", "", "origin station")
			flags.StringVar(&query.Destination, "destination", "", "destination station")
			flags.StringVar(&query.DepartureDate, "date", "", "departure date (YYYY-MM-DD)")
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

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			trains, err := connection.Client.SearchTrains(ctx, query)
			if err != nil {
				return err
			}
			return writeSearchResults(trains, outputJSON)
		},
	}
}

// writeSearchResults prints the search outcome. An empty text-mode
// result prints its own diagnostic and reports exit code 1 so shell
// scripts can test for matches; JSON mode always exits 0 and lets the
// caller inspect the array.
func writeSearchResults(trains []api.Train, outputJSON bool) error {
	if outputJSON {
		return cli.WriteJSON(trains)
	}
	if len(trains) == 0 {
		fmt.Fprintln(os.Stderr, "no trains match")
		return &cli.ExitError{Code: 1}
	}
	printTrains(trains)
	return nil
}

// printTrains writes the catalog as an aligned table to stdout.
func printTrains(trains []api.Train) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NUMBER\tNAME\tROUTE\tDATE\tDEPARTS\tARRIVES\tSEATS\tID")
	for _, train := range trains {
		fmt.Fprintf(writer, "%d\t%s\t%s → %s\t%s\t%s\t%s\t%d\t%s\n",
			train.TrainNumber, train.Name,
			train.Source, train.Destination,
			train.DepartureDate, train.DepartureTime, train.ArrivalTime,
			train.TotalSeats, train.ID)
	}
	writer.Flush()
}
