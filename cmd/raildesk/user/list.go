// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package user

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
		Summary: "List every account",
		Usage:   "raildesk user list [flags]",
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

			users, err := connection.Client.Users(ctx)
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(users)
			}
			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tEMAIL\tNAME\tROLE")
			for _, account := range users {
				role := account.Role
				if role == "" {
					role = api.RoleUser
				}
				fmt.Fprintf(writer, "%s\t%s\t%s %s\t%s\n",
					account.ID, account.Email, account.FirstName, account.LastName, role)
			}
			writer.Flush()
			return nil
		},
	}
}

func getCommand() *cli.Command {
	var outputJSON bool

	return &cli.Command{
		Name:    "get",
		Summary: "Show one account",
		Usage:   "raildesk user get <user-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("get", pflag.ContinueOnError)
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("user id is required\n\nUsage: raildesk user get <user-id>")
			}
			userID := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			account, err := connection.Client.User(ctx, userID)
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(account)
			}
			fmt.Printf("%s\n", account.DisplayName())
			fmt.Printf("  id:      %s\n", account.ID)
			fmt.Printf("  role:    %s\n", account.Role)
			if account.Phone != "" {
				fmt.Printf("  phone:   %s\n", account.Phone)
			}
			if account.Address != "" {
				fmt.Printf("  address: %s\n", account.Address)
			}
			return nil
		},
	}
}
