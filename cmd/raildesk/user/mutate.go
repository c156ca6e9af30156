// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package user

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

func updateCommand() *cli.Command {
	var update api.UserUpdate

	return &cli.Command{
		Name:    "update",
		Summary: "Edit an account's profile fields",
		Description: `Update an account's profile. Only the flags you pass change; the
role is managed separately with "raildesk user role".`,
		Usage: "raildesk user update <user-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("update", pflag.ContinueOnError)
			flags.StringVar(&update.FirstName, "first-name", "", "first name")
			flags.StringVar(&update.LastName, "last-name", "", "last name")
			flags.StringVar(&update.Email, "email", "", "email address")
			flags.StringVar(&update.Phone, "phone", "", "phone number")
			flags.StringVar(&update.Address, "address", "", "postal address")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("user id is required\n\nUsage: raildesk user update <user-id> [flags]")
			}
			userID := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}
			if update == (api.UserUpdate{}) {
				return fmt.Errorf("nothing to update (pass at least one profile flag)")
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.UpdateUser(ctx, userID, update); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Updated user %s\n", userID)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Summary: "Delete an account",
		Description: `Delete an account. The backend refuses to delete the account the
session authenticates as, so an admin cannot lock themselves out.`,
		Usage: "raildesk user delete <user-id>",
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("user id is required\n\nUsage: raildesk user delete <user-id>")
			}
			userID := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}
			if userID == connection.Session.UserID {
				return fmt.Errorf("refusing to delete your own account")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.DeleteUser(ctx, userID); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Deleted user %s\n", userID)
			return nil
		},
	}
}

func roleCommand() *cli.Command {
	return &cli.Command{
		Name:    "role",
		Summary: "Change an account's role",
		Usage:   "raildesk user role <user-id> <USER|ADMIN>",
		Examples: []cli.Example{
			{
				Description: "Promote an account to admin",
				Command:     "raildesk user role usr-42 ADMIN",
			},
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("user id and role are required\n\nUsage: raildesk user role <user-id> <USER|ADMIN>")
			}
			if len(args) > 2 {
				return fmt.Errorf("unexpected argument: %s", args[2])
			}
			userID := args[0]
			role := strings.ToUpper(args[1])
			if role != api.RoleUser && role != api.RoleAdmin {
				return fmt.Errorf("invalid role %q (expected %s or %s)", args[1], api.RoleUser, api.RoleAdmin)
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}
			if userID == connection.Session.UserID {
				return fmt.Errorf("refusing to change your own role")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.SetUserRole(ctx, userID, role); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "User %s is now %s\n", userID, role)
			return nil
		},
	}
}
