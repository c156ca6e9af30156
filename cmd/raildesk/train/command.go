// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package train implements the "raildesk train" command group: listing
// and searching the train catalog, and the admin-only schedule
// mutations (create, update, delete).
package train

import "github.com/raildesk-project/raildesk/cmd/raildesk/cli"

// Command returns the "train" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "train",
		Summary: "Train catalog commands",
		Description: `List, search, and manage scheduled trains.

Listing and searching work for every authenticated user. Creating,
updating, and deleting trains require the ADMIN role; the backend
rejects the request otherwise.`,
		Subcommands: []*cli.Command{
			listCommand(),
			searchCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}
