// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
)

func cancelCommand() *cli.Command {
	return &cli.Command{
		Name:    "cancel",
		Summary: "Cancel a booking",
		Description: `Cancel a booking and release its seats. The booking record
survives with status CANCELLED.

Regular users can only cancel their own bookings; the backend rejects
anything else.`,
		Usage: "raildesk booking cancel <booking-id>",
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("booking id is required\n\nUsage: raildesk booking cancel <booking-id>")
			}
			bookingID := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			connection, err := cli.Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := connection.Client.CancelBooking(ctx, bookingID); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Cancelled booking %s\n", bookingID)
			return nil
		},
	}
}
