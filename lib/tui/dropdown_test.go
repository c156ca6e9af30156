// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	"github.com/raildesk-project/raildesk/lib/api"
)

func statusDropdown() *DropdownOverlay {
	return &DropdownOverlay{
		Options: []DropdownOption{
			{Label: "Available", Value: api.SeatAvailable},
			{Label: "Booked", Value: api.SeatBooked},
		},
		AnchorX: 10,
		AnchorY: 4,
		Field:   "status",
		ItemID:  "seat-1",
	}
}

func TestDropdownCursorWraps(t *testing.T) {
	dropdown := statusDropdown()

	dropdown.MoveUp()
	if dropdown.Cursor != 1 {
		t.Fatalf("MoveUp from top: cursor = %d, want 1", dropdown.Cursor)
	}
	dropdown.MoveDown()
	if dropdown.Cursor != 0 {
		t.Fatalf("MoveDown from bottom: cursor = %d, want 0", dropdown.Cursor)
	}
	if dropdown.Selected().Value != api.SeatAvailable {
		t.Fatalf("Selected() = %q, want %q", dropdown.Selected().Value, api.SeatAvailable)
	}
}

func TestDropdownHitTesting(t *testing.T) {
	dropdown := statusDropdown()

	if !dropdown.Contains(10, 4) {
		t.Error("top-left corner should be inside the dropdown")
	}
	if dropdown.Contains(9, 4) {
		t.Error("one column left of the anchor should be outside")
	}
	if dropdown.Contains(10, 6) {
		t.Error("below the last option should be outside")
	}

	if got := dropdown.OptionAtY(5); got != 1 {
		t.Errorf("OptionAtY(5) = %d, want 1", got)
	}
	if got := dropdown.OptionAtY(7); got != -1 {
		t.Errorf("OptionAtY(7) = %d, want -1", got)
	}
}

func TestThemeSemanticColors(t *testing.T) {
	theme := DefaultTheme

	if theme.SeatColor(api.SeatAvailable) != theme.SeatAvailable {
		t.Error("AVAILABLE seats should use the available color")
	}
	if theme.SeatColor("MAINTENANCE") != theme.FaintText {
		t.Error("unknown seat statuses should render faint")
	}
	if theme.BookingColor(api.StatusCancelled) != theme.BookingCancelled {
		t.Error("CANCELLED bookings should use the cancelled color")
	}
	if theme.BookingColor("CONFIRMED") != theme.BookingActive {
		t.Error("non-cancelled bookings should use the active color")
	}
	if theme.RoleColor(api.RoleAdmin) != theme.RoleAdmin {
		t.Error("ADMIN accounts should use the admin color")
	}
	if theme.RoleColor("AGENT") != theme.RoleUser {
		t.Error("unrecognized roles should fall back to the user color")
	}
}
