// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the booking console.
type KeyMap struct {
	// Navigation (context-sensitive: list movement or seat grid
	// movement depending on the active tab).
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Tab switching.
	TabBook     key.Binding
	TabBookings key.Binding
	TabSeats    key.Binding
	TabTrains   key.Binding
	TabUsers    key.Binding

	// Filter.
	FilterActivate key.Binding // Enter filter mode.
	FilterClear    key.Binding // Clear filter / dismiss overlay / step back.

	// Actions. Meaning depends on the active tab; the help bar spells
	// out the active set.
	Select     key.Binding // Enter: pick train, confirm, submit form.
	ToggleSeat key.Binding // Space: toggle the seat under the cursor.
	Submit     key.Binding // s: submit the booking form.
	Cancel     key.Binding // c: cancel the selected booking.
	New        key.Binding // n: create (train, seat).
	Edit       key.Binding // e: edit (train, user, date).
	Delete     key.Binding // d: delete (train, seat, user).
	Initialize key.Binding // i: bulk seat initialization.
	Status     key.Binding // t: seat status dropdown.
	Role       key.Binding // p: account role dropdown.
	Refresh    key.Binding // r: re-fetch the active tab from the server.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k/h/l) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	TabBook: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "book"),
	),
	TabBookings: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "bookings"),
	),
	TabSeats: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "seats"),
	),
	TabTrains: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "trains"),
	),
	TabUsers: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "users"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	ToggleSeat: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "toggle seat"),
	),
	Submit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cancel booking"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Initialize: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "init seats"),
	),
	Status: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "status"),
	),
	Role: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "role"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
