// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/api"
)

// Theme defines the color palette and visual properties for Raildesk's
// terminal UI. All colors use lipgloss ANSI 256-color codes for broad
// terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and semantic categories that recur across tabs: seat availability,
// booking state, account roles.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Seat grid.
	SeatAvailable lipgloss.Color // Seats open for selection.
	SeatBooked    lipgloss.Color // Seats already taken on the journey date.
	SeatSelected  lipgloss.Color // Seats the operator has picked this session.

	// Booking state.
	BookingActive    lipgloss.Color
	BookingCancelled lipgloss.Color

	// Account roles.
	RoleAdmin lipgloss.Color
	RoleUser  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	AccentColor      lipgloss.Color

	// Transient status bar messages.
	ErrorForeground   lipgloss.Color
	SuccessForeground lipgloss.Color

	// Floating menus.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

// SeatColor returns the color for a seat status string. Unknown
// statuses render as faint text.
func (theme Theme) SeatColor(status string) lipgloss.Color {
	switch status {
	case api.SeatAvailable:
		return theme.SeatAvailable
	case api.SeatBooked:
		return theme.SeatBooked
	default:
		return theme.FaintText
	}
}

// BookingColor returns the color for a booking status string. Any
// status other than CANCELLED counts as active.
func (theme Theme) BookingColor(status string) lipgloss.Color {
	if status == api.StatusCancelled {
		return theme.BookingCancelled
	}
	return theme.BookingActive
}

// RoleColor returns the color for an account role. Anything other
// than ADMIN renders with the regular user color.
func (theme Theme) RoleColor(role string) lipgloss.Color {
	if role == api.RoleAdmin {
		return theme.RoleAdmin
	}
	return theme.RoleUser
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	SeatAvailable: lipgloss.Color("114"), // green
	SeatBooked:    lipgloss.Color("196"), // red
	SeatSelected:  lipgloss.Color("220"), // amber

	BookingActive:    lipgloss.Color("114"), // green
	BookingCancelled: lipgloss.Color("245"), // gray

	RoleAdmin: lipgloss.Color("141"), // light purple
	RoleUser:  lipgloss.Color("75"),  // blue

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	AccentColor:      lipgloss.Color("220"),

	ErrorForeground:   lipgloss.Color("196"),
	SuccessForeground: lipgloss.Color("114"),

	TooltipForeground: lipgloss.Color("252"),
	TooltipBackground: lipgloss.Color("237"),
}
