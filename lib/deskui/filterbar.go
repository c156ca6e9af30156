// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/tui"
)

// FilterBar holds the free-text filter for the active tab. The tab
// chooses the base set (bookings, seats, trains, accounts) and the
// filter narrows it client-side without round-tripping to the server.
// Matching is case-insensitive substring via lib/filter.
type FilterBar struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// HandleRune processes a character typed while the filter is active.
func (bar *FilterBar) HandleRune(character rune) {
	bar.Input += string(character)
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (bar *FilterBar) HandleBackspace() bool {
	if len(bar.Input) == 0 {
		return false
	}
	runes := []rune(bar.Input)
	bar.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (bar *FilterBar) Clear() {
	bar.Input = ""
	bar.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text. When
// inactive with no text, returns empty string (hidden).
func (bar *FilterBar) View(theme tui.Theme, width int) string {
	if !bar.Active && bar.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if bar.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + bar.Input + cursor)
	}

	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + bar.Input)
}
