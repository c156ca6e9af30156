// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/api"
	"github.com/raildesk-project/raildesk/lib/filter"
	"github.com/raildesk-project/raildesk/lib/trainindex"
	"github.com/raildesk-project/raildesk/lib/tui"
)

// bookingsState is the bookings tab: the fetched rows (raw), the rows
// enriched with train labels, and the filtered view of them.
type bookingsState struct {
	raw      []api.Booking
	enriched []trainindex.Enriched
	filtered []trainindex.Enriched
	cursor   int
	scroll   int
	loaded   bool
	loading  bool
}

// applyBookings enriches fresh booking rows with train labels and
// re-applies the filter.
func (model *Model) applyBookings(bookings []api.Booking) {
	model.bookings.raw = bookings
	model.bookings.enriched = model.trainIndex.Enrich(bookings)
	model.applyBookingsFilter()
}

// applyBookingsFilter narrows the bookings list by the filter query.
// The searchable text is role-scoped: passenger identity fields only
// participate for admins, who are the only ones seeing other people's
// bookings in the first place.
func (model *Model) applyBookingsFilter() {
	bookings := &model.bookings
	query := ""
	if model.activeTab == TabBookings {
		query = model.filter.Input
	}
	admin := model.identity.IsAdmin()
	bookings.filtered = filter.Apply(bookings.enriched, query, func(entry trainindex.Enriched) []string {
		return []string{entry.SearchText(admin)}
	})
	if bookings.cursor >= len(bookings.filtered) {
		bookings.cursor = 0
		bookings.scroll = 0
	}
}

// markBookingCancelled patches the local copy of a booking to
// CANCELLED after the server confirmed the cancellation. Seat
// inventory is not touched; the next fetch reflects what the server
// released.
func (model *Model) markBookingCancelled(bookingID string) {
	for index := range model.bookings.raw {
		if model.bookings.raw[index].ID == bookingID {
			model.bookings.raw[index].Status = api.StatusCancelled
		}
	}
	model.applyBookings(model.bookings.raw)
}

// handleBookingsKeys processes keys on the bookings tab.
func (model *Model) handleBookingsKeys(message tea.KeyMsg) tea.Cmd {
	bookings := &model.bookings

	switch {
	case key.Matches(message, model.keys.Up):
		if bookings.cursor > 0 {
			bookings.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if bookings.cursor < len(bookings.filtered)-1 {
			bookings.cursor++
		}
	case key.Matches(message, model.keys.Cancel):
		return model.requestCancelBooking()
	}
	bookings.scroll = clampScroll(bookings.cursor, bookings.scroll, model.listHeight())
	return nil
}

// requestCancelBooking guards and confirms cancellation of the
// selected booking. A CANCELLED booking offers no cancel, and a
// non-admin can only cancel their own rows.
func (model *Model) requestCancelBooking() tea.Cmd {
	bookings := &model.bookings
	if bookings.cursor >= len(bookings.filtered) {
		return nil
	}
	entry := bookings.filtered[bookings.cursor]

	if entry.Cancelled() {
		return model.reportErrorText("booking is already cancelled")
	}
	if !model.identity.IsAdmin() && entry.UserID != "" && entry.UserID != model.identity.UserID {
		return model.reportErrorText("only admins can cancel other passengers' bookings")
	}

	summary := fmt.Sprintf("Cancel booking %s (%s, seats %s)?",
		entry.ID, entry.TrainLabel, entry.SeatList())
	model.confirm(summary, cancelBooking(model.service, entry.ID))
	return nil
}

// renderBookings renders the bookings tab.
func (model *Model) renderBookings() string {
	bookings := &model.bookings
	theme := model.theme
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	if bookings.loading && len(bookings.filtered) == 0 {
		return faintStyle.Render("loading bookings…")
	}
	if len(bookings.filtered) == 0 {
		if model.filter.Input != "" {
			return faintStyle.Render("no bookings match")
		}
		return faintStyle.Render("no bookings yet — press 1 to book a journey")
	}

	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	admin := model.identity.IsAdmin()
	visible := model.listHeight()
	var lines []string
	for index := bookings.scroll; index < bookings.scroll+visible && index < len(bookings.filtered); index++ {
		entry := bookings.filtered[index]

		status := lipgloss.NewStyle().
			Foreground(theme.BookingColor(entry.Status)).
			Render(fmt.Sprintf("%-9s", displayBookingStatus(entry.Status)))

		row := fmt.Sprintf("  %s %-30s %s  seats %s",
			status, tui.TruncateLabel(entry.TrainLabel, 30),
			entry.JourneyDate, entry.SeatList())
		if admin {
			row += "  " + faintStyle.Render(entry.UserLabel())
		}
		row = tui.TruncateLabel(row, model.width-1)
		if index == bookings.cursor {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}
	return model.attachScrollbar(lines, len(bookings.filtered), visible, bookings.scroll)
}

// displayBookingStatus maps an empty status (older backend rows) to a
// readable label.
func displayBookingStatus(status string) string {
	if status == "" {
		return "BOOKED"
	}
	return status
}
