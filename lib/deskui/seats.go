// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/api"
	"github.com/raildesk-project/raildesk/lib/filter"
	"github.com/raildesk-project/raildesk/lib/tui"
)

// seatsState is the seat inventory tab (admin only). Inventory is
// keyed by (train, departure date); the operator picks that scope with
// the query form and then works on the seat rows.
type seatsState struct {
	trainID string
	date    string

	seq      int
	all      []api.Seat
	filtered []api.Seat

	// statusFilter narrows rows to one status; empty shows all.
	statusFilter string

	cursor  int
	scroll  int
	loading bool
}

func newSeatsState() seatsState {
	return seatsState{}
}

// seatStatusCycle is the status filter rotation: everything, then one
// status at a time.
var seatStatusCycle = []string{"", api.SeatAvailable, api.SeatBooked}

// handleSeatsKeys processes keys on the seat inventory tab.
func (model *Model) handleSeatsKeys(message tea.KeyMsg) tea.Cmd {
	seats := &model.seats

	switch {
	case key.Matches(message, model.keys.Up):
		if seats.cursor > 0 {
			seats.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if seats.cursor < len(seats.filtered)-1 {
			seats.cursor++
		}

	case key.Matches(message, model.keys.Left), key.Matches(message, model.keys.Right):
		model.cycleSeatStatusFilter(key.Matches(message, model.keys.Right))

	case key.Matches(message, model.keys.Edit), key.Matches(message, model.keys.Select):
		trainField := newTextField("train id", seats.trainID)
		dateField := newTextField("departure date", seats.date)
		dateField.placeholder = "YYYY-MM-DD"
		model.activeForm = newForm(formSeatsQuery, "Select seat inventory", trainField, dateField)
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.New):
		if seats.trainID == "" {
			return model.reportErrorText("pick a train and date first (e)")
		}
		model.activeForm = newForm(formSeatAdd, "Add seat", newTextField("seat number", ""))
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.Initialize):
		if seats.trainID == "" {
			return model.reportErrorText("pick a train and date first (e)")
		}
		countField := newTextField("total seats", "")
		countField.placeholder = "e.g. 40"
		model.activeForm = newForm(formSeatInit, "Initialize seat inventory", countField)
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.Status):
		return model.openSeatStatusDropdown()

	case key.Matches(message, model.keys.Delete):
		return model.requestDeleteSeat()
	}
	seats.scroll = clampScroll(seats.cursor, seats.scroll, model.listHeight())
	return nil
}

// cycleSeatStatusFilter rotates the status filter.
func (model *Model) cycleSeatStatusFilter(forward bool) {
	seats := &model.seats
	current := 0
	for index, status := range seatStatusCycle {
		if status == seats.statusFilter {
			current = index
		}
	}
	if forward {
		current = (current + 1) % len(seatStatusCycle)
	} else {
		current = (current + len(seatStatusCycle) - 1) % len(seatStatusCycle)
	}
	seats.statusFilter = seatStatusCycle[current]
	model.applySeatsFilter()
}

// applySeatsFilter narrows seat rows by the free-text query (seat
// number or status substring) and the status rotation.
func (model *Model) applySeatsFilter() {
	seats := &model.seats
	query := ""
	if model.activeTab == TabSeats {
		query = model.filter.Input
	}
	matched := filter.Apply(seats.all, query, func(seat api.Seat) []string {
		return []string{seat.SeatNumber, seat.Status}
	})
	if seats.statusFilter != "" {
		var narrowed []api.Seat
		for _, seat := range matched {
			if seat.Status == seats.statusFilter {
				narrowed = append(narrowed, seat)
			}
		}
		matched = narrowed
	}
	seats.filtered = matched
	if seats.cursor >= len(seats.filtered) {
		seats.cursor = 0
		seats.scroll = 0
	}
}

// reloadInventory re-fetches the current inventory scope.
func (model *Model) reloadInventory() tea.Cmd {
	seats := &model.seats
	if seats.trainID == "" || seats.date == "" {
		return nil
	}
	seats.seq++
	seats.loading = true
	return loadInventorySeats(model.service, seats.seq, seats.trainID, seats.date)
}

// handleInventorySeats folds a seat inventory response into the tab.
// Stale responses (the operator re-scoped in the meantime) are dropped.
func (model *Model) handleInventorySeats(message seatsLoadedMsg) tea.Cmd {
	seats := &model.seats
	if message.seq != seats.seq {
		return nil
	}
	seats.loading = false
	if message.err != nil {
		return model.reportError(message.err)
	}

	sorted := make([]api.Seat, len(message.seats))
	copy(sorted, message.seats)
	sort.Slice(sorted, func(i, j int) bool {
		return seatNumberLess(sorted[i].SeatNumber, sorted[j].SeatNumber)
	})
	seats.all = sorted
	model.applySeatsFilter()
	return nil
}

// submitSeatsQuery applies the inventory scope form.
func (model *Model) submitSeatsQuery(form *formState) tea.Cmd {
	trainID := form.value(0)
	date := form.value(1)
	if trainID == "" || date == "" {
		return model.reportErrorText("train id and departure date are required")
	}
	seats := &model.seats
	seats.trainID = trainID
	seats.date = date
	seats.all = nil
	seats.filtered = nil
	seats.cursor = 0
	seats.scroll = 0
	return model.reloadInventory()
}

// submitSeatAdd creates a single seat in the current scope.
func (model *Model) submitSeatAdd(form *formState) tea.Cmd {
	seatNumber := form.value(0)
	if seatNumber == "" {
		return model.reportErrorText("seat number is required")
	}
	seats := &model.seats
	seat := api.Seat{
		TrainID:       seats.trainID,
		DepartureDate: seats.date,
		SeatNumber:    seatNumber,
		Status:        api.SeatAvailable,
	}
	service := model.service
	return mutate("add seat "+seatNumber, seatNumber, refreshSeats, func(ctx context.Context) error {
		return service.CreateSeat(ctx, seat)
	})
}

// submitSeatInit bulk-creates inventory for the current scope.
func (model *Model) submitSeatInit(form *formState) tea.Cmd {
	totalSeats, err := strconv.Atoi(form.value(0))
	if err != nil || totalSeats < 1 {
		return model.reportErrorText("total seats must be a positive number")
	}
	seats := &model.seats
	service := model.service
	trainID, date := seats.trainID, seats.date
	return mutate(fmt.Sprintf("initialize %d seats", totalSeats), "", refreshSeats, func(ctx context.Context) error {
		return service.InitializeSeats(ctx, trainID, date, totalSeats)
	})
}

// openSeatStatusDropdown opens the status dropdown for the selected
// seat row.
func (model *Model) openSeatStatusDropdown() tea.Cmd {
	seats := &model.seats
	if seats.cursor >= len(seats.filtered) {
		return nil
	}
	seat := seats.filtered[seats.cursor]

	cursor := 0
	if seat.Status == api.SeatBooked {
		cursor = 1
	}
	model.activeDropdown = &tui.DropdownOverlay{
		Options: []tui.DropdownOption{
			{Label: "Available", Value: api.SeatAvailable},
			{Label: "Booked", Value: api.SeatBooked},
		},
		Cursor:  cursor,
		AnchorX: 6,
		AnchorY: contentTop + 2 + (seats.cursor - seats.scroll),
		Field:   "seat-status",
		ItemID:  seat.SeatNumber,
	}
	model.focusRegion = FocusDropdown
	return nil
}

// applySeatStatus dispatches a status change picked in the dropdown.
func (model *Model) applySeatStatus(seatNumber, status string) tea.Cmd {
	seats := &model.seats
	var target *api.Seat
	for index := range seats.all {
		if seats.all[index].SeatNumber == seatNumber {
			target = &seats.all[index]
			break
		}
	}
	if target == nil {
		return nil
	}
	if target.Status == status {
		return nil
	}

	updated := *target
	updated.Status = status
	service := model.service
	return mutate("set seat "+seatNumber+" "+strings.ToLower(status), seatNumber, refreshSeats,
		func(ctx context.Context) error {
			return service.UpdateSeat(ctx, updated)
		})
}

// requestDeleteSeat confirms deletion of the selected seat row.
func (model *Model) requestDeleteSeat() tea.Cmd {
	seats := &model.seats
	if seats.cursor >= len(seats.filtered) {
		return nil
	}
	seat := seats.filtered[seats.cursor]
	service := model.service
	action := mutate("delete seat "+seat.SeatNumber, seat.SeatNumber, refreshSeats,
		func(ctx context.Context) error {
			return service.DeleteSeat(ctx, seat.TrainID, seat.DepartureDate, seat.SeatNumber)
		})
	model.confirm(fmt.Sprintf("Delete seat %s on train %s (%s)?",
		seat.SeatNumber, seat.TrainID, seat.DepartureDate), action)
	return nil
}

// renderSeats renders the seat inventory tab.
func (model *Model) renderSeats() string {
	seats := &model.seats
	theme := model.theme
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	if seats.trainID == "" {
		return faintStyle.Render("no inventory scope — press e to pick a train and date")
	}

	scopeLabel := model.trainIndex.Describe(seats.trainID)
	header := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).
		Render(scopeLabel+"  "+seats.date) + "   " +
		faintStyle.Render("status: "+displaySeatFilter(seats.statusFilter)+" (←/→)")

	var lines []string
	lines = append(lines, header, "")

	switch {
	case seats.loading && len(seats.filtered) == 0:
		lines = append(lines, faintStyle.Render("loading inventory…"))
	case len(seats.filtered) == 0:
		lines = append(lines, faintStyle.Render("no seats — press i to initialize inventory"))
	default:
		selectedStyle := lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground)
		visible := model.listHeight() - 2
		if visible < 1 {
			visible = 1
		}
		var rows []string
		for index := seats.scroll; index < seats.scroll+visible && index < len(seats.filtered); index++ {
			seat := seats.filtered[index]
			status := lipgloss.NewStyle().
				Foreground(theme.SeatColor(seat.Status)).
				Render(fmt.Sprintf("%-10s", seat.Status))
			row := fmt.Sprintf("  seat %-5s %s", seat.SeatNumber, status)
			if index == seats.cursor {
				row = selectedStyle.Render(row)
			}
			rows = append(rows, row)
		}
		lines = append(lines, model.attachScrollbar(rows, len(seats.filtered), visible, seats.scroll))
	}
	return strings.Join(lines, "\n")
}

func displaySeatFilter(status string) string {
	if status == "" {
		return "all"
	}
	return strings.ToLower(status)
}
