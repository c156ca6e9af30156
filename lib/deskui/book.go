// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/api"
	"github.com/raildesk-project/raildesk/lib/filter"
	"github.com/raildesk-project/raildesk/lib/seatmap"
	"github.com/raildesk-project/raildesk/lib/trainindex"
	"github.com/raildesk-project/raildesk/lib/tui"
)

// bookState is the booking form: train selection, journey date,
// passenger (admins can book on behalf of any account), and the seat
// grid.
type bookState struct {
	// Train picking.
	all      []api.Train
	filtered []api.Train
	cursor   int
	scroll   int

	// Selected journey. train is nil while the operator is still
	// picking from the catalog.
	train *api.Train
	date  string

	// passengerIndex indexes into the account list; -1 books for the
	// operator themselves. Non-admin sessions always book for self.
	passengerIndex int

	// Seat grid. seatSeq tags each inventory fetch; responses with a
	// stale seq are dropped. preserve keeps the current selection
	// across a refresh (it is never set when train or date changed).
	grid       *seatmap.Map
	gridCursor int
	seatSeq    int
	loading    bool
	preserve   bool

	submitting bool
}

func newBookState() bookState {
	return bookState{passengerIndex: -1}
}

// applyTrains folds a fresh train catalog into every consumer: the
// booking form's picker, the trains tab, and the enrichment index.
func (model *Model) applyTrains(trains []api.Train) {
	model.trainIndex = trainindex.New(trains)
	model.book.all = trains
	model.applyBookFilter()
	model.applyTrainCatalog(trains)

	// Bookings already on screen pick up the new train labels.
	if model.bookings.loaded {
		model.applyBookings(model.bookings.raw)
	}
}

// applyBookFilter narrows the train picker by the filter query.
func (model *Model) applyBookFilter() {
	query := ""
	if model.activeTab == TabBook {
		query = model.filter.Input
	}
	model.book.filtered = filter.Apply(model.book.all, query, func(train api.Train) []string {
		return []string{train.SearchText()}
	})
	if model.book.cursor >= len(model.book.filtered) {
		model.book.cursor = 0
		model.book.scroll = 0
	}
}

// handleBookKeys processes keys on the booking tab.
func (model *Model) handleBookKeys(message tea.KeyMsg) tea.Cmd {
	book := &model.book

	if book.train == nil {
		return model.handleTrainPickKeys(message)
	}

	switch {
	case message.Type == tea.KeyEsc:
		// Back to the train picker. Selection state belongs to the
		// abandoned journey, so it goes too.
		book.train = nil
		book.date = ""
		book.grid = nil
		book.gridCursor = 0
		book.preserve = false

	case key.Matches(message, model.keys.Up):
		model.moveSeatCursor(-model.seatsPerRow)
	case key.Matches(message, model.keys.Down):
		model.moveSeatCursor(model.seatsPerRow)
	case key.Matches(message, model.keys.Left):
		model.moveSeatCursor(-1)
	case key.Matches(message, model.keys.Right):
		model.moveSeatCursor(1)

	case key.Matches(message, model.keys.ToggleSeat):
		if book.grid != nil {
			seats := book.grid.Seats()
			if book.gridCursor < len(seats) {
				book.grid.Toggle(seats[book.gridCursor])
			}
		}

	case key.Matches(message, model.keys.Edit):
		dateField := newTextField("journey date", book.date)
		dateField.placeholder = "YYYY-MM-DD"
		model.activeForm = newForm(formBookDate, "Change journey date", dateField)
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.Role):
		return model.openPassengerDropdown()

	case key.Matches(message, model.keys.Submit):
		return model.submitBooking()
	}
	return nil
}

// handleTrainPickKeys processes keys while the operator is choosing a
// train from the catalog.
func (model *Model) handleTrainPickKeys(message tea.KeyMsg) tea.Cmd {
	book := &model.book

	switch {
	case key.Matches(message, model.keys.Up):
		if book.cursor > 0 {
			book.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if book.cursor < len(book.filtered)-1 {
			book.cursor++
		}
	case key.Matches(message, model.keys.Select):
		if book.cursor < len(book.filtered) {
			return model.selectTrain(book.filtered[book.cursor])
		}
	}
	book.scroll = clampScroll(book.cursor, book.scroll, model.listHeight())
	return nil
}

// selectTrain locks in a train for booking. Any previous seat
// selection belongs to the old journey and is discarded; the seat
// inventory fetch for the new journey starts immediately.
func (model *Model) selectTrain(train api.Train) tea.Cmd {
	book := &model.book
	selected := train
	book.train = &selected
	book.date = train.DepartureDate
	book.grid = nil
	book.gridCursor = 0
	book.preserve = false
	return model.fetchBookSeats()
}

// fetchBookSeats issues a seat inventory fetch for the current
// journey, bumping the sequence number so any in-flight response for
// an older journey is dropped on arrival.
func (model *Model) fetchBookSeats() tea.Cmd {
	book := &model.book
	if book.train == nil || book.date == "" {
		return nil
	}
	book.seatSeq++
	book.loading = true
	return loadBookSeats(model.service, book.seatSeq, book.train.ID, book.date)
}

// reloadBookSeats is a refresh of the current journey's inventory
// that keeps the operator's selection where the seats are still open.
func (model *Model) reloadBookSeats() tea.Cmd {
	model.book.preserve = true
	return model.fetchBookSeats()
}

// handleBookSeats folds a seat inventory response into the grid.
// Stale responses (sequence mismatch) are dropped: a newer fetch for a
// different train or date is already in flight or applied.
func (model *Model) handleBookSeats(message bookSeatsMsg) tea.Cmd {
	book := &model.book
	if message.seq != book.seatSeq {
		return nil
	}
	book.loading = false
	if message.err != nil {
		return model.reportError(message.err)
	}

	var previousSelection []string
	if book.preserve && book.grid != nil {
		previousSelection = book.grid.Selected()
	}
	book.preserve = false

	numbers, booked := splitSeatInventory(message.seats)
	book.grid = seatmap.New(numbers, booked)
	if book.gridCursor >= len(numbers) {
		book.gridCursor = 0
	}
	for _, seatNumber := range previousSelection {
		book.grid.Toggle(seatNumber)
	}
	return nil
}

// splitSeatInventory orders the inventory for display and separates
// out the seats that are not bookable. Seat numbers sort numerically
// when they parse as integers ("2" before "10"), lexically otherwise.
func splitSeatInventory(seats []api.Seat) (numbers, booked []string) {
	sorted := make([]api.Seat, len(seats))
	copy(sorted, seats)
	sort.Slice(sorted, func(i, j int) bool {
		return seatNumberLess(sorted[i].SeatNumber, sorted[j].SeatNumber)
	})
	for _, seat := range sorted {
		numbers = append(numbers, seat.SeatNumber)
		if !seat.Available() {
			booked = append(booked, seat.SeatNumber)
		}
	}
	return numbers, booked
}

func seatNumberLess(a, b string) bool {
	numberA, errA := strconv.Atoi(a)
	numberB, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return numberA < numberB
	}
	return a < b
}

// moveSeatCursor moves the grid cursor by delta positions, clamped to
// the grid.
func (model *Model) moveSeatCursor(delta int) {
	book := &model.book
	if book.grid == nil || book.grid.Len() == 0 {
		return
	}
	position := book.gridCursor + delta
	if position < 0 {
		position = 0
	}
	if position >= book.grid.Len() {
		position = book.grid.Len() - 1
	}
	book.gridCursor = position
}

// openPassengerDropdown lets an admin pick who the booking is for.
func (model *Model) openPassengerDropdown() tea.Cmd {
	if !model.identity.IsAdmin() {
		return nil
	}
	options := []tui.DropdownOption{{Label: "myself (" + model.identity.Email + ")", Value: ""}}
	for _, user := range model.users.all {
		options = append(options, tui.DropdownOption{Label: user.DisplayName(), Value: user.ID})
	}
	cursor := model.book.passengerIndex + 1
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
	}
	model.activeDropdown = &tui.DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		AnchorX: 4,
		AnchorY: 4,
		Field:   "passenger",
	}
	model.focusRegion = FocusDropdown
	return nil
}

// setPassenger applies a passenger dropdown selection locally.
func (model *Model) setPassenger(userID string) {
	model.book.passengerIndex = -1
	for index, user := range model.users.all {
		if user.ID == userID {
			model.book.passengerIndex = index
			return
		}
	}
}

// passengerLabel names who the booking will belong to.
func (model *Model) passengerLabel() string {
	book := &model.book
	if book.passengerIndex >= 0 && book.passengerIndex < len(model.users.all) {
		return model.users.all[book.passengerIndex].DisplayName()
	}
	return "myself (" + model.identity.Email + ")"
}

// passengerID returns the account the booking is created for.
func (model *Model) passengerID() string {
	book := &model.book
	if book.passengerIndex >= 0 && book.passengerIndex < len(model.users.all) {
		return model.users.all[book.passengerIndex].ID
	}
	return model.identity.UserID
}

// submitBookDate applies a date change from the date form. A changed
// date invalidates the selection: those seats were for the old date.
func (model *Model) submitBookDate(form *formState) tea.Cmd {
	date := form.value(0)
	if date == "" {
		return model.reportErrorText("journey date is required")
	}
	book := &model.book
	if book.train == nil || date == book.date {
		return nil
	}
	book.date = date
	book.grid = nil
	book.gridCursor = 0
	book.preserve = false
	return model.fetchBookSeats()
}

// submitBooking validates the form and arms the confirmation prompt.
// The no-seats case is rejected here, before anything touches the
// network.
func (model *Model) submitBooking() tea.Cmd {
	book := &model.book
	if book.train == nil {
		return nil
	}
	if book.date == "" {
		return model.reportErrorText("journey date is required")
	}
	if book.grid == nil || book.grid.SelectedCount() == 0 {
		return model.reportErrorText("select at least one seat")
	}
	if book.submitting {
		return nil
	}

	selected := book.grid.Selected()
	request := api.BookingRequest{
		TrainID:     book.train.ID,
		UserID:      model.passengerID(),
		JourneyDate: book.date,
		SeatNumbers: selected,
	}
	summary := fmt.Sprintf("Book %s on %s (%s) for %s — seats %s?",
		pluralSeats(len(selected)), book.train.Describe(), book.date,
		model.passengerLabel(), strings.Join(selected, ", "))

	model.confirm(summary, createBooking(model.service, request))
	book.submitting = true
	return nil
}

func pluralSeats(count int) string {
	if count == 1 {
		return "1 seat"
	}
	return fmt.Sprintf("%d seats", count)
}

// handleBookingCreated folds the submission outcome back into the
// form. Success clears the form for the next booking; failure keeps
// everything so the operator can adjust and retry.
func (model *Model) handleBookingCreated(message bookingCreatedMsg) tea.Cmd {
	book := &model.book
	book.submitting = false
	if message.err != nil {
		return model.reportError(message.err)
	}

	// Capture the notice details before the form resets for the next
	// booking.
	date := message.booking.JourneyDate
	if date == "" {
		date = book.date
	}
	notice := fmt.Sprintf("booked %s on %s (%s) for %s — seats %s",
		pluralSeats(len(message.booking.Seats)), book.train.Describe(),
		date, model.passengerLabel(), message.booking.SeatList())
	book.train = nil
	book.date = ""
	book.grid = nil
	book.gridCursor = 0
	book.passengerIndex = -1

	commands := []tea.Cmd{model.reportNotice(notice)}
	if model.bookings.loaded {
		model.bookings.loading = true
		commands = append(commands, loadBookings(model.service, model.identity))
	}
	return tea.Batch(commands...)
}

// renderBook renders the booking tab.
func (model *Model) renderBook() string {
	book := &model.book
	if book.train == nil {
		return model.renderTrainPicker()
	}

	theme := model.theme
	headerStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	var lines []string
	lines = append(lines, headerStyle.Render(book.train.Describe()))
	lines = append(lines,
		faintStyle.Render("date: ")+book.date+
			faintStyle.Render("   passenger: ")+model.passengerLabel())
	lines = append(lines, "")

	switch {
	case book.loading:
		lines = append(lines, faintStyle.Render("loading seats…"))
	case book.grid == nil || book.grid.Len() == 0:
		lines = append(lines, faintStyle.Render("no seats on this journey — ask an admin to initialize inventory"))
	default:
		lines = append(lines, model.renderSeatGrid()...)
		lines = append(lines, "")
		selected := book.grid.Selected()
		if len(selected) == 0 {
			lines = append(lines, faintStyle.Render("no seats selected"))
		} else {
			lines = append(lines, faintStyle.Render("selected: ")+strings.Join(selected, ", "))
		}
	}
	return strings.Join(lines, "\n")
}

// renderTrainPicker renders the train catalog list.
func (model *Model) renderTrainPicker() string {
	book := &model.book
	theme := model.theme
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	if model.trains.loading && len(book.filtered) == 0 {
		return faintStyle.Render("loading trains…")
	}
	if len(book.filtered) == 0 {
		return faintStyle.Render("no trains match")
	}

	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	visible := model.listHeight()
	var lines []string
	for index := book.scroll; index < book.scroll+visible && index < len(book.filtered); index++ {
		train := book.filtered[index]
		row := fmt.Sprintf("  %-40s %s  %s → %s",
			train.Describe(), train.DepartureDate,
			train.DepartureTime, train.ArrivalTime)
		row = tui.TruncateLabel(row, model.width-1)
		if index == book.cursor {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}
	return model.attachScrollbar(lines, len(book.filtered), visible, book.scroll)
}

// renderSeatGrid renders the seat grid, one styled cell per seat.
func (model *Model) renderSeatGrid() []string {
	book := &model.book
	theme := model.theme

	availableStyle := lipgloss.NewStyle().Foreground(theme.SeatAvailable)
	bookedStyle := lipgloss.NewStyle().Foreground(theme.SeatBooked)
	selectedStyle := lipgloss.NewStyle().Foreground(theme.SeatSelected).Bold(true)
	cursorStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	seats := book.grid.Seats()
	var lines []string
	for rowStart := 0; rowStart < len(seats); rowStart += model.seatsPerRow {
		var cells []string
		for offset := 0; offset < model.seatsPerRow && rowStart+offset < len(seats); offset++ {
			position := rowStart + offset
			seatNumber := seats[position]

			cell := fmt.Sprintf("[%3s]", seatNumber)
			switch {
			case position == book.gridCursor:
				cell = cursorStyle.Render(cell)
			case book.grid.IsSelected(seatNumber):
				cell = selectedStyle.Render(cell)
			case book.grid.IsDisabled(seatNumber):
				cell = bookedStyle.Render(cell)
			default:
				cell = availableStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		lines = append(lines, " "+strings.Join(cells, " "))
	}

	legend := lipgloss.NewStyle().Foreground(theme.HelpText).Render(
		"available") + "  " +
		lipgloss.NewStyle().Foreground(theme.SeatBooked).Render("booked") + "  " +
		lipgloss.NewStyle().Foreground(theme.SeatSelected).Render("selected")
	lines = append(lines, "", " "+legend)
	return lines
}
