// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raildesk-project/raildesk/lib/api"
)

// refreshKind names the data set a completed mutation invalidates.
type refreshKind int

const (
	refreshNone refreshKind = iota
	refreshBookings
	refreshSeats
	refreshTrains
	refreshUsers
)

// trainsLoadedMsg delivers the train catalog. search marks a
// server-side search result, which only feeds the trains tab; the
// full listing also refreshes the booking picker and the enrichment
// index.
type trainsLoadedMsg struct {
	trains []api.Train
	search bool
	err    error
}

// bookingsLoadedMsg delivers the bookings list. Admin sessions load
// every booking; user sessions load only their own.
type bookingsLoadedMsg struct {
	bookings []api.Booking
	err      error
}

// usersLoadedMsg delivers the account list, scoped by role.
type usersLoadedMsg struct {
	users []api.User
	err   error
}

// bookSeatsMsg delivers seat inventory for the booking form's seat
// grid. seq is the fetch sequence number assigned when the request was
// issued; responses whose seq no longer matches the current one are
// stale (the operator changed train or date in the meantime) and are
// dropped.
type bookSeatsMsg struct {
	seq   int
	seats []api.Seat
	err   error
}

// seatsLoadedMsg delivers seat inventory for the seat management tab.
type seatsLoadedMsg struct {
	seq   int
	seats []api.Seat
	err   error
}

// bookingCreatedMsg reports the outcome of a booking submission.
type bookingCreatedMsg struct {
	booking api.Booking
	err     error
}

// mutationResultMsg reports the outcome of a fire-and-forget mutation
// (cancel, seat edit, train edit, account edit). action is the short
// label shown in the status bar; itemID identifies the mutated record
// for local patching; refresh names the data set to re-fetch.
type mutationResultMsg struct {
	action  string
	itemID  string
	refresh refreshKind
	err     error
}

// statusFadeMsg clears the transient status bar notice.
type statusFadeMsg struct{}

// statusFadeDelay is how long status bar notices stay visible.
const statusFadeDelay = 4 * time.Second

func fadeStatus() tea.Cmd {
	return tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{}
	})
}

func loadTrains(service Service) tea.Cmd {
	return func() tea.Msg {
		trains, err := service.Trains(context.Background())
		return trainsLoadedMsg{trains: trains, err: err}
	}
}

func searchTrains(service Service, query api.TrainQuery) tea.Cmd {
	return func() tea.Msg {
		trains, err := service.SearchTrains(context.Background(), query)
		return trainsLoadedMsg{trains: trains, search: true, err: err}
	}
}

// loadBookings fetches the booking set the identity is allowed to see.
func loadBookings(service Service, identity Identity) tea.Cmd {
	return func() tea.Msg {
		var bookings []api.Booking
		var err error
		if identity.IsAdmin() {
			bookings, err = service.Bookings(context.Background())
		} else {
			bookings, err = service.UserBookings(context.Background(), identity.UserID)
		}
		return bookingsLoadedMsg{bookings: bookings, err: err}
	}
}

// loadUsers fetches the account set the identity is allowed to see:
// the full listing for admins, the caller's own record otherwise.
func loadUsers(service Service, identity Identity) tea.Cmd {
	return func() tea.Msg {
		if identity.IsAdmin() {
			users, err := service.Users(context.Background())
			return usersLoadedMsg{users: users, err: err}
		}
		self, err := service.Me(context.Background())
		if err != nil {
			return usersLoadedMsg{err: err}
		}
		return usersLoadedMsg{users: []api.User{self}}
	}
}

func loadBookSeats(service Service, seq int, trainID, departureDate string) tea.Cmd {
	return func() tea.Msg {
		seats, err := service.Seats(context.Background(), trainID, departureDate)
		return bookSeatsMsg{seq: seq, seats: seats, err: err}
	}
}

func loadInventorySeats(service Service, seq int, trainID, departureDate string) tea.Cmd {
	return func() tea.Msg {
		seats, err := service.Seats(context.Background(), trainID, departureDate)
		return seatsLoadedMsg{seq: seq, seats: seats, err: err}
	}
}

func createBooking(service Service, request api.BookingRequest) tea.Cmd {
	return func() tea.Msg {
		booking, err := service.CreateBooking(context.Background(), request)
		return bookingCreatedMsg{booking: booking, err: err}
	}
}

// cancelBooking cancels a booking. On success the bookings tab patches
// the local row to CANCELLED; seat inventory is deliberately not
// touched — the next seat fetch reflects whatever the server released.
func cancelBooking(service Service, bookingID string) tea.Cmd {
	return func() tea.Msg {
		err := service.CancelBooking(context.Background(), bookingID)
		return mutationResultMsg{action: "cancel booking", itemID: bookingID, refresh: refreshNone, err: err}
	}
}

func mutate(action, itemID string, refresh refreshKind, call func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		err := call(context.Background())
		return mutationResultMsg{action: action, itemID: itemID, refresh: refresh, err: err}
	}
}
