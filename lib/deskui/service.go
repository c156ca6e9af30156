// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"context"

	"github.com/raildesk-project/raildesk/lib/api"
)

// Service is the slice of the Raildesk API the console needs. The
// production implementation is *api.Client; tests substitute a fake.
type Service interface {
	Trains(ctx context.Context) ([]api.Train, error)
	SearchTrains(ctx context.Context, query api.TrainQuery) ([]api.Train, error)
	CreateTrain(ctx context.Context, train api.Train) error
	UpdateTrain(ctx context.Context, trainID string, train api.Train) error
	DeleteTrain(ctx context.Context, trainID string) error

	Seats(ctx context.Context, trainID, departureDate string) ([]api.Seat, error)
	CreateSeat(ctx context.Context, seat api.Seat) error
	UpdateSeat(ctx context.Context, seat api.Seat) error
	DeleteSeat(ctx context.Context, trainID, departureDate, seatNumber string) error
	InitializeSeats(ctx context.Context, trainID, departureDate string, totalSeats int) error

	CreateBooking(ctx context.Context, request api.BookingRequest) (api.Booking, error)
	Bookings(ctx context.Context) ([]api.Booking, error)
	UserBookings(ctx context.Context, userID string) ([]api.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error

	Me(ctx context.Context) (api.User, error)
	Users(ctx context.Context) ([]api.User, error)
	UpdateUser(ctx context.Context, userID string, update api.UserUpdate) error
	DeleteUser(ctx context.Context, userID string) error
	SetUserRole(ctx context.Context, userID, role string) error
}

var _ Service = (*api.Client)(nil)

// Identity describes the operator the console is running as. It comes
// from the saved login session and decides tab visibility and which
// bookings are fetched.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the operator carries the ADMIN role. Any
// other role value gets the regular user surface.
func (identity Identity) IsAdmin() bool {
	return identity.Role == api.RoleAdmin
}
