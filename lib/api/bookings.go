// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
)

// BookingRequest is the payload for POST /bookings. UserID is the
// passenger the booking is for: a regular user always submits their
// own id, an admin may submit any user's.
type BookingRequest struct {
	TrainID     string   `json:"trainId"`
	UserID      string   `json:"userId"`
	JourneyDate string   `json:"journeyDate"`
	SeatNumbers []string `json:"seatNumbers"`
}

// CreateBooking books seats. The backend enforces seat availability
// and conflicts; a rejection surfaces as an *Error.
func (client *Client) CreateBooking(ctx context.Context, request BookingRequest) (Booking, error) {
	var booking Booking
	err := client.sendJSON(ctx, "create booking", http.MethodPost, "/bookings", nil, request, &booking)
	if err != nil {
		return Booking{}, err
	}
	return booking, nil
}

// Bookings lists every booking. Admin-scoped server-side.
func (client *Client) Bookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := client.getJSON(ctx, "list bookings", "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UserBookings lists one user's bookings via GET /bookings/user/{id}.
func (client *Client) UserBookings(ctx context.Context, userID string) ([]Booking, error) {
	path := "/bookings/user/" + url.PathEscape(userID)
	var bookings []Booking
	if err := client.getJSON(ctx, "list user bookings", path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking transitions a booking to CANCELLED via
// POST /bookings/{id}/cancel. Whether the backend frees the booked
// seats atomically is its contract, not ours — callers re-fetch seat
// inventory rather than patching seat state locally.
func (client *Client) CancelBooking(ctx context.Context, bookingID string) error {
	path := "/bookings/" + url.PathEscape(bookingID) + "/cancel"
	return client.sendJSON(ctx, "cancel booking", http.MethodPost, path, nil, nil, nil)
}
