// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"strings"
)

// Booking is the canonical booking shape. The backend has shipped at
// least three spellings of the seat list (seatNumber, seats,
// seatNumbers), two of the journey date (date, journeyDate), and two
// of the identifier (id, bookingId); UnmarshalJSON folds them all into
// this one shape so nothing downstream branches on wire format.
type Booking struct {
	ID     string
	UserID string

	// Denormalized user display fields, present on admin-scoped
	// responses and absent on per-user ones.
	UserFullName string
	UserEmail    string
	Username     string

	TrainID string
	// Denormalized train display fields, when the backend includes them.
	TrainNumber string
	TrainName   string

	JourneyDate string
	Seats       []string
	Status      string
}

// bookingWire is the union of every field spelling the backend has
// used for a booking.
type bookingWire struct {
	ID           string   `json:"id"`
	BookingID    string   `json:"bookingId"`
	UserID       string   `json:"userId"`
	UserFullName string   `json:"userFullName"`
	UserEmail    string   `json:"userEmail"`
	Username     string   `json:"username"`
	TrainID      string   `json:"trainId"`
	TrainNumber  string   `json:"trainNumber"`
	TrainName    string   `json:"trainName"`
	Date         string   `json:"date"`
	JourneyDate  string   `json:"journeyDate"`
	SeatNumber   string   `json:"seatNumber"`
	Seats        []string `json:"seats"`
	SeatNumbers  []string `json:"seatNumbers"`
	Status       string   `json:"status"`
}

// UnmarshalJSON implements the shape folding. Precedence follows what
// the backend actually populates: bookingId over id, journeyDate over
// date, seats over seatNumbers over the single seatNumber.
func (booking *Booking) UnmarshalJSON(data []byte) error {
	var raw bookingWire
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	booking.ID = raw.BookingID
	if booking.ID == "" {
		booking.ID = raw.ID
	}
	booking.UserID = raw.UserID
	booking.UserFullName = raw.UserFullName
	booking.UserEmail = raw.UserEmail
	booking.Username = raw.Username
	booking.TrainID = raw.TrainID
	booking.TrainNumber = raw.TrainNumber
	booking.TrainName = raw.TrainName

	booking.JourneyDate = raw.JourneyDate
	if booking.JourneyDate == "" {
		booking.JourneyDate = raw.Date
	}

	switch {
	case len(raw.Seats) > 0:
		booking.Seats = raw.Seats
	case len(raw.SeatNumbers) > 0:
		booking.Seats = raw.SeatNumbers
	case raw.SeatNumber != "":
		booking.Seats = []string{raw.SeatNumber}
	default:
		booking.Seats = nil
	}

	booking.Status = raw.Status
	return nil
}

// MarshalJSON writes the canonical spelling (id, journeyDate,
// seatNumbers). Only tests and the --json CLI output serialize
// bookings; the backend never receives one of these.
func (booking Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           string   `json:"id"`
		UserID       string   `json:"userId,omitempty"`
		UserFullName string   `json:"userFullName,omitempty"`
		UserEmail    string   `json:"userEmail,omitempty"`
		Username     string   `json:"username,omitempty"`
		TrainID      string   `json:"trainId,omitempty"`
		TrainNumber  string   `json:"trainNumber,omitempty"`
		TrainName    string   `json:"trainName,omitempty"`
		JourneyDate  string   `json:"journeyDate,omitempty"`
		Seats        []string `json:"seatNumbers,omitempty"`
		Status       string   `json:"status,omitempty"`
	}{
		ID:           booking.ID,
		UserID:       booking.UserID,
		UserFullName: booking.UserFullName,
		UserEmail:    booking.UserEmail,
		Username:     booking.Username,
		TrainID:      booking.TrainID,
		TrainNumber:  booking.TrainNumber,
		TrainName:    booking.TrainName,
		JourneyDate:  booking.JourneyDate,
		Seats:        booking.Seats,
		Status:       booking.Status,
	})
}

// Cancelled reports whether the booking has been cancelled. Any other
// status counts as active.
func (booking Booking) Cancelled() bool {
	return booking.Status == StatusCancelled
}

// SeatList returns the seats joined for display: "3, 4".
func (booking Booking) SeatList() string {
	return strings.Join(booking.Seats, ", ")
}

// UserLabel returns the best available user identity for display.
func (booking Booking) UserLabel() string {
	switch {
	case booking.UserFullName != "":
		return booking.UserFullName
	case booking.UserEmail != "":
		return booking.UserEmail
	case booking.Username != "":
		return booking.Username
	default:
		return booking.UserID
	}
}
