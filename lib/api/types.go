// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Roles as the backend reports them. Anything other than RoleAdmin is
// treated as a regular user when gating admin-only surfaces; the
// backend remains authoritative either way.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Seat statuses. The backend owns the set; these two are the ones the
// client renders and submits.
const (
	SeatAvailable = "AVAILABLE"
	SeatBooked    = "BOOKED"
)

// StatusCancelled is the terminal booking status. Cancellation is a
// soft state transition — the booking record survives.
const StatusCancelled = "CANCELLED"

// Train is a scheduled train run. Identity (ID) is immutable once
// created; the remaining fields are admin-editable.
type Train struct {
	ID            string `json:"id"`
	TrainNumber   int    `json:"trainNumber"`
	Name          string `json:"name,omitempty"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	TotalSeats    int    `json:"totalSeats"`
}

// Describe returns the display form used throughout the UI:
// "12345 Colombo → Kandy".
func (train Train) Describe() string {
	return strconv.Itoa(train.TrainNumber) + " " + train.Source + " → " + train.Destination
}

// SearchText returns the lowercase blob the free-text train filter
// matches against.
func (train Train) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		strconv.Itoa(train.TrainNumber),
		train.Name,
		train.Source,
		train.Destination,
		train.DepartureDate,
	}, " "))
}

// Seat is one unit of seat inventory, identified by the composite key
// (TrainID, DepartureDate, SeatNumber).
type Seat struct {
	ID            string `json:"id,omitempty"`
	TrainID       string `json:"trainId"`
	DepartureDate string `json:"departureDate"`
	SeatNumber    string `json:"seatNumber"`
	Status        string `json:"status"`
}

// UnmarshalJSON accepts both field spellings the backend has used for
// the departure date ("departureDate" and the older "date").
func (seat *Seat) UnmarshalJSON(data []byte) error {
	type wire struct {
		ID            string `json:"id"`
		TrainID       string `json:"trainId"`
		DepartureDate string `json:"departureDate"`
		Date          string `json:"date"`
		SeatNumber    string `json:"seatNumber"`
		Status        string `json:"status"`
	}
	var raw wire
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	seat.ID = raw.ID
	seat.TrainID = raw.TrainID
	seat.SeatNumber = raw.SeatNumber
	seat.Status = raw.Status
	seat.DepartureDate = raw.DepartureDate
	if seat.DepartureDate == "" {
		seat.DepartureDate = raw.Date
	}
	return nil
}

// Available reports whether the seat can currently be booked.
func (seat Seat) Available() bool {
	return seat.Status == SeatAvailable
}

// User is an account on the booking platform.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Role      string `json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the ADMIN role.
func (user User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

// DisplayName returns "First Last (email)", degrading to whichever
// identifying fields are present.
func (user User) DisplayName() string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	switch {
	case name != "" && user.Email != "":
		return name + " (" + user.Email + ")"
	case name != "":
		return name
	case user.Email != "":
		return user.Email
	default:
		return user.ID
	}
}

// SearchText returns the lowercase blob the free-text user filter
// matches against: name, email, phone, address, role, and id.
func (user User) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Address,
		user.Role,
		user.ID,
	}, " "))
}
