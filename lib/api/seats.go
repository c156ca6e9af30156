// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Seats lists the seat inventory for a train+date pair.
func (client *Client) Seats(ctx context.Context, trainID, departureDate string) ([]Seat, error) {
	values := url.Values{}
	values.Set("trainId", trainID)
	values.Set("departureDate", departureDate)

	var seats []Seat
	if err := client.getJSON(ctx, "list seats", "/seats", values, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// AvailableSeatNumbers returns only the seat numbers currently
// AVAILABLE for a train+date, in inventory order. This is what the
// booking form feeds into the seat grid.
func (client *Client) AvailableSeatNumbers(ctx context.Context, trainID, departureDate string) ([]string, error) {
	seats, err := client.Seats(ctx, trainID, departureDate)
	if err != nil {
		return nil, err
	}
	var numbers []string
	for _, seat := range seats {
		if seat.Available() {
			numbers = append(numbers, seat.SeatNumber)
		}
	}
	return numbers, nil
}

// CreateSeat adds a single seat record via POST /seats.
func (client *Client) CreateSeat(ctx context.Context, seat Seat) error {
	payload := map[string]string{
		"trainId":       seat.TrainID,
		"departureDate": seat.DepartureDate,
		"seatNumber":    seat.SeatNumber,
		"status":        seat.Status,
	}
	return client.sendJSON(ctx, "create seat", http.MethodPost, "/seats", nil, payload, nil)
}

// UpdateSeat sets a seat's status via POST /seats/update. The seat is
// addressed by its composite key, not its id.
func (client *Client) UpdateSeat(ctx context.Context, seat Seat) error {
	payload := map[string]string{
		"trainId":       seat.TrainID,
		"departureDate": seat.DepartureDate,
		"seatNumber":    seat.SeatNumber,
		"status":        seat.Status,
	}
	return client.sendJSON(ctx, "update seat", http.MethodPost, "/seats/update", nil, payload, nil)
}

// DeleteSeat removes a seat record. The backend addresses the seat by
// composite key in the query string.
func (client *Client) DeleteSeat(ctx context.Context, trainID, departureDate, seatNumber string) error {
	values := url.Values{}
	values.Set("trainId", trainID)
	values.Set("departureDate", departureDate)
	values.Set("seatNumber", seatNumber)
	return client.sendJSON(ctx, "delete seat", http.MethodDelete, "/seats", values, nil, nil)
}

// InitializeSeats bulk-creates totalSeats seat records for a
// train+date via POST /seats/initialize. The backend numbers them
// 1..totalSeats and marks them AVAILABLE.
func (client *Client) InitializeSeats(ctx context.Context, trainID, departureDate string, totalSeats int) error {
	values := url.Values{}
	values.Set("trainId", trainID)
	values.Set("departureDate", departureDate)
	values.Set("totalSeats", strconv.Itoa(totalSeats))
	return client.sendJSON(ctx, "initialize seats", http.MethodPost, "/seats/initialize", values, nil, nil)
}
