// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package trainindex maintains an in-memory index of trains by id and
// enriches bookings with denormalized train display fields. The
// booking endpoints return train ids; views want "12345 Colombo →
// Kandy". One index, fetched once per view load, serves every lookup.
package trainindex

import (
	"strings"

	"github.com/raildesk-project/raildesk/lib/api"
)

// Index is a snapshot of the train roster keyed by id. Construct with
// New; a nil Index degrades every lookup to the raw id.
type Index struct {
	byID map[string]api.Train
}

// New builds an Index from a train listing.
func New(trains []api.Train) *Index {
	byID := make(map[string]api.Train, len(trains))
	for _, train := range trains {
		byID[train.ID] = train
	}
	return &Index{byID: byID}
}

// Get returns the train for an id.
func (index *Index) Get(trainID string) (api.Train, bool) {
	if index == nil {
		return api.Train{}, false
	}
	train, ok := index.byID[trainID]
	return train, ok
}

// Len returns the number of indexed trains.
func (index *Index) Len() int {
	if index == nil {
		return 0
	}
	return len(index.byID)
}

// Describe returns the display string for a train id, falling back to
// the raw id when the train is unknown (e.g. deleted after booking).
func (index *Index) Describe(trainID string) string {
	if train, ok := index.Get(trainID); ok {
		return train.Describe()
	}
	if trainID == "" {
		return "unknown train"
	}
	return trainID
}

// Enriched is a booking augmented with denormalized display fields —
// the "enriched booking" every list view renders and filters.
type Enriched struct {
	api.Booking

	// TrainLabel is the display form of the booked train.
	TrainLabel string
}

// SearchText returns the lowercase blob the free-text booking filter
// matches against. When admin is false the user identity fields are
// excluded — a passenger's own list has no use for them.
func (enriched Enriched) SearchText(admin bool) string {
	fields := []string{
		enriched.TrainLabel,
		enriched.Status,
		enriched.JourneyDate,
		strings.Join(enriched.Seats, " "),
	}
	if admin {
		fields = append(fields,
			enriched.UserFullName,
			enriched.UserEmail,
			enriched.Username,
			enriched.UserID,
		)
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// Enrich attaches train display fields to each booking. Bookings for
// trains missing from the index keep whatever denormalized fields the
// backend sent, falling back to the raw train id.
func (index *Index) Enrich(bookings []api.Booking) []Enriched {
	enriched := make([]Enriched, len(bookings))
	for position, booking := range bookings {
		label := ""
		if train, ok := index.Get(booking.TrainID); ok {
			label = train.Describe()
		} else if booking.TrainNumber != "" || booking.TrainName != "" {
			label = strings.TrimSpace(booking.TrainNumber + " " + booking.TrainName)
		} else {
			label = index.Describe(booking.TrainID)
		}
		enriched[position] = Enriched{Booking: booking, TrainLabel: label}
	}
	return enriched
}
