// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"testing"
)

func TestBookingShapeFolding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		payload  string
		wantID   string
		wantDate string
		want     []string
	}{
		{
			name:     "single seatNumber field",
			payload:  `{"id":"b-1","trainId":"t-1","date":"2026-10-01","seatNumber":"7","status":"CONFIRMED"}`,
			wantID:   "b-1",
			wantDate: "2026-10-01",
			want:     []string{"7"},
		},
		{
			name:     "seats array with bookingId",
			payload:  `{"bookingId":"b-2","id":"legacy","journeyDate":"2026-10-02","seats":["1","2"],"status":"CONFIRMED"}`,
			wantID:   "b-2",
			wantDate: "2026-10-02",
			want:     []string{"1", "2"},
		},
		{
			name:     "seatNumbers array",
			payload:  `{"id":"b-3","journeyDate":"2026-10-03","seatNumbers":["3","4"],"status":"CANCELLED"}`,
			wantID:   "b-3",
			wantDate: "2026-10-03",
			want:     []string{"3", "4"},
		},
		{
			name:     "no seat fields at all",
			payload:  `{"id":"b-4","journeyDate":"2026-10-04","status":"CONFIRMED"}`,
			wantID:   "b-4",
			wantDate: "2026-10-04",
			want:     nil,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			var booking Booking
			if err := json.Unmarshal([]byte(testCase.payload), &booking); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if booking.ID != testCase.wantID {
				t.Errorf("ID = %q, want %q", booking.ID, testCase.wantID)
			}
			if booking.JourneyDate != testCase.wantDate {
				t.Errorf("JourneyDate = %q, want %q", booking.JourneyDate, testCase.wantDate)
			}
			if len(booking.Seats) != len(testCase.want) {
				t.Fatalf("Seats = %v, want %v", booking.Seats, testCase.want)
			}
			for index, seat := range testCase.want {
				if booking.Seats[index] != seat {
					t.Errorf("Seats[%d] = %q, want %q", index, booking.Seats[index], seat)
				}
			}
		})
	}
}

func TestBookingCancelled(t *testing.T) {
	t.Parallel()

	if (Booking{Status: "CONFIRMED"}).Cancelled() {
		t.Error("CONFIRMED should not count as cancelled")
	}
	if !(Booking{Status: StatusCancelled}).Cancelled() {
		t.Error("CANCELLED should count as cancelled")
	}
}

func TestBookingUserLabelFallback(t *testing.T) {
	t.Parallel()

	booking := Booking{UserID: "u-1"}
	if got := booking.UserLabel(); got != "u-1" {
		t.Errorf("UserLabel = %q, want u-1", got)
	}
	booking.Username = "amara"
	if got := booking.UserLabel(); got != "amara" {
		t.Errorf("UserLabel = %q, want amara", got)
	}
	booking.UserEmail = "amara@example.com"
	if got := booking.UserLabel(); got != "amara@example.com" {
		t.Errorf("UserLabel = %q, want email", got)
	}
	booking.UserFullName = "Amara Perera"
	if got := booking.UserLabel(); got != "Amara Perera" {
		t.Errorf("UserLabel = %q, want full name", got)
	}
}

func TestSeatDateFieldFallback(t *testing.T) {
	t.Parallel()

	var seat Seat
	if err := json.Unmarshal([]byte(`{"trainId":"t-1","seatNumber":"5","date":"2026-10-01","status":"AVAILABLE"}`), &seat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if seat.DepartureDate != "2026-10-01" {
		t.Errorf("DepartureDate = %q, want fallback from date field", seat.DepartureDate)
	}
	if !seat.Available() {
		t.Error("seat should be available")
	}
}
