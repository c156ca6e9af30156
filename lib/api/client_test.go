// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testClient creates a test HTTP server that mimics the booking
// backend and returns a Client connected to it. The server is cleaned
// up when the test completes.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewForTesting(&testServerTransport{
		server:    server,
		transport: http.DefaultTransport,
	}, "test-token")
	return client
}

// testServerTransport rewrites requests to target the test server.
type testServerTransport struct {
	server    *httptest.Server
	transport http.RoundTripper
}

func (transport *testServerTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request.URL.Scheme = "http"
	request.URL.Host = transport.server.Listener.Addr().String()
	return transport.transport.RoundTrip(request)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(writer http.ResponseWriter, request *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
			t.Errorf("decoding login payload: %v", err)
		}
		if payload["email"] != "ops@raildesk.example" || payload["password"] != "hunter2" {
			writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(LoginResponse{Token: "issued-token"})
	})

	client := testClient(t, mux)
	token, err := client.Login(context.Background(), "ops@raildesk.example", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "issued-token" {
		t.Errorf("token = %q, want issued-token", token)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
	})

	client := testClient(t, mux)
	_, err := client.Login(context.Background(), "ops@raildesk.example", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestMeCarriesBearerToken(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/me", func(writer http.ResponseWriter, request *http.Request) {
		if got := request.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want Bearer test-token", got)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(User{ID: "u-1", Email: "ops@raildesk.example", Role: RoleAdmin})
	})

	client := testClient(t, mux)
	user, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.ID != "u-1" {
		t.Errorf("ID = %q, want u-1", user.ID)
	}
	if !user.IsAdmin() {
		t.Error("expected admin role")
	}
}

func TestSearchTrainsQueryParameters(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/trains/search", func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		if query.Get("source") != "Colombo" || query.Get("destination") != "Kandy" {
			t.Errorf("query = %v, want source=Colombo destination=Kandy", query)
		}
		if query.Has("trainNumber") || query.Has("departureDate") {
			t.Errorf("unset parameters leaked into query: %v", query)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode([]Train{
			{ID: "t-1", TrainNumber: 1005, Source: "Colombo", Destination: "Kandy"},
		})
	})

	client := testClient(t, mux)
	trains, err := client.SearchTrains(context.Background(), TrainQuery{Source: "Colombo", Destination: "Kandy"})
	if err != nil {
		t.Fatalf("SearchTrains: %v", err)
	}
	if len(trains) != 1 || trains[0].TrainNumber != 1005 {
		t.Fatalf("trains = %+v, want one train 1005", trains)
	}
}

func TestSearchTrainsEmptyQueryUsesListing(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/trains", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode([]Train{{ID: "t-1"}, {ID: "t-2"}})
	})
	mux.HandleFunc("GET /api/v1/trains/search", func(writer http.ResponseWriter, request *http.Request) {
		t.Error("empty query must not hit /trains/search")
	})

	client := testClient(t, mux)
	trains, err := client.SearchTrains(context.Background(), TrainQuery{})
	if err != nil {
		t.Fatalf("SearchTrains: %v", err)
	}
	if len(trains) != 2 {
		t.Fatalf("got %d trains, want 2", len(trains))
	}
}

func TestAvailableSeatNumbers(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/seats", func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		if query.Get("trainId") != "t-1" || query.Get("departureDate") != "2026-10-01" {
			t.Errorf("query = %v", query)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode([]Seat{
			{TrainID: "t-1", SeatNumber: "1", Status: SeatAvailable},
			{TrainID: "t-1", SeatNumber: "2", Status: SeatBooked},
			{TrainID: "t-1", SeatNumber: "3", Status: SeatAvailable},
		})
	})

	client := testClient(t, mux)
	numbers, err := client.AvailableSeatNumbers(context.Background(), "t-1", "2026-10-01")
	if err != nil {
		t.Fatalf("AvailableSeatNumbers: %v", err)
	}
	if len(numbers) != 2 || numbers[0] != "1" || numbers[1] != "3" {
		t.Errorf("numbers = %v, want [1 3]", numbers)
	}
}

func TestInitializeSeats(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/seats/initialize", func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		if query.Get("trainId") != "t-1" || query.Get("departureDate") != "2026-10-01" || query.Get("totalSeats") != "40" {
			t.Errorf("query = %v", query)
		}
		writer.WriteHeader(http.StatusCreated)
	})

	client := testClient(t, mux)
	if err := client.InitializeSeats(context.Background(), "t-1", "2026-10-01", 40); err != nil {
		t.Fatalf("InitializeSeats: %v", err)
	}
}

func TestCreateBookingPayload(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/bookings", func(writer http.ResponseWriter, request *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		if payload["trainId"] != "t-1" || payload["userId"] != "u-1" || payload["journeyDate"] != "2026-10-01" {
			t.Errorf("payload = %v", payload)
		}
		seats, ok := payload["seatNumbers"].([]any)
		if !ok || len(seats) != 2 || seats[0] != "3" || seats[1] != "4" {
			t.Errorf("seatNumbers = %v, want [3 4]", payload["seatNumbers"])
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]any{
			"id": "b-9", "trainId": "t-1", "userId": "u-1",
			"journeyDate": "2026-10-01", "seatNumbers": []string{"3", "4"},
			"status": "CONFIRMED",
		})
	})

	client := testClient(t, mux)
	booking, err := client.CreateBooking(context.Background(), BookingRequest{
		TrainID:     "t-1",
		UserID:      "u-1",
		JourneyDate: "2026-10-01",
		SeatNumbers: []string{"3", "4"},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.ID != "b-9" || booking.SeatList() != "3, 4" {
		t.Errorf("booking = %+v", booking)
	}
}

func TestCancelBooking(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/bookings/b-9/cancel", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	client := testClient(t, mux)
	if err := client.CancelBooking(context.Background(), "b-9"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
}

func TestServerErrorIncludesBody(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/bookings", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusConflict)
		writer.Write([]byte(`{"error":"seat 3 already booked"}`))
	})

	client := testClient(t, mux)
	_, err := client.CreateBooking(context.Background(), BookingRequest{TrainID: "t-1"})
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
	var apiError *Error
	if !errors.As(err, &apiError) {
		t.Fatalf("err = %T, want *Error", err)
	}
	if apiError.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", apiError.Status)
	}
	if apiError.Body == "" {
		t.Error("error body should be carried for diagnostics")
	}
}

func TestDeleteSeatCompositeKey(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/v1/seats", func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		if query.Get("trainId") != "t-1" || query.Get("departureDate") != "2026-10-01" || query.Get("seatNumber") != "12" {
			t.Errorf("query = %v", query)
		}
		writer.WriteHeader(http.StatusNoContent)
	})

	client := testClient(t, mux)
	if err := client.DeleteSeat(context.Background(), "t-1", "2026-10-01", "12"); err != nil {
		t.Fatalf("DeleteSeat: %v", err)
	}
}
