// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raildesk-project/raildesk/lib/api"
)

// fakeService is an in-memory Service that records mutation calls.
type fakeService struct {
	trains   []api.Train
	seats    map[string][]api.Seat // keyed by trainID + "|" + date
	bookings []api.Booking
	users    []api.User

	seatsErr error

	createdBookings []api.BookingRequest
	cancelled       []string
	updatedSeats    []api.Seat
	deletedSeats    []string
	initialized     []int
	roleChanges     map[string]string
	deletedUsers    []string
	updatedUsers    []string
	createdTrains   []api.Train
	updatedTrains   []string
	deletedTrains   []string
}

func (fake *fakeService) Trains(ctx context.Context) ([]api.Train, error) {
	return fake.trains, nil
}

func (fake *fakeService) SearchTrains(ctx context.Context, query api.TrainQuery) ([]api.Train, error) {
	return fake.trains, nil
}

func (fake *fakeService) CreateTrain(ctx context.Context, train api.Train) error {
	fake.createdTrains = append(fake.createdTrains, train)
	return nil
}

func (fake *fakeService) UpdateTrain(ctx context.Context, trainID string, train api.Train) error {
	fake.updatedTrains = append(fake.updatedTrains, trainID)
	return nil
}

func (fake *fakeService) DeleteTrain(ctx context.Context, trainID string) error {
	fake.deletedTrains = append(fake.deletedTrains, trainID)
	return nil
}

func (fake *fakeService) Seats(ctx context.Context, trainID, departureDate string) ([]api.Seat, error) {
	if fake.seatsErr != nil {
		return nil, fake.seatsErr
	}
	return fake.seats[trainID+"|"+departureDate], nil
}

func (fake *fakeService) CreateSeat(ctx context.Context, seat api.Seat) error {
	return nil
}

func (fake *fakeService) UpdateSeat(ctx context.Context, seat api.Seat) error {
	fake.updatedSeats = append(fake.updatedSeats, seat)
	return nil
}

func (fake *fakeService) DeleteSeat(ctx context.Context, trainID, departureDate, seatNumber string) error {
	fake.deletedSeats = append(fake.deletedSeats, seatNumber)
	return nil
}

func (fake *fakeService) InitializeSeats(ctx context.Context, trainID, departureDate string, totalSeats int) error {
	fake.initialized = append(fake.initialized, totalSeats)
	return nil
}

func (fake *fakeService) CreateBooking(ctx context.Context, request api.BookingRequest) (api.Booking, error) {
	fake.createdBookings = append(fake.createdBookings, request)
	return api.Booking{
		ID:          "bkg-new",
		UserID:      request.UserID,
		TrainID:     request.TrainID,
		JourneyDate: request.JourneyDate,
		Seats:       request.SeatNumbers,
	}, nil
}

func (fake *fakeService) Bookings(ctx context.Context) ([]api.Booking, error) {
	return fake.bookings, nil
}

func (fake *fakeService) UserBookings(ctx context.Context, userID string) ([]api.Booking, error) {
	var mine []api.Booking
	for _, booking := range fake.bookings {
		if booking.UserID == userID {
			mine = append(mine, booking)
		}
	}
	return mine, nil
}

func (fake *fakeService) CancelBooking(ctx context.Context, bookingID string) error {
	fake.cancelled = append(fake.cancelled, bookingID)
	return nil
}

func (fake *fakeService) Me(ctx context.Context) (api.User, error) {
	if len(fake.users) == 0 {
		return api.User{}, nil
	}
	return fake.users[0], nil
}

func (fake *fakeService) Users(ctx context.Context) ([]api.User, error) {
	return fake.users, nil
}

func (fake *fakeService) UpdateUser(ctx context.Context, userID string, update api.UserUpdate) error {
	fake.updatedUsers = append(fake.updatedUsers, userID)
	return nil
}

func (fake *fakeService) DeleteUser(ctx context.Context, userID string) error {
	fake.deletedUsers = append(fake.deletedUsers, userID)
	return nil
}

func (fake *fakeService) SetUserRole(ctx context.Context, userID, role string) error {
	if fake.roleChanges == nil {
		fake.roleChanges = make(map[string]string)
	}
	fake.roleChanges[userID] = role
	return nil
}

func newFakeService() *fakeService {
	return &fakeService{
		trains: []api.Train{
			{ID: "trn-1", TrainNumber: 1005, Source: "Colombo", Destination: "Kandy",
				DepartureDate: "2026-09-10", DepartureTime: "08:00", ArrivalTime: "11:30", TotalSeats: 4},
			{ID: "trn-2", TrainNumber: 1012, Source: "Galle", Destination: "Colombo",
				DepartureDate: "2026-09-11", DepartureTime: "06:15", ArrivalTime: "09:00", TotalSeats: 2},
		},
		seats: map[string][]api.Seat{
			"trn-1|2026-09-10": {
				{TrainID: "trn-1", DepartureDate: "2026-09-10", SeatNumber: "1", Status: api.SeatAvailable},
				{TrainID: "trn-1", DepartureDate: "2026-09-10", SeatNumber: "2", Status: api.SeatBooked},
				{TrainID: "trn-1", DepartureDate: "2026-09-10", SeatNumber: "3", Status: api.SeatAvailable},
				{TrainID: "trn-1", DepartureDate: "2026-09-10", SeatNumber: "4", Status: api.SeatAvailable},
			},
			"trn-1|2026-09-12": {
				{TrainID: "trn-1", DepartureDate: "2026-09-12", SeatNumber: "1", Status: api.SeatAvailable},
			},
		},
		bookings: []api.Booking{
			{ID: "bkg-1", UserID: "usr-1", TrainID: "trn-1", JourneyDate: "2026-09-10", Seats: []string{"3"}},
			{ID: "bkg-2", UserID: "usr-2", TrainID: "trn-2", JourneyDate: "2026-09-11",
				Seats: []string{"1"}, Status: api.StatusCancelled},
		},
		users: []api.User{
			{ID: "usr-1", Email: "amal@example.com", FirstName: "Amal", Role: api.RoleUser},
			{ID: "usr-2", Email: "nadia@example.com", FirstName: "Nadia", Role: api.RoleAdmin},
		},
	}
}

var adminIdentity = Identity{UserID: "usr-2", Email: "nadia@example.com", Role: api.RoleAdmin}
var userIdentity = Identity{UserID: "usr-1", Email: "amal@example.com", Role: api.RoleUser}

func press(t *testing.T, model Model, message tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(message)
	return updated.(Model), cmd
}

func pressRune(t *testing.T, model Model, character rune) (Model, tea.Cmd) {
	t.Helper()
	return press(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
}

func deliver(t *testing.T, model Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command to deliver")
	}
	updated, next := model.Update(cmd())
	return updated.(Model), next
}

// newReadyModel returns a model with the train catalog loaded and the
// window sized.
func newReadyModel(t *testing.T, service *fakeService, identity Identity) Model {
	t.Helper()
	model := New(service, identity, 2)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(Model)

	updated, _ = model.Update(trainsLoadedMsg{trains: service.trains})
	model = updated.(Model)

	// Mirror Init: only admin sessions pre-load the account list, so
	// the regular-user tests keep the lazy self-scoped fetch.
	if identity.IsAdmin() {
		updated, _ = model.Update(usersLoadedMsg{users: service.users})
		model = updated.(Model)
	}
	return model
}

// selectFirstTrain drives the picker to the first train and completes
// the seat fetch.
func selectFirstTrain(t *testing.T, model Model) Model {
	t.Helper()
	model, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting a train should fetch seat inventory")
	}
	model, _ = deliver(t, model, cmd)
	if model.book.grid == nil {
		t.Fatal("seat grid should be built after the inventory arrives")
	}
	return model
}

func TestTabGatingByRole(t *testing.T) {
	model := newReadyModel(t, newFakeService(), userIdentity)

	for _, tab := range model.visibleTabs() {
		if tab == TabSeats {
			t.Fatal("non-admin session should not see the Seats tab")
		}
	}

	model, _ = pressRune(t, model, '3')
	if model.activeTab != TabBook {
		t.Fatalf("pressing 3 as a non-admin switched to %s", model.activeTab.Title())
	}

	// The Users tab stays open for regular users, scoped to self.
	model, _ = pressRune(t, model, '5')
	if model.activeTab != TabUsers {
		t.Fatalf("pressing 5 as a non-admin left the active tab at %s", model.activeTab.Title())
	}

	admin := newReadyModel(t, newFakeService(), adminIdentity)
	if len(admin.visibleTabs()) != 5 {
		t.Fatalf("admin session sees %d tabs, want 5", len(admin.visibleTabs()))
	}
}

func TestUsersTabSelfScopeForRegularUser(t *testing.T) {
	fake := newFakeService()
	model := newReadyModel(t, fake, userIdentity)

	// Switching to Users lazily fetches; for a regular user the fetch
	// resolves only their own account.
	model, cmd := pressRune(t, model, '5')
	model, _ = deliver(t, model, cmd)

	if len(model.users.filtered) != 1 || model.users.filtered[0].ID != "usr-1" {
		t.Fatalf("users tab shows %v, want only usr-1", model.users.filtered)
	}

	// The self-guards keep role changes and deletion off the only row.
	model, _ = pressRune(t, model, 'p')
	if model.statusText != "you cannot change your own role" {
		t.Fatalf("status = %q, want own-role guard", model.statusText)
	}
	model, _ = pressRune(t, model, 'd')
	if model.statusText != "you cannot delete your own account" {
		t.Fatalf("status = %q, want own-account guard", model.statusText)
	}
	if len(fake.deletedUsers) != 0 || len(fake.roleChanges) != 0 {
		t.Fatal("guarded actions must not reach the server")
	}
}

func TestSeatSelectionAndToggle(t *testing.T) {
	model := newReadyModel(t, newFakeService(), userIdentity)
	model = selectFirstTrain(t, model)

	// Grid order is numeric: 1, 2, 3, 4. Seat 2 is booked.
	if got := model.book.grid.Seats(); len(got) != 4 || got[0] != "1" || got[3] != "4" {
		t.Fatalf("grid seats = %v, want [1 2 3 4]", got)
	}
	if !model.book.grid.IsDisabled("2") {
		t.Fatal("booked seat 2 should be disabled")
	}

	// Toggle the seat under the cursor (seat 1).
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := model.book.grid.Selected(); len(got) != 1 || got[0] != "1" {
		t.Fatalf("selected = %v, want [1]", got)
	}

	// Moving onto the booked seat and toggling does nothing.
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyRight})
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := model.book.grid.SelectedCount(); got != 1 {
		t.Fatalf("selection count = %d after toggling a booked seat, want 1", got)
	}
}

func TestDateChangeClearsSelection(t *testing.T) {
	model := newReadyModel(t, newFakeService(), userIdentity)
	model = selectFirstTrain(t, model)

	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if model.book.grid.SelectedCount() != 1 {
		t.Fatal("expected one selected seat before the date change")
	}

	// Open the date form, type a new date, submit.
	model, _ = pressRune(t, model, 'e')
	if model.focusRegion != FocusForm {
		t.Fatal("e should open the journey date form")
	}
	model.activeForm.fields[0].SetValue("2026-09-12")
	model, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.book.date != "2026-09-12" {
		t.Fatalf("date = %q after form submit, want 2026-09-12", model.book.date)
	}
	if model.book.grid != nil {
		t.Fatal("seat grid should be discarded when the date changes")
	}

	model, _ = deliver(t, model, cmd)
	if model.book.grid.SelectedCount() != 0 {
		t.Fatal("selection must not survive a date change")
	}
	if got := model.book.grid.Len(); got != 1 {
		t.Fatalf("new inventory has %d seats, want 1", got)
	}
}

func TestStaleSeatResponseDropped(t *testing.T) {
	model := newReadyModel(t, newFakeService(), userIdentity)
	model = selectFirstTrain(t, model)

	staleSeq := model.book.seatSeq

	// A date change bumps the sequence before the old response lands.
	model, _ = pressRune(t, model, 'e')
	model.activeForm.fields[0].SetValue("2026-09-12")
	model, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.book.seatSeq == staleSeq {
		t.Fatal("date change should bump the seat fetch sequence")
	}

	// The stale response arrives late and is dropped.
	updated, _ := model.Update(bookSeatsMsg{seq: staleSeq, seats: []api.Seat{
		{SeatNumber: "99", Status: api.SeatAvailable},
	}})
	model = updated.(Model)
	if model.book.grid != nil {
		t.Fatal("stale seat inventory must not populate the grid")
	}

	// The current response still applies.
	model, _ = deliver(t, model, cmd)
	if model.book.grid == nil || model.book.grid.Len() != 1 {
		t.Fatal("current seat inventory should populate the grid")
	}
}

func TestSubmitRequiresSeats(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, userIdentity)
	model = selectFirstTrain(t, model)

	model, _ = pressRune(t, model, 's')
	if !model.statusIsError || !strings.Contains(model.statusText, "at least one seat") {
		t.Fatalf("submitting without seats: status = %q", model.statusText)
	}
	if len(service.createdBookings) != 0 {
		t.Fatal("no request may reach the server when no seats are selected")
	}
}

func TestBookingSubmitPayload(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, userIdentity)
	model = selectFirstTrain(t, model)

	// Select seats 1 and 3.
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyRight})
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyRight})
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	model, _ = pressRune(t, model, 's')
	if model.focusRegion != FocusConfirm {
		t.Fatal("submit should ask for confirmation")
	}

	model, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = deliver(t, model, cmd)

	if len(service.createdBookings) != 1 {
		t.Fatalf("created %d bookings, want 1", len(service.createdBookings))
	}
	request := service.createdBookings[0]
	if request.TrainID != "trn-1" || request.UserID != "usr-1" || request.JourneyDate != "2026-09-10" {
		t.Fatalf("booking request = %+v", request)
	}
	if len(request.SeatNumbers) != 2 || request.SeatNumbers[0] != "1" || request.SeatNumbers[1] != "3" {
		t.Fatalf("seat numbers = %v, want [1 3]", request.SeatNumbers)
	}

	// Form resets for the next booking.
	if model.book.train != nil || model.book.grid != nil || model.book.date != "" {
		t.Fatal("booking form should clear after a successful submission")
	}
}

func TestConfirmEscapeReleasesSubmitGuard(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, userIdentity)
	model = selectFirstTrain(t, model)

	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	model, _ = pressRune(t, model, 's')
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	model, _ = pressRune(t, model, 's')
	if model.focusRegion != FocusConfirm {
		t.Fatal("submit should be possible again after abandoning the confirmation")
	}
	if len(service.createdBookings) != 0 {
		t.Fatal("abandoned confirmation must not create a booking")
	}
}

func TestCancelBookingGuards(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, adminIdentity)

	model, cmd := pressRune(t, model, '2')
	model, _ = deliver(t, model, cmd)
	if len(model.bookings.filtered) != 2 {
		t.Fatalf("bookings rows = %d, want 2", len(model.bookings.filtered))
	}

	// Row 0 is active: cancel flows through confirmation.
	model, _ = pressRune(t, model, 'c')
	if model.focusRegion != FocusConfirm {
		t.Fatal("cancelling an active booking should ask for confirmation")
	}
	model, cmd = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = deliver(t, model, cmd)

	if len(service.cancelled) != 1 || service.cancelled[0] != "bkg-1" {
		t.Fatalf("cancelled = %v, want [bkg-1]", service.cancelled)
	}
	if model.bookings.filtered[0].Status != api.StatusCancelled {
		t.Fatal("cancelled booking should be patched to CANCELLED locally")
	}

	// Row 1 is already cancelled: no cancel offered.
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model, _ = pressRune(t, model, 'c')
	if model.focusRegion == FocusConfirm {
		t.Fatal("a CANCELLED booking must not offer cancellation")
	}
	if !model.statusIsError {
		t.Fatal("expected an error notice for a cancelled row")
	}
	if len(service.cancelled) != 1 {
		t.Fatal("no second cancellation may be issued")
	}
}

func TestUserCannotCancelOthersBooking(t *testing.T) {
	service := newFakeService()
	// Hand the user another passenger's booking directly; the server
	// normally scopes the fetch, this guards the UI path regardless.
	model := newReadyModel(t, service, userIdentity)
	model, _ = pressRune(t, model, '2')
	updated, _ := model.Update(bookingsLoadedMsg{bookings: []api.Booking{
		{ID: "bkg-9", UserID: "usr-2", TrainID: "trn-1", JourneyDate: "2026-09-10", Seats: []string{"4"}},
	}})
	model = updated.(Model)

	model, _ = pressRune(t, model, 'c')
	if model.focusRegion == FocusConfirm {
		t.Fatal("a non-admin must not cancel another passenger's booking")
	}
	if len(service.cancelled) != 0 {
		t.Fatal("no cancellation may reach the server")
	}
}

func TestSeatStatusUpdate(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, adminIdentity)

	model, _ = pressRune(t, model, '3')
	model.seats.trainID = "trn-1"
	model.seats.date = "2026-09-10"
	model, cmd := pressRune(t, model, 'r')
	model, _ = deliver(t, model, cmd)
	if len(model.seats.filtered) != 4 {
		t.Fatalf("seat rows = %d, want 4", len(model.seats.filtered))
	}

	// Open the status dropdown on seat 1 and flip it to booked.
	model, _ = pressRune(t, model, 't')
	if model.focusRegion != FocusDropdown {
		t.Fatal("t should open the status dropdown")
	}
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model, cmd = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("picking a new status should dispatch an update")
	}
	model, _ = deliver(t, model, cmd)

	if len(service.updatedSeats) != 1 {
		t.Fatalf("updated %d seats, want 1", len(service.updatedSeats))
	}
	updated := service.updatedSeats[0]
	if updated.SeatNumber != "1" || updated.Status != api.SeatBooked {
		t.Fatalf("seat update = %+v", updated)
	}
}

func TestSelfAccountGuards(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, adminIdentity)

	model, _ = pressRune(t, model, '5')
	// Move the cursor to the operator's own row (usr-2).
	for index, user := range model.users.filtered {
		if user.ID == adminIdentity.UserID {
			model.users.cursor = index
		}
	}

	model, _ = pressRune(t, model, 'd')
	if model.focusRegion == FocusConfirm {
		t.Fatal("deleting your own account must be refused")
	}
	model, _ = pressRune(t, model, 'p')
	if model.focusRegion == FocusDropdown {
		t.Fatal("changing your own role must be refused")
	}
	if len(service.deletedUsers) != 0 {
		t.Fatal("no delete may reach the server")
	}
}

func TestSeatFetchErrorSurfacesInStatusBar(t *testing.T) {
	service := newFakeService()
	service.seatsErr = errors.New("get seats: HTTP 503: upstream down")
	model := newReadyModel(t, service, userIdentity)

	model, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = deliver(t, model, cmd)

	if !model.statusIsError || !strings.Contains(model.statusText, "HTTP 503") {
		t.Fatalf("status = %q, want the fetch error", model.statusText)
	}
}

func TestBookingSuccessNoticeDetails(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, userIdentity)
	model = selectFirstTrain(t, model)

	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	model, _ = pressRune(t, model, 's')
	model, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = deliver(t, model, cmd)

	for _, want := range []string{
		"1005 Colombo → Kandy",
		"2026-09-10",
		"myself (amal@example.com)",
		"seats 1",
	} {
		if !strings.Contains(model.statusText, want) {
			t.Errorf("success notice %q should mention %q", model.statusText, want)
		}
	}
	if model.statusIsError {
		t.Fatal("a successful booking must not report as an error")
	}
}

func TestDropdownMouseSelection(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, adminIdentity)

	model, _ = pressRune(t, model, '5')
	for index, user := range model.users.filtered {
		if user.ID == "usr-1" {
			model.users.cursor = index
		}
	}
	model, _ = pressRune(t, model, 'p')
	if model.focusRegion != FocusDropdown || model.activeDropdown == nil {
		t.Fatal("p should open the role dropdown")
	}

	// Click the second option (Admin), one row below the anchor.
	dropdown := model.activeDropdown
	updated, cmd := model.Update(tea.MouseMsg{
		X:      dropdown.AnchorX + 2,
		Y:      dropdown.AnchorY + 1,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	model = updated.(Model)
	if cmd == nil {
		t.Fatal("clicking an option should dispatch the role change")
	}
	model, _ = deliver(t, model, cmd)

	if model.activeDropdown != nil || model.focusRegion != FocusList {
		t.Fatal("the dropdown should close after a click selection")
	}
	if service.roleChanges["usr-1"] != api.RoleAdmin {
		t.Fatalf("role changes = %v, want usr-1 promoted", service.roleChanges)
	}
}

func TestDropdownMouseDismissOutside(t *testing.T) {
	service := newFakeService()
	model := newReadyModel(t, service, adminIdentity)

	model, _ = pressRune(t, model, '5')
	for index, user := range model.users.filtered {
		if user.ID == "usr-1" {
			model.users.cursor = index
		}
	}
	model, _ = pressRune(t, model, 'p')

	updated, cmd := model.Update(tea.MouseMsg{
		X:      0,
		Y:      0,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	model = updated.(Model)
	if cmd != nil {
		t.Fatal("clicking outside must not dispatch anything")
	}
	if model.activeDropdown != nil || model.focusRegion != FocusList {
		t.Fatal("clicking outside should dismiss the dropdown")
	}
	if len(service.roleChanges) != 0 {
		t.Fatalf("role changes = %v, want none", service.roleChanges)
	}
}

func TestListScrollbarOnOverflow(t *testing.T) {
	service := newFakeService()
	var trains []api.Train
	for number := 1000; number < 1040; number++ {
		trains = append(trains, api.Train{
			ID: "trn-bulk", TrainNumber: number,
			Source: "Colombo", Destination: "Badulla",
			DepartureDate: "2026-09-10",
		})
	}
	service.trains = trains

	model := New(service, userIdentity, 2)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	model = updated.(Model)
	updated, _ = model.Update(trainsLoadedMsg{trains: service.trains})
	model = updated.(Model)

	view := model.View()
	if !strings.Contains(view, "┃") || !strings.Contains(view, "│") {
		t.Fatal("an overflowing train picker should render a scrollbar")
	}

	service.trains = service.trains[:2]
	updated, _ = model.Update(trainsLoadedMsg{trains: service.trains})
	model = updated.(Model)
	if view := model.View(); strings.Contains(view, "┃") || strings.Contains(view, "│") {
		t.Fatal("a list that fits should render without a scrollbar")
	}
}
