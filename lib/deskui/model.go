// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raildesk-project/raildesk/lib/trainindex"
	"github.com/raildesk-project/raildesk/lib/tui"
)

// Tab identifies which workflow view is active.
type Tab int

const (
	// TabBook is the booking form: pick a train, a date, seats.
	TabBook Tab = iota
	// TabBookings lists bookings (all of them for admins, the
	// operator's own otherwise) with cancellation.
	TabBookings
	// TabSeats is seat inventory management (admin only).
	TabSeats
	// TabTrains is the train catalog, editable for admins.
	TabTrains
	// TabUsers is account management: admins see every account,
	// regular users see their own for profile edits.
	TabUsers
)

// Title returns the tab bar label.
func (tab Tab) Title() string {
	switch tab {
	case TabBook:
		return "Book"
	case TabBookings:
		return "Bookings"
	case TabSeats:
		return "Seats"
	case TabTrains:
		return "Trains"
	case TabUsers:
		return "Users"
	}
	return "?"
}

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusList means navigation keys move the active tab's cursor.
	FocusList FocusRegion = iota
	// FocusFilter means keystrokes go to the filter input.
	FocusFilter
	// FocusForm means keystrokes go to the active form's fields.
	FocusForm
	// FocusDropdown means a dropdown overlay is active and captures
	// all input until selection or dismissal.
	FocusDropdown
	// FocusConfirm means a yes/no prompt is pending: enter runs the
	// stored action, escape abandons it.
	FocusConfirm
)

// Model is the top-level bubbletea model for the booking console.
type Model struct {
	service  Service
	identity Identity
	theme    tui.Theme
	keys     KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	activeTab   Tab
	focusRegion FocusRegion
	filter      FilterBar

	// Per-tab state.
	book     bookState
	bookings bookingsState
	seats    seatsState
	trains   trainsState
	users    usersState

	// Train catalog index shared across tabs for label enrichment.
	trainIndex *trainindex.Index

	// seatsPerRow controls seat grid chunking (from configuration).
	seatsPerRow int

	// Active overlays. At most one of these is non-nil at a time.
	activeForm     *formState
	activeDropdown *tui.DropdownOverlay

	// Pending confirmation: confirmText is shown, pendingAction runs
	// on enter.
	confirmText   string
	pendingAction tea.Cmd

	// Transient status bar notice.
	statusText    string
	statusIsError bool
}

// New creates a console model for the given service and operator
// identity. seatsPerRow controls seat grid layout; values below 1 fall
// back to 8.
func New(service Service, identity Identity, seatsPerRow int) Model {
	if seatsPerRow < 1 {
		seatsPerRow = 8
	}
	return Model{
		service:     service,
		identity:    identity,
		theme:       tui.DefaultTheme,
		keys:        DefaultKeyMap,
		activeTab:   TabBook,
		seatsPerRow: seatsPerRow,
		book:        newBookState(),
		seats:       newSeatsState(),
		trains:      trainsState{loading: true},
		trainIndex:  trainindex.New(nil),
	}
}

// visibleTabs returns the tabs the operator's role may open. The
// server enforces the same boundary; hiding the tabs just avoids
// guaranteed-403 dead ends.
func (model *Model) visibleTabs() []Tab {
	if model.identity.IsAdmin() {
		return []Tab{TabBook, TabBookings, TabSeats, TabTrains, TabUsers}
	}
	// Regular users still get the Users tab, scoped to their own
	// account for profile edits.
	return []Tab{TabBook, TabBookings, TabTrains, TabUsers}
}

func (model *Model) tabVisible(tab Tab) bool {
	for _, visible := range model.visibleTabs() {
		if visible == tab {
			return true
		}
	}
	return false
}

// switchTab activates a tab if the operator's role allows it. The
// filter does not carry across tabs.
func (model *Model) switchTab(tab Tab) tea.Cmd {
	if !model.tabVisible(tab) || tab == model.activeTab {
		return nil
	}
	model.activeTab = tab
	model.filter.Clear()
	model.focusRegion = FocusList
	model.activeForm = nil
	model.activeDropdown = nil
	model.applyActiveFilter()

	// Lazy-load tabs that have never been fetched.
	switch tab {
	case TabBookings:
		if !model.bookings.loaded && !model.bookings.loading {
			model.bookings.loading = true
			return loadBookings(model.service, model.identity)
		}
	case TabUsers:
		if !model.users.loaded && !model.users.loading {
			model.users.loading = true
			return loadUsers(model.service, model.identity)
		}
	}
	return nil
}

// Init implements tea.Model. Fetches the train catalog (needed by the
// booking form, the trains tab, and booking enrichment) plus the
// account list for admin passenger picking.
func (model Model) Init() tea.Cmd {
	commands := []tea.Cmd{loadTrains(model.service)}
	if model.identity.IsAdmin() {
		commands = append(commands, loadUsers(model.service, model.identity))
	}
	return tea.Batch(commands...)
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		return model, (&model).handleMouse(message)

	case statusFadeMsg:
		model.statusText = ""
		model.statusIsError = false

	case trainsLoadedMsg:
		model.trains.loading = false
		if message.err != nil {
			return model, model.reportError(message.err)
		}
		if message.search {
			(&model).applyTrainCatalog(message.trains)
		} else {
			model.trains.searched = false
			(&model).applyTrains(message.trains)
		}

	case bookingsLoadedMsg:
		model.bookings.loading = false
		model.bookings.loaded = true
		if message.err != nil {
			return model, model.reportError(message.err)
		}
		(&model).applyBookings(message.bookings)

	case usersLoadedMsg:
		model.users.loading = false
		model.users.loaded = true
		if message.err != nil {
			return model, model.reportError(message.err)
		}
		(&model).applyUsers(message.users)

	case bookSeatsMsg:
		return model, (&model).handleBookSeats(message)

	case seatsLoadedMsg:
		return model, (&model).handleInventorySeats(message)

	case bookingCreatedMsg:
		return model, (&model).handleBookingCreated(message)

	case mutationResultMsg:
		return model, (&model).handleMutationResult(message)
	}

	return model, nil
}

// handleKey routes keyboard input based on the current focus region.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}

	switch model.focusRegion {
	case FocusFilter:
		return model, (&model).handleFilterKeys(message)
	case FocusForm:
		return model, (&model).handleFormKeys(message)
	case FocusDropdown:
		return model, (&model).handleDropdownKeys(message)
	case FocusConfirm:
		return model, (&model).handleConfirmKeys(message)
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.TabBook):
		return model, (&model).switchTab(TabBook)
	case key.Matches(message, model.keys.TabBookings):
		return model, (&model).switchTab(TabBookings)
	case key.Matches(message, model.keys.TabSeats):
		return model, (&model).switchTab(TabSeats)
	case key.Matches(message, model.keys.TabTrains):
		return model, (&model).switchTab(TabTrains)
	case key.Matches(message, model.keys.TabUsers):
		return model, (&model).switchTab(TabUsers)

	case key.Matches(message, model.keys.FilterActivate):
		model.filter.Active = true
		model.focusRegion = FocusFilter
		return model, nil

	case key.Matches(message, model.keys.Refresh):
		return model, (&model).refreshActiveTab()
	}

	// Tab-specific keys.
	switch model.activeTab {
	case TabBook:
		return model, (&model).handleBookKeys(message)
	case TabBookings:
		return model, (&model).handleBookingsKeys(message)
	case TabSeats:
		return model, (&model).handleSeatsKeys(message)
	case TabTrains:
		return model, (&model).handleTrainsKeys(message)
	case TabUsers:
		return model, (&model).handleUsersKeys(message)
	}
	return model, nil
}

// handleFilterKeys routes input while the filter bar is focused.
// Enter confirms and returns focus to the list; escape clears.
func (model *Model) handleFilterKeys(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyEnter:
		model.filter.Active = false
		model.focusRegion = FocusList
	case tea.KeyEsc:
		model.filter.Clear()
		model.focusRegion = FocusList
		model.applyActiveFilter()
	case tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.applyActiveFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		for _, character := range runes {
			model.filter.HandleRune(character)
		}
		model.applyActiveFilter()
	}
	return nil
}

// applyActiveFilter re-filters the active tab's list and clamps its
// cursor to the narrowed set.
func (model *Model) applyActiveFilter() {
	switch model.activeTab {
	case TabBook:
		model.applyBookFilter()
	case TabBookings:
		model.applyBookingsFilter()
	case TabSeats:
		model.applySeatsFilter()
	case TabTrains:
		model.applyTrainsFilter()
	case TabUsers:
		model.applyUsersFilter()
	}
}

// handleFormKeys routes input to the active form.
func (model *Model) handleFormKeys(message tea.KeyMsg) tea.Cmd {
	if model.activeForm == nil {
		model.focusRegion = FocusList
		return nil
	}

	switch model.activeForm.handleKey(message) {
	case formCancel:
		model.activeForm = nil
		model.focusRegion = FocusList
		return nil
	case formSubmit:
		form := model.activeForm
		model.activeForm = nil
		model.focusRegion = FocusList
		return model.submitForm(form)
	}
	return nil
}

// submitForm dispatches a completed form by kind.
func (model *Model) submitForm(form *formState) tea.Cmd {
	switch form.kind {
	case formBookDate:
		return model.submitBookDate(form)
	case formSeatsQuery:
		return model.submitSeatsQuery(form)
	case formSeatAdd:
		return model.submitSeatAdd(form)
	case formSeatInit:
		return model.submitSeatInit(form)
	case formTrainSearch:
		return model.submitTrainSearch(form)
	case formTrainCreate, formTrainEdit:
		return model.submitTrainForm(form)
	case formUserEdit:
		return model.submitUserEdit(form)
	}
	return nil
}

// handleDropdownKeys routes input while a dropdown overlay is active.
func (model *Model) handleDropdownKeys(message tea.KeyMsg) tea.Cmd {
	if model.activeDropdown == nil {
		model.focusRegion = FocusList
		return nil
	}

	switch {
	case message.Type == tea.KeyEsc:
		model.activeDropdown = nil
		model.focusRegion = FocusList

	case key.Matches(message, model.keys.Up):
		model.activeDropdown.MoveUp()

	case key.Matches(message, model.keys.Down):
		model.activeDropdown.MoveDown()

	case message.Type == tea.KeyEnter:
		dropdown := model.activeDropdown
		model.activeDropdown = nil
		model.focusRegion = FocusList
		return model.applyDropdownSelection(dropdown)
	}
	return nil
}

// handleMouse resolves clicks against an active dropdown overlay.
// Clicking an option selects it; clicking anywhere else dismisses the
// dropdown.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	if model.activeDropdown == nil {
		return nil
	}
	if message.Button != tea.MouseButtonLeft || message.Action != tea.MouseActionPress {
		return nil
	}

	dropdown := model.activeDropdown
	if !dropdown.Contains(message.X, message.Y) {
		model.activeDropdown = nil
		model.focusRegion = FocusList
		return nil
	}
	index := dropdown.OptionAtY(message.Y)
	if index < 0 {
		return nil
	}
	dropdown.Cursor = index
	model.activeDropdown = nil
	model.focusRegion = FocusList
	return model.applyDropdownSelection(dropdown)
}

// applyDropdownSelection dispatches the mutation a dropdown selection
// stands for.
func (model *Model) applyDropdownSelection(dropdown *tui.DropdownOverlay) tea.Cmd {
	selected := dropdown.Selected()
	switch dropdown.Field {
	case "seat-status":
		return model.applySeatStatus(dropdown.ItemID, selected.Value)
	case "role":
		return model.applyUserRole(dropdown.ItemID, selected.Value)
	case "passenger":
		model.setPassenger(selected.Value)
	}
	return nil
}

// handleConfirmKeys resolves a pending confirmation prompt.
func (model *Model) handleConfirmKeys(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyEnter:
		action := model.pendingAction
		model.pendingAction = nil
		model.confirmText = ""
		model.focusRegion = FocusList
		return action
	case tea.KeyEsc:
		model.pendingAction = nil
		model.confirmText = ""
		model.focusRegion = FocusList
		// An abandoned booking confirmation releases the submit guard.
		model.book.submitting = false
	}
	return nil
}

// confirm arms a confirmation prompt. The action runs when the
// operator presses enter.
func (model *Model) confirm(text string, action tea.Cmd) {
	model.confirmText = text
	model.pendingAction = action
	model.focusRegion = FocusConfirm
}

// refreshActiveTab re-fetches the active tab's data from the server.
func (model *Model) refreshActiveTab() tea.Cmd {
	switch model.activeTab {
	case TabBook:
		return model.reloadBookSeats()
	case TabBookings:
		model.bookings.loading = true
		return loadBookings(model.service, model.identity)
	case TabSeats:
		return model.reloadInventory()
	case TabTrains:
		model.trains.loading = true
		return loadTrains(model.service)
	case TabUsers:
		model.users.loading = true
		return loadUsers(model.service, model.identity)
	}
	return nil
}

// refreshCmd maps a mutation's invalidation to the matching fetch.
func (model *Model) refreshCmd(kind refreshKind) tea.Cmd {
	switch kind {
	case refreshBookings:
		model.bookings.loading = true
		return loadBookings(model.service, model.identity)
	case refreshSeats:
		return model.reloadInventory()
	case refreshTrains:
		model.trains.loading = true
		return loadTrains(model.service)
	case refreshUsers:
		model.users.loading = true
		return loadUsers(model.service, model.identity)
	}
	return nil
}

// handleMutationResult folds a completed mutation into the status bar
// and triggers any follow-up fetch.
func (model *Model) handleMutationResult(message mutationResultMsg) tea.Cmd {
	if message.err != nil {
		return model.reportError(message.err)
	}

	// Cancellation patches the local row instead of re-fetching: the
	// row flips to CANCELLED immediately and stays consistent with
	// what the server just committed.
	if message.action == "cancel booking" {
		model.markBookingCancelled(message.itemID)
	}

	commands := []tea.Cmd{model.reportNotice(message.action + " ok")}
	if refresh := model.refreshCmd(message.refresh); refresh != nil {
		commands = append(commands, refresh)
	}
	return tea.Batch(commands...)
}

// reportError shows an error in the status bar and schedules its fade.
func (model *Model) reportError(err error) tea.Cmd {
	model.statusText = err.Error()
	model.statusIsError = true
	return fadeStatus()
}

// reportErrorText is reportError for locally-generated messages.
func (model *Model) reportErrorText(text string) tea.Cmd {
	model.statusText = text
	model.statusIsError = true
	return fadeStatus()
}

// reportNotice shows a success notice in the status bar and schedules
// its fade.
func (model *Model) reportNotice(text string) tea.Cmd {
	model.statusText = text
	model.statusIsError = false
	return fadeStatus()
}
