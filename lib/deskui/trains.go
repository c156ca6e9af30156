// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/api"
	"github.com/raildesk-project/raildesk/lib/filter"
	"github.com/raildesk-project/raildesk/lib/tui"
)

// trainsState is the train catalog tab. Everyone browses and
// searches; admins additionally create, edit, and delete.
type trainsState struct {
	all      []api.Train
	filtered []api.Train
	cursor   int
	scroll   int
	loading  bool

	// searched is true when the list came from a server-side search
	// rather than the full catalog; refresh (r) goes back to the
	// full listing.
	searched bool
}

// applyTrainCatalog folds a fresh train list into the trains tab.
func (model *Model) applyTrainCatalog(trains []api.Train) {
	model.trains.all = trains
	model.applyTrainsFilter()
}

// applyTrainsFilter narrows the catalog by the filter query.
func (model *Model) applyTrainsFilter() {
	trains := &model.trains
	query := ""
	if model.activeTab == TabTrains {
		query = model.filter.Input
	}
	trains.filtered = filter.Apply(trains.all, query, func(train api.Train) []string {
		return []string{train.SearchText()}
	})
	if trains.cursor >= len(trains.filtered) {
		trains.cursor = 0
		trains.scroll = 0
	}
}

// handleTrainsKeys processes keys on the trains tab.
func (model *Model) handleTrainsKeys(message tea.KeyMsg) tea.Cmd {
	trains := &model.trains

	switch {
	case key.Matches(message, model.keys.Up):
		if trains.cursor > 0 {
			trains.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if trains.cursor < len(trains.filtered)-1 {
			trains.cursor++
		}

	case key.Matches(message, model.keys.Submit):
		model.activeForm = newForm(formTrainSearch, "Search trains",
			newTextField("train number", ""),
			newTextField("source", ""),
			newTextField("destination", ""),
			newTextField("departure date", ""))
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.New):
		if !model.identity.IsAdmin() {
			return nil
		}
		model.activeForm = newTrainForm(formTrainCreate, "New train", api.Train{})
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.Edit):
		if !model.identity.IsAdmin() || trains.cursor >= len(trains.filtered) {
			return nil
		}
		train := trains.filtered[trains.cursor]
		form := newTrainForm(formTrainEdit, "Edit "+train.Describe(), train)
		form.itemID = train.ID
		model.activeForm = form
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.Delete):
		return model.requestDeleteTrain()
	}
	trains.scroll = clampScroll(trains.cursor, trains.scroll, model.listHeight())
	return nil
}

// newTrainForm builds the create/edit form prefilled from a train.
func newTrainForm(kind formKind, title string, train api.Train) *formState {
	number := ""
	if train.TrainNumber != 0 {
		number = strconv.Itoa(train.TrainNumber)
	}
	totalSeats := ""
	if train.TotalSeats != 0 {
		totalSeats = strconv.Itoa(train.TotalSeats)
	}
	dateField := newTextField("departure date", train.DepartureDate)
	dateField.placeholder = "YYYY-MM-DD"
	return newForm(kind, title,
		newTextField("train number", number),
		newTextField("name", train.Name),
		newTextField("source", train.Source),
		newTextField("destination", train.Destination),
		dateField,
		newTextField("departure time", train.DepartureTime),
		newTextField("arrival time", train.ArrivalTime),
		newTextField("total seats", totalSeats))
}

// submitTrainSearch runs a server-side catalog search.
func (model *Model) submitTrainSearch(form *formState) tea.Cmd {
	query := api.TrainQuery{
		TrainNumber:   form.value(0),
		Source:        form.value(1),
		Destination:   form.value(2),
		DepartureDate: form.value(3),
	}
	model.trains.loading = true
	model.trains.searched = true
	return searchTrains(model.service, query)
}

// submitTrainForm validates and dispatches a create or edit.
func (model *Model) submitTrainForm(form *formState) tea.Cmd {
	trainNumber, err := strconv.Atoi(form.value(0))
	if err != nil || trainNumber < 1 {
		return model.reportErrorText("train number must be a positive number")
	}
	source := form.value(2)
	destination := form.value(3)
	departureDate := form.value(4)
	if source == "" || destination == "" || departureDate == "" {
		return model.reportErrorText("source, destination, and departure date are required")
	}
	totalSeats := 0
	if raw := form.value(7); raw != "" {
		totalSeats, err = strconv.Atoi(raw)
		if err != nil || totalSeats < 0 {
			return model.reportErrorText("total seats must be a number")
		}
	}

	train := api.Train{
		ID:            form.itemID,
		TrainNumber:   trainNumber,
		Name:          form.value(1),
		Source:        source,
		Destination:   destination,
		DepartureDate: departureDate,
		DepartureTime: form.value(5),
		ArrivalTime:   form.value(6),
		TotalSeats:    totalSeats,
	}

	service := model.service
	if form.kind == formTrainEdit {
		trainID := form.itemID
		return mutate("update train "+strconv.Itoa(trainNumber), trainID, refreshTrains,
			func(ctx context.Context) error {
				return service.UpdateTrain(ctx, trainID, train)
			})
	}
	return mutate("create train "+strconv.Itoa(trainNumber), "", refreshTrains,
		func(ctx context.Context) error {
			return service.CreateTrain(ctx, train)
		})
}

// requestDeleteTrain confirms deletion of the selected train.
func (model *Model) requestDeleteTrain() tea.Cmd {
	trains := &model.trains
	if !model.identity.IsAdmin() || trains.cursor >= len(trains.filtered) {
		return nil
	}
	train := trains.filtered[trains.cursor]
	service := model.service
	action := mutate("delete train "+strconv.Itoa(train.TrainNumber), train.ID, refreshTrains,
		func(ctx context.Context) error {
			return service.DeleteTrain(ctx, train.ID)
		})
	model.confirm(fmt.Sprintf("Delete %s (%s)? Its seat inventory and bookings go with it.",
		train.Describe(), train.DepartureDate), action)
	return nil
}

// renderTrains renders the train catalog tab.
func (model *Model) renderTrains() string {
	trains := &model.trains
	theme := model.theme
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	if trains.loading && len(trains.filtered) == 0 {
		return faintStyle.Render("loading trains…")
	}
	if len(trains.filtered) == 0 {
		if trains.searched || model.filter.Input != "" {
			return faintStyle.Render("no trains match — press r for the full catalog")
		}
		return faintStyle.Render("no trains in the catalog")
	}

	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	visible := model.listHeight()
	if trains.searched {
		visible--
		if visible < 1 {
			visible = 1
		}
	}
	var rows []string
	for index := trains.scroll; index < trains.scroll+visible && index < len(trains.filtered); index++ {
		train := trains.filtered[index]
		row := fmt.Sprintf("  %-40s %s  %s → %s  %3d seats",
			train.Describe(), train.DepartureDate,
			train.DepartureTime, train.ArrivalTime, train.TotalSeats)
		row = tui.TruncateLabel(row, model.width-1)
		if index == trains.cursor {
			row = selectedStyle.Render(row)
		}
		rows = append(rows, row)
	}
	list := model.attachScrollbar(rows, len(trains.filtered), visible, trains.scroll)
	if trains.searched {
		return faintStyle.Render("search results — press r for the full catalog") + "\n" + list
	}
	return list
}
