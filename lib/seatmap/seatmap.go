// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package seatmap holds the pure seat-grid state for the booking
// form: a flat ordered list of seat labels, the selected subset, and
// an optional disabled subset. It does no I/O and no rendering — the
// console renders it and the parent owns the resulting selection,
// mirroring how the backend keys inventory by (train, date, seat).
package seatmap

// Map is the seat grid state. Construct with New; the zero value is
// an empty grid.
type Map struct {
	seats    []string
	disabled map[string]bool
	selected map[string]bool
	// order records selection sequence so Selected returns seats in
	// the order the user picked them.
	order []string
}

// New creates a Map over the given flat, ordered seat labels. The
// disabled subset cannot be selected; labels in disabled that are not
// in seats are ignored.
func New(seats []string, disabled []string) *Map {
	disabledSet := make(map[string]bool, len(disabled))
	for _, label := range disabled {
		disabledSet[label] = true
	}
	return &Map{
		seats:    seats,
		disabled: disabledSet,
		selected: make(map[string]bool),
	}
}

// Seats returns the flat seat list in input order.
func (m *Map) Seats() []string {
	return m.seats
}

// Len returns the number of seats in the grid.
func (m *Map) Len() int {
	return len(m.seats)
}

// Rows chunks the seat list into rows of the given width. The final
// row may be short. A non-positive width yields a single row.
func (m *Map) Rows(seatsPerRow int) [][]string {
	if len(m.seats) == 0 {
		return nil
	}
	if seatsPerRow <= 0 {
		return [][]string{m.seats}
	}
	var rows [][]string
	for start := 0; start < len(m.seats); start += seatsPerRow {
		end := start + seatsPerRow
		if end > len(m.seats) {
			end = len(m.seats)
		}
		rows = append(rows, m.seats[start:end])
	}
	return rows
}

// Toggle flips the selection state of a seat label. Disabled and
// unknown labels are ignored. Returns true if the selection changed.
func (m *Map) Toggle(label string) bool {
	if m.disabled[label] || !m.contains(label) {
		return false
	}
	if m.selected[label] {
		delete(m.selected, label)
		for index, selected := range m.order {
			if selected == label {
				m.order = append(m.order[:index], m.order[index+1:]...)
				break
			}
		}
		return true
	}
	m.selected[label] = true
	m.order = append(m.order, label)
	return true
}

// IsSelected reports whether the label is currently selected.
func (m *Map) IsSelected(label string) bool {
	return m.selected[label]
}

// IsDisabled reports whether the label cannot be selected.
func (m *Map) IsDisabled(label string) bool {
	return m.disabled[label]
}

// Selected returns the selected labels in the order they were picked.
func (m *Map) Selected() []string {
	if len(m.order) == 0 {
		return nil
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// SelectedCount returns the number of selected seats.
func (m *Map) SelectedCount() int {
	return len(m.order)
}

// ClearSelection deselects every seat. The seat list and disabled
// subset are untouched.
func (m *Map) ClearSelection() {
	m.selected = make(map[string]bool)
	m.order = nil
}

func (m *Map) contains(label string) bool {
	for _, seat := range m.seats {
		if seat == label {
			return true
		}
	}
	return false
}
