// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/tui"
)

// textField is a single-line editable input with a label. Editing is
// rune-buffer based so multibyte input behaves.
type textField struct {
	label       string
	placeholder string
	value       []rune
	cursor      int
}

func newTextField(label, initial string) textField {
	runes := []rune(initial)
	return textField{label: label, value: runes, cursor: len(runes)}
}

// Value returns the current field text.
func (field *textField) Value() string {
	return string(field.value)
}

// SetValue replaces the field text and moves the cursor to the end.
func (field *textField) SetValue(text string) {
	field.value = []rune(text)
	field.cursor = len(field.value)
}

// handleKey processes one keystroke while the field is focused.
// Returns true when the key was consumed; navigation and submit keys
// (enter, escape, tab) are left for the owning form.
func (field *textField) handleKey(message tea.KeyMsg) bool {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		field.value = append(field.value[:field.cursor],
			append(append([]rune{}, runes...), field.value[field.cursor:]...)...)
		field.cursor += len(runes)
		return true
	case tea.KeyBackspace:
		if field.cursor > 0 {
			field.value = append(field.value[:field.cursor-1], field.value[field.cursor:]...)
			field.cursor--
		}
		return true
	case tea.KeyDelete:
		if field.cursor < len(field.value) {
			field.value = append(field.value[:field.cursor], field.value[field.cursor+1:]...)
		}
		return true
	case tea.KeyLeft:
		if field.cursor > 0 {
			field.cursor--
		}
		return true
	case tea.KeyRight:
		if field.cursor < len(field.value) {
			field.cursor++
		}
		return true
	case tea.KeyHome:
		field.cursor = 0
		return true
	case tea.KeyEnd:
		field.cursor = len(field.value)
		return true
	}
	return false
}

// View renders "label: value" with a block cursor when focused.
func (field *textField) View(theme tui.Theme, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	valueStyle := lipgloss.NewStyle().Foreground(theme.NormalText)

	text := string(field.value)
	if !focused {
		if text == "" && field.placeholder != "" {
			return labelStyle.Render(field.label+": ") +
				labelStyle.Render(field.placeholder)
		}
		return labelStyle.Render(field.label+": ") + valueStyle.Render(text)
	}

	cursorStyle := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true)
	before := string(field.value[:field.cursor])
	after := string(field.value[field.cursor:])
	return labelStyle.Render(field.label+": ") +
		valueStyle.Render(before) +
		cursorStyle.Render("▎") +
		valueStyle.Render(after)
}

// formEvent is the outcome of routing a keystroke to a form.
type formEvent int

const (
	formContinue formEvent = iota
	formSubmit
	formCancel
)

// formKind names which workflow an active form belongs to, so submit
// handling knows what to build from the field values.
type formKind int

const (
	formNone formKind = iota
	formBookDate
	formSeatsQuery
	formSeatAdd
	formSeatInit
	formTrainSearch
	formTrainCreate
	formTrainEdit
	formUserEdit
)

// formState is a stack of text fields with one focused at a time.
// Tab/down move focus forward, shift+tab/up move it back, enter
// submits, escape cancels.
type formState struct {
	kind   formKind
	title  string
	fields []textField
	cursor int

	// itemID carries the record under edit (train ID, user ID) so the
	// submit handler knows what to mutate.
	itemID string
}

func newForm(kind formKind, title string, fields ...textField) *formState {
	return &formState{kind: kind, title: title, fields: fields}
}

func (form *formState) value(index int) string {
	if index < 0 || index >= len(form.fields) {
		return ""
	}
	return strings.TrimSpace(form.fields[index].Value())
}

// handleKey routes a keystroke to the focused field and interprets the
// form-level keys.
func (form *formState) handleKey(message tea.KeyMsg) formEvent {
	switch message.Type {
	case tea.KeyEnter:
		return formSubmit
	case tea.KeyEsc:
		return formCancel
	case tea.KeyTab, tea.KeyDown:
		form.cursor++
		if form.cursor >= len(form.fields) {
			form.cursor = 0
		}
		return formContinue
	case tea.KeyShiftTab, tea.KeyUp:
		form.cursor--
		if form.cursor < 0 {
			form.cursor = len(form.fields) - 1
		}
		return formContinue
	}

	form.fields[form.cursor].handleKey(message)
	return formContinue
}

// View renders the form title and its fields, focused field marked.
func (form *formState) View(theme tui.Theme) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true)

	var lines []string
	lines = append(lines, titleStyle.Render(form.title))
	for index := range form.fields {
		marker := "  "
		if index == form.cursor {
			marker = "> "
		}
		lines = append(lines, marker+form.fields[index].View(theme, index == form.cursor))
	}
	hint := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render("Enter save · Esc cancel · Tab next field")
	lines = append(lines, "", hint)
	return strings.Join(lines, "\n")
}
