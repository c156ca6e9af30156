// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/tui"
)

// contentTop is the screen row where tab content starts: the tab bar
// and the blank line under it. Dropdown anchors are computed from it.
const contentTop = 2

// chromeHeight is everything that is not list content: tab bar, the
// blank line under it, the bottom separator, the status line, and the
// help line.
const chromeHeight = 5

// listHeight returns how many content rows fit in the terminal.
func (model *Model) listHeight() int {
	visible := model.height - chromeHeight
	if visible < 1 {
		return 1
	}
	return visible
}

// attachScrollbar joins a scrollbar column to the right edge of a
// scrolling list. Lists that fit the window render without one.
func (model *Model) attachScrollbar(lines []string, totalItems, visibleItems, scrollOffset int) string {
	body := strings.Join(lines, "\n")
	if totalItems <= visibleItems {
		return body
	}
	scrollbar := tui.RenderScrollbar(model.theme, visibleItems,
		totalItems, visibleItems, scrollOffset,
		model.focusRegion == FocusList)
	bodyStyle := lipgloss.NewStyle().
		Width(model.width - 1).
		Height(visibleItems)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		bodyStyle.Render(body), scrollbar)
}

// clampScroll keeps the cursor row inside the visible window.
func clampScroll(cursor, scroll, visible int) int {
	if visible < 1 {
		visible = 1
	}
	if cursor < scroll {
		return cursor
	}
	if cursor >= scroll+visible {
		return cursor - visible + 1
	}
	return scroll
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string

	// Top chrome line: either the tab bar or the filter bar. The
	// filter bar replaces the tab bar so the layout doesn't shift.
	filterView := model.filter.View(model.theme, model.width)
	if filterView != "" {
		sections = append(sections, filterView)
	} else {
		sections = append(sections, model.renderTabBar())
	}
	sections = append(sections, "")

	// Content. An active form takes over the whole content area.
	var content string
	if model.activeForm != nil {
		content = model.activeForm.View(model.theme)
	} else {
		switch model.activeTab {
		case TabBook:
			content = model.renderBook()
		case TabBookings:
			content = model.renderBookings()
		case TabSeats:
			content = model.renderSeats()
		case TabTrains:
			content = model.renderTrains()
		case TabUsers:
			content = model.renderUsers()
		}
	}
	content = padContent(content, model.listHeight())
	sections = append(sections, content)

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)

	sections = append(sections, model.renderStatusLine())
	sections = append(sections, model.renderHelp())

	output := strings.Join(sections, "\n")

	// Overlay dropdown if active.
	if model.activeDropdown != nil {
		dropdownLines := model.activeDropdown.Render(model.theme)
		output = tui.SpliceOverlay(output, dropdownLines,
			model.activeDropdown.AnchorX, model.activeDropdown.AnchorY)
	}

	return output
}

// padContent pads or trims the content block to exactly the given
// number of lines so the bottom chrome stays put.
func padContent(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderTabBar renders the role-gated tab bar.
func (model Model) renderTabBar() string {
	theme := model.theme
	activeStyle := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Underline(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	numberStyle := lipgloss.NewStyle().Foreground(theme.HelpText)

	var parts []string
	for _, tab := range model.visibleTabs() {
		label := tab.Title()
		number := numberStyle.Render(tabNumber(tab))
		if tab == model.activeTab {
			parts = append(parts, number+activeStyle.Render(label))
		} else {
			parts = append(parts, number+inactiveStyle.Render(label))
		}
	}

	identityLabel := lipgloss.NewStyle().Foreground(theme.RoleColor(model.identity.Role)).
		Render(model.identity.Email + " · " + strings.ToLower(model.identity.Role))
	bar := " " + strings.Join(parts, "  ")

	padding := model.width - lipgloss.Width(bar) - lipgloss.Width(identityLabel) - 1
	if padding < 1 {
		return tui.TruncateLabel(bar, model.width)
	}
	return bar + strings.Repeat(" ", padding) + identityLabel
}

func tabNumber(tab Tab) string {
	switch tab {
	case TabBook:
		return "1:"
	case TabBookings:
		return "2:"
	case TabSeats:
		return "3:"
	case TabTrains:
		return "4:"
	case TabUsers:
		return "5:"
	}
	return ""
}

// renderStatusLine renders the confirmation prompt when one is
// pending, otherwise the transient status notice.
func (model Model) renderStatusLine() string {
	theme := model.theme

	if model.focusRegion == FocusConfirm {
		promptStyle := lipgloss.NewStyle().
			Foreground(theme.AccentColor).
			Bold(true)
		hint := lipgloss.NewStyle().Foreground(theme.HelpText).
			Render("  Enter confirm · Esc abort")
		return tui.TruncateLabel(" "+promptStyle.Render(model.confirmText)+hint, model.width)
	}

	if model.statusText == "" {
		return ""
	}
	color := theme.SuccessForeground
	if model.statusIsError {
		color = theme.ErrorForeground
	}
	return tui.TruncateLabel(" "+lipgloss.NewStyle().Foreground(color).Render(model.statusText), model.width)
}

// renderHelp renders the context-sensitive help line.
func (model Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	var entries []string
	switch {
	case model.focusRegion == FocusFilter:
		entries = []string{"Enter apply", "Esc clear"}
	case model.focusRegion == FocusForm:
		entries = []string{"Tab next field", "Enter save", "Esc cancel"}
	case model.focusRegion == FocusDropdown:
		entries = []string{"j/k move", "Enter pick", "Esc dismiss"}
	case model.focusRegion == FocusConfirm:
		entries = []string{"Enter confirm", "Esc abort"}
	case model.activeTab == TabBook && model.book.train == nil:
		entries = []string{"j/k move", "Enter pick train", "/ filter", "r refresh", "q quit"}
	case model.activeTab == TabBook:
		entries = []string{"arrows move", "Space toggle seat", "e date", "s submit", "Esc back"}
		if model.identity.IsAdmin() {
			entries = append(entries[:4:4], "p passenger", "Esc back")
		}
	case model.activeTab == TabBookings:
		entries = []string{"j/k move", "c cancel", "/ filter", "r refresh", "q quit"}
	case model.activeTab == TabSeats:
		entries = []string{"e scope", "t status", "n add", "d delete", "i init", "←/→ status filter"}
	case model.activeTab == TabTrains:
		entries = []string{"j/k move", "s search", "/ filter", "r refresh"}
		if model.identity.IsAdmin() {
			entries = append(entries, "n new", "e edit", "d delete")
		}
	case model.activeTab == TabUsers:
		entries = []string{"e edit profile", "r refresh"}
		if model.identity.IsAdmin() {
			entries = []string{"j/k move", "e edit", "p role", "d delete", "/ filter"}
		}
	}

	return tui.TruncateLabel(helpStyle.Render(" "+strings.Join(entries, " · ")), model.width)
}
