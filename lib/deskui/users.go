// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package deskui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raildesk-project/raildesk/lib/api"
	"github.com/raildesk-project/raildesk/lib/filter"
	"github.com/raildesk-project/raildesk/lib/tui"
)

// usersState is the account management tab.
type usersState struct {
	all      []api.User
	filtered []api.User
	cursor   int
	scroll   int
	loaded   bool
	loading  bool
}

// applyUsers folds a fresh account list into the tab.
func (model *Model) applyUsers(users []api.User) {
	model.users.all = users
	model.applyUsersFilter()

	// The booking form's passenger selection indexes into this list;
	// a refresh may have reordered it, so fall back to self.
	model.book.passengerIndex = -1
}

// applyUsersFilter narrows accounts by the filter query (name, email,
// phone, address, role, id all participate).
func (model *Model) applyUsersFilter() {
	users := &model.users
	query := ""
	if model.activeTab == TabUsers {
		query = model.filter.Input
	}
	users.filtered = filter.Apply(users.all, query, func(user api.User) []string {
		return []string{user.SearchText()}
	})
	if users.cursor >= len(users.filtered) {
		users.cursor = 0
		users.scroll = 0
	}
}

// handleUsersKeys processes keys on the accounts tab.
func (model *Model) handleUsersKeys(message tea.KeyMsg) tea.Cmd {
	users := &model.users

	switch {
	case key.Matches(message, model.keys.Up):
		if users.cursor > 0 {
			users.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if users.cursor < len(users.filtered)-1 {
			users.cursor++
		}

	case key.Matches(message, model.keys.Edit):
		if users.cursor >= len(users.filtered) {
			return nil
		}
		user := users.filtered[users.cursor]
		form := newForm(formUserEdit, "Edit "+user.DisplayName(),
			newTextField("first name", user.FirstName),
			newTextField("last name", user.LastName),
			newTextField("email", user.Email),
			newTextField("phone", user.Phone),
			newTextField("address", user.Address))
		form.itemID = user.ID
		model.activeForm = form
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.Role):
		return model.openRoleDropdown()

	case key.Matches(message, model.keys.Delete):
		return model.requestDeleteUser()
	}
	users.scroll = clampScroll(users.cursor, users.scroll, model.listHeight())
	return nil
}

// submitUserEdit dispatches a profile edit.
func (model *Model) submitUserEdit(form *formState) tea.Cmd {
	email := form.value(2)
	if email == "" {
		return model.reportErrorText("email is required")
	}
	update := api.UserUpdate{
		FirstName: form.value(0),
		LastName:  form.value(1),
		Email:     email,
		Phone:     form.value(3),
		Address:   form.value(4),
	}
	userID := form.itemID
	service := model.service
	return mutate("update account", userID, refreshUsers, func(ctx context.Context) error {
		return service.UpdateUser(ctx, userID, update)
	})
}

// openRoleDropdown opens the role dropdown for the selected account.
// The operator's own role is off limits: demoting yourself locks you
// out of this tab mid-session.
func (model *Model) openRoleDropdown() tea.Cmd {
	users := &model.users
	if users.cursor >= len(users.filtered) {
		return nil
	}
	user := users.filtered[users.cursor]
	if user.ID == model.identity.UserID {
		return model.reportErrorText("you cannot change your own role")
	}

	cursor := 0
	if user.IsAdmin() {
		cursor = 1
	}
	model.activeDropdown = &tui.DropdownOverlay{
		Options: []tui.DropdownOption{
			{Label: "User", Value: api.RoleUser},
			{Label: "Admin", Value: api.RoleAdmin},
		},
		Cursor:  cursor,
		AnchorX: 6,
		AnchorY: contentTop + (users.cursor - users.scroll),
		Field:   "role",
		ItemID:  user.ID,
	}
	model.focusRegion = FocusDropdown
	return nil
}

// applyUserRole dispatches a role change picked in the dropdown.
func (model *Model) applyUserRole(userID, role string) tea.Cmd {
	for _, user := range model.users.all {
		if user.ID == userID && user.Role == role {
			return nil
		}
	}
	service := model.service
	return mutate("set role "+strings.ToLower(role), userID, refreshUsers,
		func(ctx context.Context) error {
			return service.SetUserRole(ctx, userID, role)
		})
}

// requestDeleteUser confirms deletion of the selected account. The
// operator's own account is off limits.
func (model *Model) requestDeleteUser() tea.Cmd {
	users := &model.users
	if users.cursor >= len(users.filtered) {
		return nil
	}
	user := users.filtered[users.cursor]
	if user.ID == model.identity.UserID {
		return model.reportErrorText("you cannot delete your own account")
	}

	service := model.service
	action := mutate("delete account", user.ID, refreshUsers, func(ctx context.Context) error {
		return service.DeleteUser(ctx, user.ID)
	})
	model.confirm(fmt.Sprintf("Delete account %s?", user.DisplayName()), action)
	return nil
}

// renderUsers renders the accounts tab.
func (model *Model) renderUsers() string {
	users := &model.users
	theme := model.theme
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	if users.loading && len(users.filtered) == 0 {
		return faintStyle.Render("loading accounts…")
	}
	if len(users.filtered) == 0 {
		return faintStyle.Render("no accounts match")
	}

	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	visible := model.listHeight()
	var lines []string
	for index := users.scroll; index < users.scroll+visible && index < len(users.filtered); index++ {
		user := users.filtered[index]
		role := lipgloss.NewStyle().
			Foreground(theme.RoleColor(user.Role)).
			Render(fmt.Sprintf("%-6s", user.Role))
		marker := "  "
		if user.ID == model.identity.UserID {
			marker = "* " // The operator's own account.
		}
		row := fmt.Sprintf("%s%s %-40s %s", marker, role,
			tui.TruncateLabel(user.DisplayName(), 40), user.Phone)
		row = tui.TruncateLabel(row, model.width-1)
		if index == users.cursor {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}
	return model.attachScrollbar(lines, len(users.filtered), visible, users.scroll)
}
