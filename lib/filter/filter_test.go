// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"testing"

	"github.com/raildesk-project/raildesk/lib/api"
)

func TestMatchCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	if !Match("KAN", "Colombo", "Kandy") {
		t.Error("uppercase query should match mixed-case field")
	}
	if !Match("  kandy  ", "Kandy") {
		t.Error("query whitespace should be ignored")
	}
	if Match("galle", "Colombo", "Kandy") {
		t.Error("non-substring must not match")
	}
	if !Match("", "anything") {
		t.Error("empty query matches everything")
	}
	if !Match("   ") {
		t.Error("blank query matches even with no fields")
	}
}

func TestApplyEmailSubstringOverUsers(t *testing.T) {
	t.Parallel()

	users := []api.User{
		{ID: "u-1", Email: "Amara.Perera@Example.com"},
		{ID: "u-2", Email: "nuwan@raildesk.example"},
		{ID: "u-3", Email: "perera-son@other.example"},
	}

	matched := Apply(users, "perera", func(user api.User) []string {
		return []string{user.Email}
	})
	if len(matched) != 2 {
		t.Fatalf("got %d users, want 2", len(matched))
	}
	if matched[0].ID != "u-1" || matched[1].ID != "u-3" {
		t.Errorf("matched = %v, want u-1 and u-3 in input order", matched)
	}
}

func TestApplyEmptyQueryReturnsInput(t *testing.T) {
	t.Parallel()

	users := []api.User{{ID: "u-1"}}
	matched := Apply(users, "", func(user api.User) []string { return nil })
	if len(matched) != 1 {
		t.Fatalf("empty query must keep all items, got %d", len(matched))
	}
}
