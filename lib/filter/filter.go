// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package filter provides the one free-text predicate every Raildesk
// list view shares. Matching is case-insensitive substring across the
// fields an accessor exposes — the same behavior for bookings, users,
// trains, and seats, instead of a hand-rolled filter per view.
package filter

import "strings"

// Match reports whether any of the fields contains the query,
// case-insensitively. An empty query matches everything; surrounding
// whitespace on the query is ignored.
func Match(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Apply filters items, keeping those whose accessor-provided fields
// match the query. An empty query returns items unchanged (the same
// slice, not a copy).
func Apply[T any](items []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	var matched []T
	for _, item := range items {
		if Match(query, fields(item)...) {
			matched = append(matched, item)
		}
	}
	return matched
}
