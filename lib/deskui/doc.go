// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package deskui implements the interactive booking console: a
// bubbletea TUI over the Raildesk API with one tab per workflow
// (booking a journey, managing bookings, seat inventory, trains,
// accounts). Tabs are role-gated: seat inventory only appears for
// ADMIN sessions, and the accounts tab scopes down to the operator's
// own record for regular users. The server enforces the same
// boundaries; the gates here just keep dead ends out of the UI.
//
// All remote calls run as tea.Cmd goroutines and deliver their result
// back through the message loop, so the Update function never blocks
// on the network. Seat availability fetches carry a sequence number
// and stale responses are dropped, which keeps a fast train/date
// change from painting the wrong seat grid.
package deskui
