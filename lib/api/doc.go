// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package api provides a typed HTTP client for the train booking
// backend's REST API. Every Raildesk surface — the scriptable CLI
// commands and the full-screen console — talks to the backend through
// this client.
//
// The client mirrors the backend's wire format with its own response
// types and folds the backend's heterogeneous booking shapes (a single
// seatNumber field, a seats array, or a seatNumbers array; date or
// journeyDate; bookingId or id) into one canonical Booking at the
// client boundary, so callers never branch on response shape.
package api
