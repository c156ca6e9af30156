// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Raildesk is the terminal client for the train booking platform. It
// provides subcommands for authentication (login, register, whoami),
// the train catalog (train), seat inventory (seat), bookings
// (booking), account management (user), and the full-screen booking
// console (ui).
package main
