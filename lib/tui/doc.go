// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// Raildesk's interactive console. Built on bubbletea (Elm architecture),
// these components handle common patterns like dropdown overlays,
// scrollbars, and ANSI-aware text manipulation.
//
// The booking console in lib/deskui imports this package for
// consistent look and behavior: same theme, same keyboard conventions,
// same overlay mechanics. The console owns its own data source, layout,
// and domain-specific rendering.
package tui
