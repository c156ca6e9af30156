// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the raildesk CLI.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a [pflag.FlagSet]
// factory, and a Run function. Commands are assembled into a tree in
// cmd/raildesk/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3). This is
// implemented in suggest.go.
//
// The package also owns the authentication surface shared by every
// subcommand package:
//
//   - [LoginCommand] / [LogoutCommand] / [RegisterCommand] /
//     [WhoamiCommand]: credential commands. The session file lives at
//     ~/.config/raildesk/session.json and is loaded transparently by
//     commands that talk to the backend.
//
//   - [Connect]: loads the saved session plus the client
//     configuration and returns an authenticated [api.Client] ready
//     for use.
package cli
