// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/raildesk-project/raildesk/lib/api"
	"github.com/raildesk-project/raildesk/lib/config"
	"github.com/raildesk-project/raildesk/lib/session"
)

// LoginCommand returns the "login" command for authenticating against
// the booking backend. This performs a credential login, resolves the
// caller's identity via "who am I", and saves the resulting session to
// the well-known path (~/.config/raildesk/session.json). Subsequent
// commands (train, seat, booking, user, ui) load this session
// transparently, like SSH keys.
func LoginCommand() *Command {
	var baseURL string
	var passwordFile string

	return &Command{
		Name:    "login",
		Summary: "Authenticate against the booking backend",
		Description: `Log in to a Raildesk backend and save the session locally.

After login, commands like "raildesk train list" and "raildesk ui" use
the saved session transparently — no flags needed.

The session file is stored at ~/.config/raildesk/session.json (or
$RAILDESK_SESSION_FILE if set, or $XDG_CONFIG_HOME/raildesk/session.json).
The file is written with mode 0600 (owner-only read/write) since it
contains an access token.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "raildesk login <email> [flags]",
		Examples: []Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "raildesk login passenger@example.com",
			},
			{
				Description: "Log in against a specific backend",
				Command:     "raildesk login admin@example.com --base-url http://rail.example.com/api/v1",
			},
			{
				Description: "Log in with password from file",
				Command:     "raildesk login passenger@example.com --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.StringVar(&baseURL, "base-url", "", "backend base URL (default: configured api.base_url)")
			flags.StringVar(&passwordFile, "password-file", "", "path to file containing password, or - to prompt interactively (default: prompt)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("email is required\n\nUsage: raildesk login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			if baseURL == "" {
				configuration, err := config.Load()
				if err != nil {
					return err
				}
				baseURL = configuration.API.BaseURL
			}

			password, err := readLoginPassword(passwordFile)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client := api.New(baseURL, "")
			token, err := client.Login(ctx, email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			// Resolve the identity before saving so the session carries
			// the role that gates admin surfaces.
			client.SetToken(token)
			user, err := client.Me(ctx)
			if err != nil {
				return fmt.Errorf("session verification failed: %w", err)
			}

			persisted := &session.Session{
				Token:   token,
				BaseURL: baseURL,
				UserID:  user.ID,
				Email:   user.Email,
				Role:    user.Role,
			}
			if err := session.Save(persisted); err != nil {
				return fmt.Errorf("save session: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", user.Email, user.Role)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", session.FilePath())
			return nil
		},
	}
}

// LogoutCommand returns the "logout" command. Removes the persisted
// session file. Logging out when no session exists is not an error.
func LogoutCommand() *Command {
	return &Command{
		Name:    "logout",
		Summary: "Remove the saved session",
		Description: `Log out of the booking backend by removing the local session file.

The bearer token is only deleted locally; the backend does not expose
token revocation.`,
		Usage: "raildesk logout",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if err := session.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Logged out")
			return nil
		},
	}
}

// RegisterCommand returns the "register" command for creating a new
// passenger account. Registration does not log in; run "raildesk
// login" afterwards.
func RegisterCommand() *Command {
	var registration api.Registration
	var passwordFile string

	return &Command{
		Name:    "register",
		Summary: "Create a new passenger account",
		Description: `Register a new account with the booking backend.

Accounts are created with the USER role; an administrator can promote
an account afterwards with "raildesk user role". Registration does not
log in — run "raildesk login" once the account exists.`,
		Usage: "raildesk register <email> --first-name <name> --last-name <name> [flags]",
		Examples: []Example{
			{
				Description: "Register interactively (prompts for password)",
				Command:     "raildesk register passenger@example.com --first-name Nimal --last-name Perera",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("register", pflag.ContinueOnError)
			flags.StringVar(&registration.FirstName, "first-name", "", "first name")
			flags.StringVar(&registration.LastName, "last-name", "", "last name")
			flags.StringVar(&registration.Phone, "phone", "", "phone number")
			flags.StringVar(&registration.Address, "address", "", "postal address")
			flags.StringVar(&passwordFile, "password-file", "", "path to file containing password, or - to prompt interactively (default: prompt)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("email is required\n\nUsage: raildesk register <email> [flags]")
			}
			registration.Email = args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}
			if registration.FirstName == "" || registration.LastName == "" {
				return fmt.Errorf("--first-name and --last-name are required")
			}

			password, err := readLoginPassword(passwordFile)
			if err != nil {
				return err
			}
			registration.Password = password

			configuration, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client := api.New(configuration.API.BaseURL, "")
			if err := client.Register(ctx, registration); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Registered %s — run \"raildesk login %s\" to sign in\n", registration.Email, registration.Email)
			return nil
		},
	}
}

// WhoamiCommand returns the "whoami" command. Shows the identity the
// backend resolves for the saved session, which also verifies the
// token is still accepted.
func WhoamiCommand() *Command {
	var outputJSON bool

	return &Command{
		Name:    "whoami",
		Summary: "Show the authenticated identity",
		Description: `Show who the saved session authenticates as.

Queries the backend rather than trusting the cached session file, so a
revoked or expired token is reported instead of stale local state.`,
		Usage: "raildesk whoami [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			flags.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			connection, err := Connect()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			user, err := connection.Client.Me(ctx)
			if err != nil {
				return err
			}

			if outputJSON {
				return WriteJSON(user)
			}
			fmt.Printf("%s (%s %s)\n", user.Email, user.FirstName, user.LastName)
			fmt.Printf("  id:   %s\n", user.ID)
			fmt.Printf("  role: %s\n", user.Role)
			fmt.Printf("  backend: %s\n", connection.Session.BaseURL)
			return nil
		},
	}
}

// readLoginPassword reads a password for login or registration. If
// passwordFile is empty or "-", prompts interactively on the terminal
// with echo disabled. Otherwise reads from the file path, stripping
// trailing newlines (common with echo/printf pipelines).
func readLoginPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", passwordFile, err)
		}
		for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
			data = data[:len(data)-1]
		}
		if len(data) == 0 {
			return "", fmt.Errorf("file %s is empty (after stripping trailing newlines)", passwordFile)
		}
		return string(data), nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", fmt.Errorf("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(passwordBytes) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}
	return string(passwordBytes), nil
}
