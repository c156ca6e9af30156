// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package train

import (
	"errors"
	"os"
	"testing"

	"github.com/raildesk-project/raildesk/cmd/raildesk/cli"
	"github.com/raildesk-project/raildesk/lib/api"
)

func TestSearchExitCodeOnNoMatches(t *testing.T) {
	// Silence the diagnostic the empty result prints.
	saved := os.Stderr
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = devnull
	defer func() {
		os.Stderr = saved
		devnull.Close()
	}()

	err = writeSearchResults(nil, false)
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("empty search should return an ExitError, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.ExitCode())
	}
}

func TestSearchExitCodeOnMatches(t *testing.T) {
	saved := os.Stdout
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = devnull
	defer func() {
		os.Stdout = saved
		devnull.Close()
	}()

	trains := []api.Train{{ID: "trn-1", TrainNumber: 1005, Source: "Colombo", Destination: "Kandy"}}
	if err := writeSearchResults(trains, false); err != nil {
		t.Fatalf("a non-empty search should exit clean, got %v", err)
	}
	// JSON mode reports empty results as an empty array, exit 0.
	if err := writeSearchResults(nil, true); err != nil {
		t.Fatalf("JSON mode should exit clean on no matches, got %v", err)
	}
}
