// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxResponseSize bounds JSON response body reads: 32 MB. The booking
// API returns lists of trains, seats, bookings, and users — all orders
// of magnitude smaller. The bound only exists so a misbehaving server
// cannot exhaust client memory.
const maxResponseSize int64 = 32 << 20

// errorBodyLimit caps how much of an error response body is carried
// into error messages.
const errorBodyLimit = 2 << 10

// decodeResponse reads a JSON response body (up to maxResponseSize)
// and decodes it into v.
func decodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorBody reads an error response body for inclusion in an error
// message. Read failures are ignored — a partial body is still useful.
func errorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, errorBodyLimit))
	return strings.TrimSpace(string(data))
}
