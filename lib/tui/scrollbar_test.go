// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
)

func TestScrollbarThumbTracksOffset(t *testing.T) {
	theme := DefaultTheme

	// 100 items, 10 visible, 10 rows of track.
	top := strings.Split(RenderScrollbar(theme, 10, 100, 10, 0, true), "\n")
	if len(top) != 10 {
		t.Fatalf("scrollbar height = %d lines, want 10", len(top))
	}
	if !strings.Contains(top[0], "┃") {
		t.Error("at scroll offset 0 the thumb should start on the first row")
	}
	if !strings.Contains(top[len(top)-1], "│") {
		t.Error("at scroll offset 0 the last row should be track")
	}

	bottom := strings.Split(RenderScrollbar(theme, 10, 100, 10, 90, true), "\n")
	if !strings.Contains(bottom[len(bottom)-1], "┃") {
		t.Error("at maximum scroll the thumb should end on the last row")
	}
	if !strings.Contains(bottom[0], "│") {
		t.Error("at maximum scroll the first row should be track")
	}
}

func TestScrollbarFullThumbWhenContentFits(t *testing.T) {
	lines := strings.Split(RenderScrollbar(DefaultTheme, 5, 3, 10, 0, false), "\n")
	if len(lines) != 5 {
		t.Fatalf("scrollbar height = %d lines, want 5", len(lines))
	}
	for index, line := range lines {
		if !strings.Contains(line, "┃") {
			t.Errorf("row %d: content that fits should render a full-height thumb", index)
		}
	}
}

func TestScrollbarZeroHeight(t *testing.T) {
	if got := RenderScrollbar(DefaultTheme, 0, 10, 5, 0, true); got != "" {
		t.Fatalf("zero-height scrollbar should be empty, got %q", got)
	}
}
