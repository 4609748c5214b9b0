// Package ui contains UI components and helpers shared by the TUI views.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const resetStyle = "\x1b[0m"

// Overlay draws top over base with top's first cell at column x, row y.
// Base cells to the left of x are kept; cells under and to the right of top
// are replaced. Rows of top that fall below base are clipped.
func Overlay(base, top string, x, y int) string {
	if top == "" {
		return base
	}
	x = max(x, 0)
	y = max(y, 0)

	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		left := ansi.Truncate(baseLines[row], x, "")
		if w := lipgloss.Width(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		if strings.Contains(left, "\x1b") {
			left += resetStyle
		}
		baseLines[row] = left + line
	}
	return strings.Join(baseLines, "\n")
}

// Clip cuts s down to at most width columns and height rows
func Clip(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:max(height, 0)]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
