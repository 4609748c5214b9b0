package statusbar_test

import (
	"fmt"

	"github.com/riordanpawley/toaster/internal/types"
	"github.com/riordanpawley/toaster/internal/ui/statusbar"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	style := styles.New()

	// Create a status bar in normal mode
	sb := statusbar.New(types.ModeNormal, 80, style).
		WithCounts(statusbar.Counts{Active: 2, Paused: 1})

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	// For this example, we just verify it's not empty
	fmt.Println(len(rendered) > 0)
	// Output: true
}

// ExampleFormatCounts shows how the toast counts are summarised
func ExampleFormatCounts() {
	fmt.Println(statusbar.FormatCounts(statusbar.Counts{Active: 3, Paused: 1}))
	// Output: 3 active · 1 paused
}
