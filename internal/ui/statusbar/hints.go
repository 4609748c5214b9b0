package statusbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/riordanpawley/toaster/internal/types"
)

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode, keys help.KeyMap) string {
	switch mode {
	case types.ModeNormal:
		h := help.New()
		h.ShortSeparator = "  "
		return h.ShortHelpView(keys.ShortHelp())
	case types.ModeHelp:
		return "j/k: scroll  g/G: jump  esc: close"
	default:
		return ""
	}
}
