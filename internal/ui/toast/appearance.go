package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toaster/internal/domain"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// Appearance is the fixed visual identity of a notification type
type Appearance struct {
	Icon   string
	Accent lipgloss.Color
	Box    lipgloss.Style
}

// AppearanceFor returns the icon, accent colour and box style for t.
// There is no fallback: an unknown type yields the zero Appearance.
func AppearanceFor(s *styles.Styles, t domain.Type) Appearance {
	if !t.Valid() {
		return Appearance{}
	}
	return Appearance{
		Icon:   styles.TypeIcons[t],
		Accent: styles.TypeColors[t],
		Box:    s.Toast(t),
	}
}
