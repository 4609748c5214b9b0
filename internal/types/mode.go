// Package types contains shared types used across the application.
package types

// Mode represents what currently receives key input
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}
