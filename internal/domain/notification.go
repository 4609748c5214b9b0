package domain

import (
	"fmt"
	"strings"
	"time"
)

// ID identifies an active notification. It is opaque to consumers.
type ID string

// Type selects the icon and colour scheme of a notification
type Type int

const (
	TypeSuccess Type = iota
	TypeError
	TypeInfo
	TypeWarning
)

// Types returns every known notification type in display order
func Types() []Type {
	return []Type{TypeSuccess, TypeError, TypeInfo, TypeWarning}
}

// String returns the lowercase name of the type
func (t Type) String() string {
	switch t {
	case TypeSuccess:
		return "success"
	case TypeError:
		return "error"
	case TypeInfo:
		return "info"
	case TypeWarning:
		return "warning"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Valid reports whether t is one of the four known types
func (t Type) Valid() bool {
	switch t {
	case TypeSuccess, TypeError, TypeInfo, TypeWarning:
		return true
	}
	return false
}

// ParseType parses a type name such as "success" or "WARNING"
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Notification is a single transient message shown to the user
type Notification struct {
	ID        ID
	Type      Type
	Title     string
	Message   string
	CreatedAt time.Time
}

// HasMessage reports whether the notification carries secondary text
func (n Notification) HasMessage() bool {
	return strings.TrimSpace(n.Message) != ""
}

// Validate checks the fields a store must enforce before accepting n
func (n Notification) Validate() error {
	if !n.Type.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownType, n.Type)
	}
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
