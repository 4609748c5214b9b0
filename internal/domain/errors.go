package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound    = errors.New("not found")
	ErrUnknownType = errors.New("unknown notification type")
	ErrEmptyTitle  = errors.New("notification title is empty")
)

// StoreError represents a rejected notification store operation
type StoreError struct {
	Op  string // Operation: "add", "remove", etc.
	ID  ID     // Optional: notification ID
	Err error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("store %s [%s]: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// FeedError represents an invalid event in a notification script
type FeedError struct {
	Index int    // Zero-based event position, -1 for document errors
	Path  string // Optional: script file
	Err   error
}

func (e *FeedError) Error() string {
	prefix := "feed"
	if e.Path != "" {
		prefix = fmt.Sprintf("feed %s", e.Path)
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return fmt.Sprintf("%s: event %d: %v", prefix, e.Index, e.Err)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}
