// Package feed loads scripted notification events from YAML and replays them
// into a store on a timeline.
package feed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/riordanpawley/toaster/internal/domain"
	"gopkg.in/yaml.v3"
)

// Event is one scripted notification. After is measured from playback start.
type Event struct {
	After   time.Duration `yaml:"after"`
	Type    string        `yaml:"type"`
	Title   string        `yaml:"title"`
	Message string        `yaml:"message,omitempty"`

	kind domain.Type `yaml:"-"`
}

// Kind returns the parsed notification type; valid after Parse
func (e Event) Kind() domain.Type {
	return e.kind
}

// Script is an ordered list of events
type Script struct {
	Events []Event `yaml:"events"`
}

// Duration returns the offset of the last event
func (s *Script) Duration() time.Duration {
	var last time.Duration
	for _, e := range s.Events {
		last = max(last, e.After)
	}
	return last
}

// Parse decodes and validates a script. An empty document is an empty script.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var script Script
	if err := dec.Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return nil, &domain.FeedError{Index: -1, Err: err}
	}

	for i := range script.Events {
		if err := script.Events[i].validate(); err != nil {
			return nil, &domain.FeedError{Index: i, Err: err}
		}
	}
	return &script, nil
}

// Load reads and parses the script at path
func Load(path string) (*Script, error) {
	// #nosec G304 - the script path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.FeedError{Index: -1, Path: path, Err: err}
	}

	script, err := Parse(data)
	if err != nil {
		var fe *domain.FeedError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return script, nil
}

func (e *Event) validate() error {
	kind, err := domain.ParseType(e.Type)
	if err != nil {
		return err
	}
	if strings.TrimSpace(e.Title) == "" {
		return domain.ErrEmptyTitle
	}
	if e.After < 0 {
		return fmt.Errorf("negative delay %s", e.After)
	}
	e.kind = kind
	return nil
}
