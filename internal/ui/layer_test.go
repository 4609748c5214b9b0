package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"

	tests := []struct {
		name string
		top  string
		x, y int
		want string
	}{
		{
			name: "empty top",
			top:  "",
			want: base,
		},
		{
			name: "top right corner",
			top:  "XX\nYY",
			x:    8,
			y:    0,
			want: "aaaaaaaaXX\nbbbbbbbbYY\ncccccccccc",
		},
		{
			name: "clipped at the bottom",
			top:  "XX\nYY\nZZ",
			x:    3,
			y:    2,
			want: "aaaaaaaaaa\nbbbbbbbbbb\ncccXX",
		},
		{
			name: "pads short base lines",
			top:  "XX",
			x:    12,
			y:    1,
			want: "aaaaaaaaaa\nbbbbbbbbbb  XX\ncccccccccc",
		},
		{
			name: "negative origin clamps to zero",
			top:  "XX",
			x:    -4,
			y:    -1,
			want: "XX\nbbbbbbbbbb\ncccccccccc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlay(base, tt.top, tt.x, tt.y))
		})
	}
}

func TestOverlay_ResetsStyledBase(t *testing.T) {
	base := "\x1b[31mredredred\x1b[0m"

	got := Overlay(base, "X", 3, 0)

	assert.Contains(t, got, resetStyle+"X")
}

func TestClip(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		width, height int
		want          string
	}{
		{"fits", "ab\ncd", 5, 5, "ab\ncd"},
		{"too wide", "abcdef\ngh", 3, 5, "abc\ngh"},
		{"too tall", "a\nb\nc", 5, 2, "a\nb"},
		{"both", "abcdef\nghijkl\nmnopqr", 2, 2, "ab\ngh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clip(tt.in, tt.width, tt.height))
		})
	}
}
