package app

import "github.com/riordanpawley/toaster/internal/domain"

type sample struct {
	title   string
	message string
}

// samples are the canned notifications pushed from the keyboard
var samples = map[domain.Type][]sample{
	domain.TypeSuccess: {
		{"Changes saved", "Your settings were written to disk."},
		{"Upload complete", ""},
		{"Deploy finished", "Version 1.4.2 is live on all regions."},
	},
	domain.TypeError: {
		{"Connection lost", "Retrying in a few seconds."},
		{"Build failed", "3 packages did not compile."},
		{"Permission denied", ""},
	},
	domain.TypeInfo: {
		{"New version available", "Restart to update."},
		{"Sync in progress", ""},
		{"Tip", "Hover a notification to keep it on screen."},
	},
	domain.TypeWarning: {
		{"Disk almost full", "Less than 1 GB remaining."},
		{"Session expiring", "You will be signed out in 5 minutes."},
		{"Slow response", ""},
	},
}

// sampleFor picks the n-th canned notification of a type, wrapping around
func sampleFor(t domain.Type, n int) sample {
	list := samples[t]
	if len(list) == 0 {
		return sample{title: t.String()}
	}
	return list[n%len(list)]
}
