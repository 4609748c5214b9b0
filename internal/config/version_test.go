package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionedConfig_LegacyConfig(t *testing.T) {
	// Legacy config without version field and flat display settings
	legacyJSON := `{
		"durationMs": 8000,
		"width": 50,
		"log": {
			"level": "debug"
		}
	}`

	cfg, err := ParseVersionedConfig([]byte(legacyJSON))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Toast.DurationMs)
	assert.Equal(t, 50, cfg.Toast.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseVersionedConfig_Version1(t *testing.T) {
	v1JSON := `{
		"version": 1,
		"toast": {
			"durationMs": 3000,
			"maxActive": 4
		},
		"metrics": {
			"disabled": true
		}
	}`

	cfg, err := ParseVersionedConfig([]byte(v1JSON))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Toast.DurationMs)
	assert.Equal(t, 4, cfg.Toast.MaxActive)
	assert.True(t, cfg.Metrics.Disabled)
}

func TestParseVersionedConfig_FutureVersion(t *testing.T) {
	_, err := ParseVersionedConfig([]byte(`{"version": 999}`))
	assert.ErrorContains(t, err, "newer than supported")
}

func TestParseVersionedConfig_InvalidJSON(t *testing.T) {
	_, err := ParseVersionedConfig([]byte(`{"toast": `))
	assert.Error(t, err)
}

func TestApplyMigrations_V0ToV1(t *testing.T) {
	tests := []struct {
		name      string
		data      map[string]any
		wantToast map[string]any
	}{
		{
			name:      "flat keys move under toast",
			data:      map[string]any{"durationMs": 7000.0, "maxActive": 2.0},
			wantToast: map[string]any{"durationMs": 7000.0, "maxActive": 2.0},
		},
		{
			name: "nested value wins over flat",
			data: map[string]any{
				"width": 30.0,
				"toast": map[string]any{"width": 60.0},
			},
			wantToast: map[string]any{"width": 60.0},
		},
		{
			name:      "nothing to move",
			data:      map[string]any{"log": map[string]any{"level": "warn"}},
			wantToast: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			migrated, err := ApplyMigrations(tt.data, 0)
			require.NoError(t, err)

			assert.Equal(t, 1, migrated["version"])
			for _, k := range legacyToastKeys {
				assert.NotContains(t, migrated, k)
			}
			if tt.wantToast == nil {
				assert.NotContains(t, migrated, "toast")
				return
			}
			assert.Equal(t, tt.wantToast, migrated["toast"])
		})
	}
}

func TestApplyMigrations_NoPath(t *testing.T) {
	_, err := ApplyMigrations(map[string]any{}, -1)
	assert.ErrorContains(t, err, "no migration path")
}

func TestMarshalVersionedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Toast.MaxActive = 3

	data, err := MarshalVersionedConfig(cfg)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, float64(CurrentVersion), result["version"])

	// Round trip through the versioned parser
	parsed, err := ParseVersionedConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}
