package jsonfmt

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePrettyCollapsesSingleItemArrays(t *testing.T) {
	data := map[string]any{
		"name": "acme/site",
		"extra": map[string]any{
			"installer-paths": map[string]any{
				"web/core":                    []any{"type:drupal-core"},
				"web/modules/contrib/{$name}": []any{"type:drupal-module", "type:drupal-custom-module"},
			},
		},
	}
	got, err := EncodePretty(data)
	require.NoError(t, err)

	want := `{
    "extra": {
        "installer-paths": {
            "web/core": ["type:drupal-core"],
            "web/modules/contrib/{$name}": [
                "type:drupal-module",
                "type:drupal-custom-module"
            ]
        }
    },
    "name": "acme/site"
}`
	assert.Equal(t, want, got)
}

func TestEncodePrettyKeepsSlashesAndHTML(t *testing.T) {
	got, err := EncodePretty(map[string]any{"url": "https://example.com/a?b=1&c=<d>"})
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"url\": \"https://example.com/a?b=1&c=<d>\"\n}", got)
}

func TestEncodePrettyRoundTrips(t *testing.T) {
	data := map[string]any{
		"require":     map[string]any{"drupal/core": "^10.2"},
		"keywords":    []any{"drupal"},
		"empty":       []any{},
		"stability":   "stable",
		"prefer-dist": true,
	}
	got, err := EncodePretty(data)
	require.NoError(t, err)
	assert.Contains(t, got, `"keywords": ["drupal"]`)
	assert.Contains(t, got, `"empty": []`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, "^10.2", decoded["require"].(map[string]any)["drupal/core"])
}

func TestEncodePrettyRejectsUnsupportedValues(t *testing.T) {
	_, err := EncodePretty(map[string]any{"bad": math.Inf(1)})
	require.Error(t, err)
}
