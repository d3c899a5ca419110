package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/schema"
)

func TestValidateManifest(t *testing.T) {
	raw := []byte(`{
		"$schema": "https://noctale.dev/schemas/manifest.json",
		"id": "my-pack",
		"title": "My Pack",
		"characters": {
			"new": [
				{
					"id": "protagonist",
					"name": {"english": "The Protagonist"},
					"popularity": 1500,
					"media": [{"role": "MAIN", "mediaId": "my-show"}]
				}
			]
		},
		"media": {
			"conflicts": ["anilist:1"],
			"new": [
				{"id": "my-show", "type": "ANIME", "format": "TV", "title": {"english": "My Show"}}
			]
		}
	}`)

	manifest, err := schema.ValidateManifest(raw)
	require.NoError(t, err)
	assert.Equal(t, "my-pack", manifest.ID)
	require.Len(t, manifest.CharacterEntries(), 1)
	assert.Equal(t, "protagonist", manifest.CharacterEntries()[0].ID)
	assert.Equal(t, []string{"anilist:1"}, manifest.DisabledIDs())
}

func TestValidateManifestReservedID(t *testing.T) {
	for _, id := range []string{"anilist", "vtubers"} {
		_, err := schema.ValidateManifest([]byte(`{"id": "` + id + `"}`))
		require.Error(t, err, id)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "reserved id")
	}
}

func TestValidateManifestSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing id", `{"title": "nameless"}`},
		{"bad id characters", `{"id": "My Pack!"}`},
		{"unknown top-level key", `{"id": "ok", "bogus": true}`},
		{"character without name", `{"id": "ok", "characters": {"new": [{"id": "x"}]}}`},
		{"bad role", `{"id": "ok", "characters": {"new": [{"id": "x", "name": {"english": "X"}, "media": [{"role": "LEAD", "mediaId": "m"}]}]}}`},
		{"not an object", `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.ValidateManifest([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestPurgeReserved(t *testing.T) {
	purged, err := schema.PurgeReserved([]byte(`{"$schema": "x", "id": "ok"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "ok"}`, string(purged))
}
