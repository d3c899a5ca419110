package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctale/noctale/internal/entities/catalog"
)

func TestEdgeListUnmarshalRefs(t *testing.T) {
	var media catalog.Media
	raw := `{
		"id": "gurren",
		"title": {"english": "Gurren Lagann"},
		"relations": [{"relation": "SIDE_STORY", "mediaId": "gurren-movie"}],
		"characters": [{"role": "MAIN", "characterId": "simon"}]
	}`

	require.NoError(t, json.Unmarshal([]byte(raw), &media))

	assert.False(t, media.Relations.Aggregated())
	assert.Equal(t, []catalog.MediaRef{
		{Relation: catalog.RelationSideStory, MediaID: "gurren-movie"},
	}, media.Relations.Refs())

	assert.False(t, media.Characters.Aggregated())
	assert.Equal(t, "simon", media.Characters.Refs()[0].CharacterID)
}

func TestEdgeListUnmarshalEdges(t *testing.T) {
	var character catalog.Character
	raw := `{
		"id": "simon",
		"name": {"english": "Simon"},
		"media": {"edges": [{"role": "MAIN", "node": {"id": "gurren", "title": {"english": "Gurren Lagann"}}}]}
	}`

	require.NoError(t, json.Unmarshal([]byte(raw), &character))

	assert.True(t, character.Media.Aggregated())
	edges := character.Media.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, catalog.RoleMain, edges[0].Role)
	assert.Equal(t, "gurren", edges[0].Node.ID)
}

func TestEdgeListMarshalRoundTrip(t *testing.T) {
	refs := catalog.NewRefs[catalog.MediaRef, catalog.MediaEdge]([]catalog.MediaRef{
		{Relation: catalog.RelationSequel, MediaID: "s2"},
	})

	data, err := json.Marshal(refs)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"relation":"SEQUEL","mediaId":"s2"}]`, string(data))

	edges := catalog.NewEdges[catalog.MediaRef]([]catalog.MediaEdge{})
	data, err = json.Marshal(edges)
	require.NoError(t, err)
	assert.JSONEq(t, `{"edges":[]}`, string(data))

	var back catalog.MediaRelationList
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Aggregated())
	assert.Empty(t, back.Edges())
}

func TestEdgeListNilSafety(t *testing.T) {
	var l *catalog.MediaRelationList

	assert.False(t, l.Aggregated())
	assert.Nil(t, l.Refs())
	assert.Nil(t, l.Edges())
	assert.Zero(t, l.Len())
}
