package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUnmarshalEnvelope(t *testing.T) {
	data := []byte(`{"count": 95, "results": [{"id": 1, "title": "Dune"}, {"id": 2, "title": "Solaris"}]}`)

	var list List[Book]
	require.NoError(t, json.Unmarshal(data, &list))

	require.NotNil(t, list.Count)
	assert.Equal(t, 95, *list.Count)
	require.Len(t, list.Results, 2)
	assert.Equal(t, "Dune", list.Results[0].Title)
	assert.Equal(t, 10, list.PageCount(10))
}

func TestListUnmarshalBareArray(t *testing.T) {
	data := []byte(`[{"id": 1, "title": "Dune"}, {"id": 2, "title": "Solaris"}]`)

	var list List[Book]
	require.NoError(t, json.Unmarshal(data, &list))

	assert.Nil(t, list.Count)
	require.Len(t, list.Results, 2)
	assert.Equal(t, 1, list.PageCount(10))
}

// Both backend shapes must yield the same logical item list.
func TestListShapeEquivalence(t *testing.T) {
	envelope := []byte(`{"count": 2, "results": [{"id": 1}, {"id": 2}]}`)
	bare := []byte(`[{"id": 1}, {"id": 2}]`)

	var fromEnvelope, fromBare List[Genre]
	require.NoError(t, json.Unmarshal(envelope, &fromEnvelope))
	require.NoError(t, json.Unmarshal(bare, &fromBare))

	assert.Equal(t, fromEnvelope.Results, fromBare.Results)
}

func TestListUnmarshalNull(t *testing.T) {
	var list List[Book]
	require.NoError(t, json.Unmarshal([]byte(`null`), &list))
	assert.Zero(t, list.Len())
	assert.Equal(t, 1, list.PageCount(10))
}
