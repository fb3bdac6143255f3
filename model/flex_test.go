package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntVariants(t *testing.T) {
	cases := []struct {
		in       string
		expected int
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`null`, 0},
		{`""`, 0},
	}

	for _, c := range cases {
		var f FlexInt
		require.NoError(t, json.Unmarshal([]byte(c.in), &f), "input %s", c.in)
		assert.Equal(t, c.expected, f.Int(), "input %s", c.in)
	}

	var f FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
}

func TestAuthorVariants(t *testing.T) {
	var asID Author
	require.NoError(t, json.Unmarshal([]byte(`7`), &asID))
	assert.Equal(t, Author{ID: 7}, asID)

	var asName Author
	require.NoError(t, json.Unmarshal([]byte(`"Stanislaw Lem"`), &asName))
	assert.Equal(t, Author{Name: "Stanislaw Lem"}, asName)

	var asObject Author
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "name": "Stanislaw Lem"}`), &asObject))
	assert.Equal(t, Author{ID: 7, Name: "Stanislaw Lem"}, asObject)

	var asNull Author
	require.NoError(t, json.Unmarshal([]byte(`null`), &asNull))
	assert.Equal(t, Author{}, asNull)
}

func TestBookDisplayAuthor(t *testing.T) {
	b := Book{AuthorName: "From Serializer", Author: Author{Name: "From Object"}}
	assert.Equal(t, "From Serializer", b.DisplayAuthor())

	b = Book{Author: Author{Name: "From Object"}}
	assert.Equal(t, "From Object", b.DisplayAuthor())

	b = Book{Author: Author{ID: 3}}
	assert.Equal(t, "Unknown author", b.DisplayAuthor())
}

func TestBookAuthorShapesDecode(t *testing.T) {
	payloads := []string{
		`{"id": 1, "title": "Dune", "author": 5}`,
		`{"id": 1, "title": "Dune", "author": "Frank Herbert"}`,
		`{"id": 1, "title": "Dune", "author": {"id": 5, "name": "Frank Herbert"}}`,
	}
	for _, p := range payloads {
		var b Book
		require.NoError(t, json.Unmarshal([]byte(p), &b), "payload %s", p)
		assert.Equal(t, "Dune", b.Title)
	}
}
