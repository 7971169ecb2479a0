package looseJSON

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAll(t *testing.T) {
	inputs := make([]string, 64)
	for i := range inputs {
		inputs[i] = `{"id":` + strconv.Itoa(i) + `,"tags":["a","b"]}`
	}

	docs, err := DecodeAll(inputs, 8)
	require.NoError(t, err)
	require.Len(t, docs, len(inputs))

	for i, doc := range docs {
		id, err := doc.Dig("id").AsInt()
		assert.NoError(t, err)
		assert.Equal(t, i, id)

		elems, err := doc.Dig("tags").AsArray()
		require.NoError(t, err)
		assert.Len(t, elems, 2)
	}

	for _, doc := range docs {
		Release(doc)
		assert.True(t, doc.Outstanding().Zero())
	}
}

func TestDecodeAllError(t *testing.T) {
	inputs := []string{
		`{"a":"b"}`,
		`{"broken":`,
		`{"c":"d"}`,
	}

	docs, err := DecodeAll(inputs, 2)
	assert.Nil(t, docs)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestDecodeAllEmpty(t *testing.T) {
	docs, err := DecodeAll(nil, 4)
	assert.NoError(t, err)
	assert.Len(t, docs, 0)
}
