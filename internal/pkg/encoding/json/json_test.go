package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int     `json:"id"`
	Name  *string `json:"name,omitempty"`
	Price float64 `json:"price"`
}

func TestEncodeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `{"id":1,"price":2.5}`, MustEncodeString(item{ID: 1, Price: 2.5}, false))
	assert.Equal(t, "{\n  \"id\": 1,\n  \"price\": 0\n}", MustEncodeString(item{ID: 1}, true))
}

func TestDecodeString(t *testing.T) {
	t.Parallel()
	var out item
	require.NoError(t, DecodeString(`{"id":7,"name":"Bob","price":500.5}`, &out))
	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "Bob", *out.Name)
	assert.InDelta(t, 500.5, out.Price, 0.0001)

	assert.Error(t, DecodeString(`{"id":`, &out))
}
