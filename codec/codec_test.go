package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecRoundTrip(t *testing.T) {
	type item struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}

	page := []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		data, err := c.Marshal(page)
		require.NoError(t, err, c.Name())

		var decoded []item
		require.NoError(t, c.Unmarshal(data, &decoded), c.Name())
		assert.Equal(t, page, decoded, c.Name())
	}
}

func TestCodecsAreWireCompatible(t *testing.T) {
	page := []int{1, 2, 3, 4}

	data := MustMarshal(JSON{}, page)

	var decoded []int
	require.NoError(t, GoJSON{}.Unmarshal(data, &decoded))
	assert.Equal(t, page, decoded)
}
