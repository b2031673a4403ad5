package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphfuzz/codec"
	"github.com/katalvlaran/graphfuzz/core"
)

// reference builds the eight-node graph used throughout the repository.
func reference() *core.Graph[int8] {
	g := core.New[int8]()
	for _, p := range []int8{63, 3, -56, 100, -100, -78, 46, 120} {
		g.AddNode(p)
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}, {3, 7}} {
		g.AddEdge(e[0], e[1])
	}

	return g
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want codec.Format
	}{
		{"json", codec.FormatJSON},
		{"", codec.FormatJSON},
		{"JSON", codec.FormatJSON},
		{"msgpack", codec.FormatMsgPack},
		{" mp ", codec.FormatMsgPack},
	}
	for _, tc := range tests {
		got, err := codec.ParseFormat(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := codec.ParseFormat("xml")
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)

	_, err = codec.New[int]("xml")
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestCodec_RoundTrip(t *testing.T) {
	graphs := map[string]*core.Graph[int8]{
		"empty":     core.New[int8](),
		"reference": reference(),
	}
	loops := core.New[int8]()
	loops.AddNode(1)
	loops.AddNode(-1)
	loops.AddEdge(0, 0)
	loops.AddEdge(0, 1)
	loops.AddEdge(0, 1)
	loops.AddEdge(1, 0)
	graphs["loops-and-parallel"] = loops

	for _, f := range []codec.Format{codec.FormatJSON, codec.FormatMsgPack} {
		c, err := codec.New[int8](f)
		require.NoError(t, err)
		for name, g := range graphs {
			t.Run(string(f)+"/"+name, func(t *testing.T) {
				data, err := c.Encode(g)
				require.NoError(t, err)

				back, err := c.Decode(data)
				require.NoError(t, err)
				assert.True(t, core.Equal(g, back))
				assert.NoError(t, back.Validate())
			})
		}
	}
}

func TestCodec_JSONWireShape(t *testing.T) {
	c, err := codec.New[int8](codec.FormatJSON)
	require.NoError(t, err)

	g := core.New[int8]()
	g.AddNode(5)
	g.AddNode(6)
	g.AddEdge(0, 1)

	data, err := c.Encode(g)
	require.NoError(t, err)
	compact := strings.Join(strings.Fields(string(data)), "")
	assert.Equal(t, `{"nodes":[{"data":5,"edges":[1]},{"data":6,"edges":[]}]}`, compact)

	back, err := c.Decode([]byte(`{"nodes":[{"data":5,"edges":[1]},{"data":6,"edges":[]}]}`))
	require.NoError(t, err)
	assert.True(t, core.Equal(g, back))
}

func TestCodec_StructPayload(t *testing.T) {
	type op struct {
		Name string `json:"name" msgpack:"name"`
		Arg  []byte `json:"arg" msgpack:"arg"`
	}
	g := core.New[op]()
	g.AddNode(op{Name: "open", Arg: []byte{1, 2}})
	g.AddNode(op{Name: "close"})
	g.AddEdge(0, 1)

	for _, f := range []codec.Format{codec.FormatJSON, codec.FormatMsgPack} {
		c, err := codec.New[op](f)
		require.NoError(t, err)
		data, err := c.Encode(g)
		require.NoError(t, err)
		back, err := c.Decode(data)
		require.NoError(t, err)
		ok := core.EqualFunc(g, back, func(a, b op) bool {
			return a.Name == b.Name && bytes.Equal(a.Arg, b.Arg)
		})
		assert.True(t, ok, string(f))
	}
}

func TestCodec_DecodeRejects(t *testing.T) {
	c, err := codec.New[int8](codec.FormatJSON)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"garbage", `{{{`, codec.ErrMalformed},
		{"payload overflow", `{"nodes":[{"data":300,"edges":[]}]}`, codec.ErrMalformed},
		{"dangling edge", `{"nodes":[{"data":1,"edges":[1]}]}`, codec.ErrInvalidGraph},
		{"negative edge", `{"nodes":[{"data":1,"edges":[-1]}]}`, codec.ErrInvalidGraph},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := c.Decode([]byte(tc.in))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	mp, err := codec.New[int8](codec.FormatMsgPack)
	require.NoError(t, err)
	_, err = mp.Decode([]byte{0xc1})
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

func TestCodec_EncodeNil(t *testing.T) {
	c, err := codec.New[int8](codec.FormatJSON)
	require.NoError(t, err)
	_, err = c.Encode(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

// FuzzDecodeJSON checks that arbitrary bytes never yield an invalid graph and
// that anything accepted survives a re-encode.
func FuzzDecodeJSON(f *testing.F) {
	c, err := codec.New[int8](codec.FormatJSON)
	if err != nil {
		f.Fatal(err)
	}
	seed, err := c.Encode(reference())
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)
	f.Add([]byte(`{"nodes":[]}`))
	f.Add([]byte(`{"nodes":[{"data":1,"edges":[0,0]}]}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		g, err := c.Decode(data)
		if err != nil {
			return
		}
		require.NoError(t, g.Validate())
		again, err := c.Encode(g)
		require.NoError(t, err)
		back, err := c.Decode(again)
		require.NoError(t, err)
		require.True(t, core.Equal(g, back))
	})
}
