package field

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/embedproto/wire"
)

func TestBytes_Storage(t *testing.T) {
	var b Bytes
	b.Init(make([]byte, 4))
	assert.Equal(t, 4, b.Cap())

	require.ErrorIs(t, b.Set([]byte("hello")), wire.ErrArrayFull)
	assert.Zero(t, b.Len())

	require.NoError(t, b.Set([]byte("hey")))
	assert.Equal(t, []byte("hey"), b.Get())

	b.Clear()
	assert.Empty(t, b.Get())
}

func TestBytes_Serialize(t *testing.T) {
	var b Bytes
	b.Init(make([]byte, 8))
	assert.Empty(t, serializeField(t, &b, 4, true))
	assert.Equal(t, []byte{0x22, 0x00}, serializeField(t, &b, 4, false))

	require.NoError(t, b.Set([]byte{1, 2}))
	assert.Equal(t, []byte{0x22, 0x02, 1, 2}, serializeField(t, &b, 4, true))
}

func TestBytes_Deserialize(t *testing.T) {
	var b Bytes
	b.Init(make([]byte, 2))

	require.ErrorIs(t, b.DeserializeCheckType(wire.NewReadBufferFrom([]byte{0x01, 'x'}), wire.WireVarint), wire.ErrInvalidWireType)
	require.ErrorIs(t, b.Deserialize(wire.NewReadBufferFrom([]byte{0x03, 'a', 'b', 'c'})), wire.ErrArrayFull)

	require.NoError(t, b.Deserialize(wire.NewReadBufferFrom([]byte{0x02, 'a', 'b'})))
	assert.Equal(t, []byte("ab"), b.Get())
}

func TestString(t *testing.T) {
	var s String
	s.Init(make([]byte, 5))

	require.ErrorIs(t, s.SetString("too long"), wire.ErrArrayFull)
	require.NoError(t, s.SetString("hi"))
	assert.Equal(t, "hi", s.GetString())
	assert.Equal(t, []byte{0x12, 0x02, 'h', 'i'}, serializeField(t, &s, 2, true))

	s.SetMaxValue()
	assert.Equal(t, "~~~~~", s.GetString())

	var b Bytes
	b.Init(make([]byte, 3))
	b.SetMaxValue()
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 3), b.Get())
}
