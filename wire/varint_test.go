package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

var varintValues = []uint64{
	0, 1, 127, 128, 255, 300, 16383, 16384,
	1<<21 - 1, 1 << 21, 1<<28 - 1, 1 << 28,
	math.MaxUint32, 1 << 35, 1 << 42, 1 << 49, 1 << 56,
	1<<63 - 1, 1 << 63, math.MaxUint64,
}

func TestEncodeVarint_MatchesProtowire(t *testing.T) {
	for _, v := range varintValues {
		w := NewFixedWriteBuffer(make([]byte, MaxVarintLen64))
		require.NoError(t, EncodeVarint(w, v))
		assert.Equal(t, protowire.AppendVarint(nil, v), w.Bytes(), "value %d", v)
		assert.Equal(t, protowire.SizeVarint(v), VarintSize(v), "size of %d", v)
	}
}

func TestDecodeVarint_RoundTrip(t *testing.T) {
	for _, v := range varintValues {
		r := NewReadBufferFrom(protowire.AppendVarint(nil, v))
		got, err := DecodeVarint(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Zero(t, r.Len())
	}
}

func TestDecodeVarint_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEndOfBuffer},
		{"unterminated", []byte{0x80}, ErrEndOfBuffer},
		{"unterminated_long", []byte{0xFF, 0xFF, 0xFF, 0xFF}, ErrEndOfBuffer},
		{"tenth_byte_too_big", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x02}, ErrOverlongVarint},
		{"eleven_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x81, 0x00}, ErrOverlongVarint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReadBufferFrom(tt.data)
			_, err := DecodeVarint(r)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, len(tt.data), r.Len(), "failed decode must not consume")
		})
	}
}

func TestEncodeVarint_BufferFull(t *testing.T) {
	w := NewFixedWriteBuffer(make([]byte, 2))
	require.ErrorIs(t, EncodeVarint(w, 1<<14), ErrBufferFull)
	assert.Zero(t, w.Len(), "failed encode must not write")

	require.NoError(t, EncodeVarint(w, 1<<14-1))
	assert.Equal(t, 2, w.Len())
}

func TestEncodeInteger_SignExtends(t *testing.T) {
	tests := []struct {
		name string
		v    int32
		size int
	}{
		{"minus_one", -1, 10},
		{"min_int32", math.MinInt32, 10},
		{"max_int32", math.MaxInt32, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewFixedWriteBuffer(make([]byte, MaxVarintLen64))
			require.NoError(t, EncodeInteger(w, tt.v))
			assert.Equal(t, protowire.AppendVarint(nil, uint64(int64(tt.v))), w.Bytes())
			assert.Equal(t, tt.size, w.Len())

			got, err := DecodeInteger[int32](NewReadBufferFrom(w.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, tt.v, got)
		})
	}
}

func TestZigZag(t *testing.T) {
	for _, v := range []int64{0, -1, 1, -2, 2, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, protowire.EncodeZigZag(v), EncodeZigZag64(v), "encode %d", v)
		assert.Equal(t, v, DecodeZigZag64(EncodeZigZag64(v)))
	}

	for _, v := range []int32{0, -1, 1, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, protowire.EncodeZigZag(int64(v)), EncodeZigZag32(v), "encode %d", v)
		assert.Equal(t, v, DecodeZigZag32(EncodeZigZag32(v)))
	}

	assert.Equal(t, uint64(0xFFFFFFFF), EncodeZigZag32(math.MinInt32))
}
