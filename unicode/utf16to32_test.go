package unicode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeUTF16(units []uint16) ([]rune, bool) {
	t := NewUTF16To32()
	var out []rune
	for _, u := range units {
		t.Consume(u, func(cp rune) { out = append(out, cp) })
	}
	t.Finish(func(cp rune) { out = append(out, cp) })
	return out, t.WellFormed()
}

func TestUTF16To32_BMP(t *testing.T) {
	out, ok := decodeUTF16([]uint16{'h', 'i'})
	require.True(t, ok)
	require.Equal(t, []rune{'h', 'i'}, out)
}

func TestUTF16To32_SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE as a high/low surrogate pair.
	out, ok := decodeUTF16([]uint16{0xD83D, 0xDE00})
	require.True(t, ok)
	require.Equal(t, []rune{0x1F600}, out)
}

func TestUTF16To32_LoneLowSurrogate(t *testing.T) {
	out, ok := decodeUTF16([]uint16{0xDC00})
	require.False(t, ok)
	require.Equal(t, []rune{Replacement}, out)
}

func TestUTF16To32_LoneHighSurrogateAtEOF(t *testing.T) {
	out, ok := decodeUTF16([]uint16{0xD800})
	require.False(t, ok)
	require.Equal(t, []rune{Replacement}, out)
}

func TestUTF16To32_DoubleHighSurrogate(t *testing.T) {
	out, ok := decodeUTF16([]uint16{0xD800, 0xD801, 0xDC00})
	require.False(t, ok)
	require.Len(t, out, 2)
	require.Equal(t, Replacement, out[0])
}

func TestUTF16To32_PartialTracksPendingHighSurrogate(t *testing.T) {
	tr := NewUTF16To32()
	require.False(t, tr.Partial())
	tr.Consume(0xD83D, func(rune) {})
	require.True(t, tr.Partial())
	tr.Consume(0xDE00, func(rune) {})
	require.False(t, tr.Partial())
}

func TestUTF32To16_SupplementaryPlane(t *testing.T) {
	enc := NewUTF32To16()
	var out []uint16
	enc.Consume(0x1F600, func(u uint16) { out = append(out, u) })
	require.True(t, enc.WellFormed())
	require.Equal(t, []uint16{0xD83D, 0xDE00}, out)
}

func TestUTF32To16_RejectsSurrogateCodePoint(t *testing.T) {
	enc := NewUTF32To16()
	var out []uint16
	enc.Consume(0xD800, func(u uint16) { out = append(out, u) })
	require.False(t, enc.WellFormed())
	require.Equal(t, []uint16{uint16(Replacement)}, out)
}
