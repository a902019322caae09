package osc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeFor(t *testing.T) {
	for n, want := range []int{4, 4, 4, 8, 8, 8, 8, 12, 12, 12, 12, 16} {
		if got := sizeFor(n); got != want {
			t.Errorf("sizeFor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestTypeTagBlock_AppendTag(t *testing.T) {
	var b typeTagBlock
	buf := b.init([]byte{'/', 'a', 0, 0})
	require.Equal(t, []byte{'/', 'a', 0, 0, ',', 0, 0, 0}, buf)
	require.Equal(t, 4, b.offset)

	// Stand-in payloads that must follow the block around.
	buf = append(buf, 0xEE, 0xEE, 0xEE, 0xEE)

	buf, grown := b.appendTag(buf, TypeInt32)
	require.False(t, grown)
	buf, grown = b.appendTag(buf, TypeFloat32)
	require.False(t, grown)
	require.Equal(t, []byte{'/', 'a', 0, 0, ',', 'i', 'f', 0, 0xEE, 0xEE, 0xEE, 0xEE}, buf)

	buf, grown = b.appendTag(buf, TypeString)
	require.True(t, grown)
	require.Equal(t, []byte{'/', 'a', 0, 0, ',', 'i', 'f', 's', 0, 0, 0, 0, 0xEE, 0xEE, 0xEE, 0xEE}, buf)
	require.Equal(t, "ifs", string(b.tags(buf)))
	require.Equal(t, 8, b.size())
}

func TestTypeTagBlock_GrowsEveryFourthTag(t *testing.T) {
	var b typeTagBlock
	buf := b.init(nil)
	for i := 1; i <= 40; i++ {
		before := len(buf)
		var grown bool
		buf, grown = b.appendTag(buf, TypeInt32)

		require.Equal(t, i%4 == 3, grown, "tag %d", i)
		if grown {
			require.Equal(t, before+4, len(buf), "tag %d", i)
		} else {
			require.Equal(t, before, len(buf), "tag %d", i)
		}
		require.Equal(t, b.size(), len(buf))
		require.Zero(t, len(buf)%4)
		require.Equal(t, byte(','), buf[0])
		require.Equal(t, byte(0), buf[1+i], "terminator after tag %d", i)
	}
}

func TestTypeTagBlock_Growth(t *testing.T) {
	var b typeTagBlock
	b.init(nil)
	require.Equal(t, 0, b.growth(2))
	require.Equal(t, 4, b.growth(3))
	require.Equal(t, 8, b.growth(7))
	b.count = 2
	require.Equal(t, 4, b.growth(1))
}
