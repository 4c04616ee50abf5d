package encoder

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/batatacode/internal/bitstream"
)

// readBack returns a reader positioned at the start of the result stream.
func readBack(t *testing.T, res *Result) *bitstream.Reader {
	t.Helper()
	require.NotNil(t, res)
	return res.Stream.Reader()
}

func TestPrimitivesAreLSBFirstAtFullWidth(t *testing.T) {
	e := New()
	e.Bool(true)
	e.Int8(-1)
	e.Int16(-2)
	e.Int32(math.MinInt32)
	e.Int64(-3)
	e.Uint8(0x81)
	e.Uint16(0xBEEF)
	e.Uint32(0xDEADBEEF)
	e.Uint64(1 << 63)
	e.Float32(1.0)
	e.Float64(-2.5)
	e.Char('é')
	e.Bytes([]byte{0x01, 0x80})
	res, err := e.Finish()
	require.NoError(t, err)

	r := readBack(t, res)
	assert.True(t, r.ReadBit())
	assert.Equal(t, uint64(0xFF), r.Read(8))
	assert.Equal(t, uint64(0xFFFE), r.Read(16))
	assert.Equal(t, uint64(0x80000000), r.Read(32))
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFD), r.Read(64))
	assert.Equal(t, uint64(0x81), r.Read(8))
	assert.Equal(t, uint64(0xBEEF), r.Read(16))
	assert.Equal(t, uint64(0xDEADBEEF), r.Read(32))
	assert.Equal(t, uint64(1<<63), r.Read(64))
	assert.Equal(t, uint64(math.Float32bits(1.0)), r.Read(32))
	assert.Equal(t, math.Float64bits(-2.5), r.Read(64))
	assert.Equal(t, uint64(0xE9), r.Read(32))
	assert.Equal(t, uint64(0x8001), r.Read(16))
	assert.Zero(t, r.Remaining())
}

func TestNoStringsLeavesStreamUntouched(t *testing.T) {
	e := New()
	e.Seq(2)
	e.Uint16(7)
	e.Uint16(9)
	body := e.bits
	res, err := e.Finish()
	require.NoError(t, err)

	assert.Nil(t, res.Strings)
	assert.Zero(t, res.IndexWidth)
	assert.Equal(t, body.Bytes(), res.Stream.Bytes())
	assert.Equal(t, uint64(LengthWidth+32), res.Stream.Len())
}

func TestSingleStringNeedsNoIndexBits(t *testing.T) {
	e := New()
	e.String("x")
	e.Uint8(0x5A)
	e.String("x")
	res, err := e.Finish()
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, res.Strings)
	assert.Zero(t, res.IndexWidth)

	r := readBack(t, res)
	assert.Equal(t, uint64(1), r.Read(StringLengthWidth))
	assert.Equal(t, uint64('x'), r.Read(8))
	assert.Equal(t, uint64(0x5A), r.Read(8))
	assert.Zero(t, r.Remaining())
}

func TestStringTableIsSortedAndIndicesAreSpliced(t *testing.T) {
	e := New()
	e.String("b")
	e.Uint8(0xAA)
	e.String("a")
	e.String("c")
	e.String("a")
	res, err := e.Finish()
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b", "c"}, res.Strings)
	require.Equal(t, uint32(2), res.IndexWidth)

	r := readBack(t, res)
	for _, s := range res.Strings {
		assert.Equal(t, uint64(len(s)), r.Read(StringLengthWidth))
		assert.Equal(t, uint64(s[0]), r.Read(8))
	}
	assert.Equal(t, uint64(1), r.Read(2), "b")
	assert.Equal(t, uint64(0xAA), r.Read(8))
	assert.Equal(t, uint64(0), r.Read(2), "a")
	assert.Equal(t, uint64(2), r.Read(2), "c")
	assert.Equal(t, uint64(0), r.Read(2), "a")
	assert.Zero(t, r.Remaining())
}

func TestSamePositionKeepsCallOrder(t *testing.T) {
	e := New()
	e.String("zz")
	e.String("aa")
	res, err := e.Finish()
	require.NoError(t, err)

	r := readBack(t, res)
	r.Seek(2 * (StringLengthWidth + 16))
	assert.Equal(t, uint64(1), r.Read(1))
	assert.Equal(t, uint64(0), r.Read(1))
}

func TestStringTooLong(t *testing.T) {
	e := New()
	e.String(strings.Repeat("s", math.MaxUint16+1))
	_, err := e.Finish()
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestIndexWidth(t *testing.T) {
	for count, want := range map[int]uint32{0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 256: 8, 257: 9} {
		assert.Equal(t, want, IndexWidth(count), "count %d", count)
	}
}

func TestTupleAlwaysHasLengthPrefix(t *testing.T) {
	type record struct {
		V [3]int8
	}
	res, err := Encode(record{V: [3]int8{1, -1, 2}})
	require.NoError(t, err)

	r := readBack(t, res)
	assert.Equal(t, uint64(3), r.Read(LengthWidth))
	assert.Equal(t, uint64(1), r.Read(8))
	assert.Equal(t, uint64(0xFF), r.Read(8))
	assert.Equal(t, uint64(2), r.Read(8))
	assert.Zero(t, r.Remaining())
}

func TestReflectedRecordsAndSequences(t *testing.T) {
	type inner struct {
		A uint8
		B bool
	}
	type outer struct {
		Items  []inner
		Label  string
		hidden uint64
		Skip   uint64 `bits:"-"`
		Empty  struct{}
	}
	res, err := Encode(outer{Items: []inner{{A: 1, B: true}, {A: 2}}, Label: "l", hidden: 1, Skip: 1})
	require.NoError(t, err)

	r := readBack(t, res)
	assert.Equal(t, uint64(1), r.Read(StringLengthWidth))
	assert.Equal(t, uint64('l'), r.Read(8))
	assert.Equal(t, uint64(2), r.Read(LengthWidth))
	assert.Equal(t, uint64(1), r.Read(8))
	assert.True(t, r.ReadBit())
	assert.Equal(t, uint64(2), r.Read(8))
	assert.False(t, r.ReadBit())
	assert.Zero(t, r.Remaining())
}

func TestMapEntriesAreInterleavedInKeyOrder(t *testing.T) {
	res, err := Encode(map[uint8]uint8{3: 30, 1: 10, 2: 20})
	require.NoError(t, err)

	r := readBack(t, res)
	assert.Equal(t, uint64(3), r.Read(LengthWidth))
	for _, want := range []uint64{1, 10, 2, 20, 3, 30} {
		assert.Equal(t, want, r.Read(8))
	}
}

func TestOptionals(t *testing.T) {
	five := uint8(5)
	type withOptional struct {
		Absent  *uint8
		Present *uint8
	}
	v := withOptional{Present: &five}

	t.Run("presence bit", func(t *testing.T) {
		res, err := Encode(v)
		require.NoError(t, err)
		r := readBack(t, res)
		assert.False(t, r.ReadBit())
		assert.True(t, r.ReadBit())
		assert.Equal(t, uint64(5), r.Read(8))
		assert.Zero(t, r.Remaining())
	})

	t.Run("legacy drops payload", func(t *testing.T) {
		res, err := Encode(v, LegacyOptionals())
		require.NoError(t, err)
		assert.Zero(t, res.Stream.Len())
	})

	t.Run("explicit calls", func(t *testing.T) {
		e := New(LegacyOptionals())
		e.None()
		e.Some(uint8(1))
		e.Unit()
		assert.Zero(t, e.Len())
	})
}

type byteLeaf uint8

func (b *byteLeaf) EncodeBits(e *Encoder) { e.Uint8(uint8(*b)) }

type shape interface{ EncodeBits(*Encoder) }

func TestEncodableBehindPointerKeepsPresenceBit(t *testing.T) {
	t.Parallel()

	leaf := byteLeaf(0x5A)
	type holder struct {
		P *byteLeaf
		I shape
	}

	testCases := []struct {
		name   string
		value  holder
		legacy bool
		want   []uint64 // alternating widths and values
	}{
		{name: "both absent", value: holder{}, want: []uint64{1, 0, 1, 0}},
		{name: "both present", value: holder{P: &leaf, I: &leaf}, want: []uint64{1, 1, 8, 0x5A, 1, 1, 1, 1, 8, 0x5A}},
		{name: "pointer only", value: holder{P: &leaf}, want: []uint64{1, 1, 8, 0x5A, 1, 0}},
		{name: "legacy writes nothing", value: holder{P: &leaf, I: &leaf}, legacy: true, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			var opts []Option
			if tc.legacy {
				opts = append(opts, LegacyOptionals())
			}

			// --- Act ---
			res, err := Encode(tc.value, opts...)

			// --- Assert ---
			require.NoError(t, err)
			r := readBack(t, res)
			for i := 0; i < len(tc.want); i += 2 {
				assert.Equal(t, tc.want[i+1], r.Read(uint32(tc.want[i])), "field %d", i/2)
			}
			assert.Zero(t, r.Remaining())
		})
	}
}

func TestSomeOfNilIsNone(t *testing.T) {
	t.Parallel()

	var absent *byteLeaf
	e := New()
	e.Some(nil)
	e.Some(absent)
	assert.Equal(t, uint64(2), e.Len())

	res, err := e.Finish()
	require.NoError(t, err)
	r := readBack(t, res)
	assert.False(t, r.ReadBit())
	assert.False(t, r.ReadBit())
}

func TestUnsupportedKindIsFatal(t *testing.T) {
	e := New()
	e.Uint8(1)
	e.Value(make(chan int))
	e.Uint8(2)
	assert.Equal(t, uint64(8), e.Len())
	_, err := e.Finish()
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFinishTwice(t *testing.T) {
	e := New()
	_, err := e.Finish()
	require.NoError(t, err)
	_, err = e.Finish()
	require.ErrorIs(t, err, ErrFinished)
}

type point struct{ X, Y int16 }

func (p point) EncodeBits(e *Encoder) {
	e.Int16(p.Y)
	e.Int16(p.X)
}

func TestEncodableOverridesReflection(t *testing.T) {
	res, err := Encode([]point{{X: 1, Y: 2}})
	require.NoError(t, err)

	r := readBack(t, res)
	assert.Equal(t, uint64(1), r.Read(LengthWidth))
	assert.Equal(t, uint64(2), r.Read(16))
	assert.Equal(t, uint64(1), r.Read(16))
}
