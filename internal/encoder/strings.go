package encoder

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"
	"slices"

	"github.com/vk/batatacode/internal/bitstream"
)

const (
	// StringLengthWidth is the width of the length written before every
	// string table entry.
	StringLengthWidth = 16
	// MaxIndexWidth is the widest string index the format allows.
	MaxIndexWidth = 32
)

// Result is the output of a finished Encoder.
type Result struct {
	// Stream holds the string table followed by the encoded value.
	Stream *bitstream.Writer
	// Strings is the string table in index order.
	Strings []string
	// IndexWidth is the number of bits of every string index.
	IndexWidth uint32
}

// occurrence is a string recorded at a position of the main stream.
type occurrence struct {
	pos   uint64
	value string
}

// stringTable collects the string occurrences of one Encoder.
type stringTable struct {
	occurrences []occurrence
}

func (t *stringTable) record(pos uint64, s string) {
	t.occurrences = append(t.occurrences, occurrence{pos: pos, value: s})
}

// IndexWidth returns the number of bits needed to address count strings.
func IndexWidth(count int) uint32 {
	if count <= 1 {
		return 0
	}
	return uint32(bits.Len(uint(count - 1)))
}

// finalize builds the string table and splices an index into body at every
// recorded occurrence. body is returned untouched when no string was seen.
func (t *stringTable) finalize(body *bitstream.Writer) (*Result, error) {
	if len(t.occurrences) == 0 {
		return &Result{Stream: body}, nil
	}

	seen := make(map[string]struct{}, len(t.occurrences))
	var table []string
	for _, o := range t.occurrences {
		if _, ok := seen[o.value]; !ok {
			seen[o.value] = struct{}{}
			table = append(table, o.value)
		}
	}
	slices.Sort(table)

	width := IndexWidth(len(table))
	if width > MaxIndexWidth {
		return nil, fmt.Errorf("%w: %d strings need %d-bit indices", ErrTooManyStrings, len(table), width)
	}

	index := make(map[string]uint64, len(table))
	out := &bitstream.Writer{}
	for i, s := range table {
		if len(s) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: %d bytes starting %q", ErrStringTooLong, len(s), s[:32])
		}
		index[s] = uint64(i)
		out.Write(uint64(len(s)), StringLengthWidth)
		out.WriteBytes([]byte(s))
	}

	// Positions only grow while recording, so this keeps call order between
	// occurrences at the same position.
	occurrences := slices.Clone(t.occurrences)
	slices.SortStableFunc(occurrences, func(a, b occurrence) int { return cmp.Compare(a.pos, b.pos) })

	var cursor uint64
	for _, o := range occurrences {
		out.Append(body, cursor, o.pos)
		cursor = o.pos
		out.Write(index[o.value], width)
	}
	out.Append(body, cursor, body.Len())

	return &Result{Stream: out, Strings: table, IndexWidth: width}, nil
}
