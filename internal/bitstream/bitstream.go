// Package bitstream provides an append-only bit buffer and a reader over it.
// Bits are packed least-significant-bit first, both inside every byte and
// inside every field.
package bitstream

import "fmt"

// MaxFieldWidth is the widest field Write and Read accept.
const MaxFieldWidth = 64

// Writer accumulates bits. The zero value is an empty buffer ready to use.
//
// Bits past Len in the last byte are always zero.
type Writer struct {
	buf []byte
	n   uint64
}

// Len returns the number of bits written.
func (w *Writer) Len() uint64 { return w.n }

// WriteBit appends one bit.
func (w *Writer) WriteBit(bit bool) {
	var v uint64
	if bit {
		v = 1
	}
	w.Write(v, 1)
}

// Write appends the low count bits of v. Higher bits of v are dropped.
func (w *Writer) Write(v uint64, count uint32) {
	if count > MaxFieldWidth {
		panic(fmt.Sprintf("bitstream: cannot write %d bits from a %d-bit value", count, MaxFieldWidth))
	}
	if count < MaxFieldWidth {
		v &= 1<<count - 1
	}
	for count > 0 {
		used := uint32(w.n % 8)
		if used == 0 {
			w.buf = append(w.buf, 0)
		}
		take := min(8-used, count)
		w.buf[len(w.buf)-1] |= byte(v << used)
		v >>= take
		count -= take
		w.n += uint64(take)
	}
}

// WriteBytes appends every byte of p as 8 bits.
func (w *Writer) WriteBytes(p []byte) {
	for _, b := range p {
		w.Write(uint64(b), 8)
	}
}

// Append appends the bits [from, to) of src.
func (w *Writer) Append(src *Writer, from, to uint64) {
	r := src.Reader()
	r.Seek(from)
	for left := to - from; left > 0; {
		n := uint32(min(left, MaxFieldWidth))
		w.Write(r.Read(n), n)
		left -= uint64(n)
	}
}

// Bytes returns a copy of the written bits packed into whole bytes.
func (w *Writer) Bytes() []byte {
	return append([]byte(nil), w.buf...)
}

// Reader returns a Reader over the bits written so far.
func (w *Writer) Reader() *Reader {
	return NewReader(w.buf, w.n)
}

// Reader reads fields back from a packed buffer.
type Reader struct {
	data []byte
	n    uint64
	pos  uint64
}

// NewReader reads the first n bits of data.
func NewReader(data []byte, n uint64) *Reader {
	if n > uint64(len(data))*8 {
		panic(fmt.Sprintf("bitstream: %d bits do not fit in %d bytes", n, len(data)))
	}
	return &Reader{data: data, n: n}
}

// Pos returns the offset of the next bit to read.
func (r *Reader) Pos() uint64 { return r.pos }

// Seek moves the read offset to pos.
func (r *Reader) Seek(pos uint64) {
	if pos > r.n {
		panic(fmt.Sprintf("bitstream: seek to %d past end %d", pos, r.n))
	}
	r.pos = pos
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() uint64 { return r.n - r.pos }

// ReadBit reads one bit.
func (r *Reader) ReadBit() bool { return r.Read(1) == 1 }

// Read reads a count-bit field. Reading past the end panics.
func (r *Reader) Read(count uint32) uint64 {
	if count > MaxFieldWidth {
		panic(fmt.Sprintf("bitstream: cannot read %d bits into a %d-bit value", count, MaxFieldWidth))
	}
	if uint64(count) > r.Remaining() {
		panic(fmt.Sprintf("bitstream: read of %d bits with %d left", count, r.Remaining()))
	}
	var v uint64
	for got := uint32(0); got < count; {
		used := uint32(r.pos % 8)
		take := min(8-used, count-got)
		chunk := uint64(r.data[r.pos/8]>>used) & (1<<take - 1)
		v |= chunk << got
		got += take
		r.pos += uint64(take)
	}
	return v
}
