package encoder

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"

	"github.com/vk/batatacode/internal/bitstream"
)

// LengthWidth is the number of bits of a sequence, map or tuple length
// prefix: the native word width.
const LengthWidth = bits.UintSize

// Encodable is implemented by values that declare how they decompose into
// the Encoder's primitive and compound vocabulary.
type Encodable interface {
	EncodeBits(e *Encoder)
}

// Option configures an Encoder.
type Option func(*Encoder)

// LegacyOptionals makes Some write nothing and drop its payload, exactly
// like None. Encoded optionals cannot be recovered in this mode.
func LegacyOptionals() Option {
	return func(e *Encoder) { e.legacyOptionals = true }
}

// Encoder walks a value graph and writes it into a bit stream. Strings are
// not written inline; they are collected and placed by Finish.
//
// If there is an error writing any output, all further writing becomes a
// no-op and Finish returns that error.
type Encoder struct {
	bits            bitstream.Writer
	strings         stringTable
	legacyOptionals bool
	finished        bool
	err             error
}

// New returns an Encoder with an empty bit stream.
func New(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Error returns the error which stopped writing to the stream, or nil.
func (e *Encoder) Error() error { return e.err }

// SetError sets the error state and stops writing to the stream. Only the
// first error is kept.
func (e *Encoder) SetError(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Len returns the number of bits written to the main stream so far. Strings
// occupy no bits until Finish.
func (e *Encoder) Len() uint64 { return e.bits.Len() }

func (e *Encoder) ok() bool {
	if e.finished {
		e.SetError(ErrFinished)
	}
	return e.err == nil
}

func (e *Encoder) write(v uint64, count uint32) {
	if e.ok() {
		e.bits.Write(v, count)
	}
}

// Bool writes one bit.
func (e *Encoder) Bool(v bool) {
	if e.ok() {
		e.bits.WriteBit(v)
	}
}

// Int8 writes the 8-bit two's complement pattern of v.
func (e *Encoder) Int8(v int8) { e.write(uint64(uint8(v)), 8) }

// Int16 writes the 16-bit two's complement pattern of v.
func (e *Encoder) Int16(v int16) { e.write(uint64(uint16(v)), 16) }

// Int32 writes the 32-bit two's complement pattern of v.
func (e *Encoder) Int32(v int32) { e.write(uint64(uint32(v)), 32) }

// Int64 writes the 64-bit two's complement pattern of v.
func (e *Encoder) Int64(v int64) { e.write(uint64(v), 64) }

// Uint8 writes v in 8 bits.
func (e *Encoder) Uint8(v uint8) { e.write(uint64(v), 8) }

// Uint16 writes v in 16 bits.
func (e *Encoder) Uint16(v uint16) { e.write(uint64(v), 16) }

// Uint32 writes v in 32 bits.
func (e *Encoder) Uint32(v uint32) { e.write(uint64(v), 32) }

// Uint64 writes v in 64 bits.
func (e *Encoder) Uint64(v uint64) { e.write(v, 64) }

// Float32 writes the IEEE-754 bit pattern of v.
func (e *Encoder) Float32(v float32) { e.write(uint64(math.Float32bits(v)), 32) }

// Float64 writes the IEEE-754 bit pattern of v.
func (e *Encoder) Float64(v float64) { e.write(math.Float64bits(v), 64) }

// Char writes the code point of r in 32 bits.
func (e *Encoder) Char(r rune) { e.write(uint64(uint32(r)), 32) }

// String records an occurrence of s at the current position. No bits are
// written until Finish.
func (e *Encoder) String(s string) {
	if e.ok() {
		e.strings.record(e.bits.Len(), s)
	}
}

// Bytes writes p bit for bit, with no length.
func (e *Encoder) Bytes(p []byte) {
	if e.ok() {
		e.bits.WriteBytes(p)
	}
}

// Unit writes a value with no content, which occupies no bits.
func (e *Encoder) Unit() {}

// None writes an absent optional.
func (e *Encoder) None() {
	if !e.legacyOptionals {
		e.Bool(false)
	}
}

// Some writes a present optional holding v. A nil v is written as None.
func (e *Encoder) Some(v any) {
	if v == nil || isNil(reflect.ValueOf(v)) {
		e.None()
		return
	}
	if e.legacyOptionals {
		return
	}
	e.Bool(true)
	e.Value(v)
}

// Seq writes the length prefix of a sequence of n elements. The caller then
// writes the elements.
func (e *Encoder) Seq(n int) { e.length(n) }

// Map writes the length prefix of a map of n entries. The caller then writes
// each key followed by its value.
func (e *Encoder) Map(n int) { e.length(n) }

// Tuple writes the length prefix of a fixed size tuple of n elements. The
// caller then writes the elements.
func (e *Encoder) Tuple(n int) { e.length(n) }

func (e *Encoder) length(n int) {
	if n < 0 {
		e.SetError(fmt.Errorf("negative length %d", n))
		return
	}
	e.write(uint64(n), LengthWidth)
}

// UnitVariant writes the tag of a variant with no payload.
func (e *Encoder) UnitVariant(en *Enum, ordinal uint32) { e.tag(en, ordinal) }

// NewtypeVariant writes the tag of a variant followed by its single payload v.
func (e *Encoder) NewtypeVariant(en *Enum, ordinal uint32, v any) {
	e.tag(en, ordinal)
	e.Value(v)
}

// TupleVariant writes the length prefix and tag of a variant with n
// positional fields. The caller then writes the fields.
func (e *Encoder) TupleVariant(en *Enum, ordinal uint32, n int) {
	e.length(n)
	e.tag(en, ordinal)
}

// StructVariant writes the tag of a variant with named fields. The caller
// then writes the fields in declaration order.
func (e *Encoder) StructVariant(en *Enum, ordinal uint32) { e.tag(en, ordinal) }

// tag writes the low en.TagWidth() bits of ordinal. Higher bits are dropped.
func (e *Encoder) tag(en *Enum, ordinal uint32) {
	if en == nil {
		e.SetError(ErrNilEnum)
		return
	}
	e.write(uint64(ordinal), en.TagWidth())
}

// Finish places every recorded string and returns the final bit stream. The
// Encoder cannot be written to afterwards.
func (e *Encoder) Finish() (*Result, error) {
	if !e.ok() {
		return nil, e.err
	}
	e.finished = true
	return e.strings.finalize(&e.bits)
}

// Encode writes v with a new Encoder and finishes it.
func Encode(v any, opts ...Option) (*Result, error) {
	e := New(opts...)
	e.Value(v)
	return e.Finish()
}
