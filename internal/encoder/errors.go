package encoder

import "errors"

var (
	// ErrInvalidTagWidth is returned when an enumeration declares a tag
	// width of zero or wider than DefaultTagWidth.
	ErrInvalidTagWidth = errors.New("invalid tag width")
	// ErrMissingWidthHint is returned by HintedEnum for names without a
	// "Wants<N>Bits" suffix.
	ErrMissingWidthHint = errors.New("enum name carries no width hint")
	// ErrNilEnum is set when a variant is written without an enumeration.
	ErrNilEnum = errors.New("variant written without an enum")
	// ErrUnsupportedType is set when a value has no bit encoding.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrStringTooLong is returned when a string does not fit the 16-bit
	// length field of the string table.
	ErrStringTooLong = errors.New("string too long for string table")
	// ErrTooManyStrings is returned when the string table needs indices
	// wider than MaxIndexWidth.
	ErrTooManyStrings = errors.New("too many distinct strings")
	// ErrFinished is set when an Encoder is used after Finish.
	ErrFinished = errors.New("encoder already finished")
)
