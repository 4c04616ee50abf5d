package encoder

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultTagWidth is the number of bits used for a variant tag when its
// enumeration declares no narrower width.
const DefaultTagWidth = 32

// widthHint matches enumeration names of the form "<Name>Wants<N>Bits".
var widthHint = regexp.MustCompile(`^(.*)Wants(\d+)Bits$`)

// Enum describes an enumerated type whose variant tags the Encoder writes.
// The tag width is fixed when the Enum is created and never re-derived.
type Enum struct {
	name  string
	width uint32
}

// EnumOption configures an Enum at registration.
type EnumOption func(*Enum)

// Width declares the number of bits a variant tag of the enumeration uses.
func Width(bits uint32) EnumOption {
	return func(e *Enum) { e.width = bits }
}

// NewEnum registers an enumerated type. The tag width comes from a Width
// option when given, otherwise from a "Wants<N>Bits" suffix on name, and
// falls back to DefaultTagWidth.
func NewEnum(name string, opts ...EnumOption) (*Enum, error) {
	e := &Enum{name: name}
	for _, opt := range opts {
		opt(e)
	}
	if e.width == 0 {
		if bits, ok := ParseWidthHint(name); ok {
			e.width = bits
		} else {
			e.width = DefaultTagWidth
		}
	}
	if e.width == 0 || e.width > DefaultTagWidth {
		return nil, fmt.Errorf("enum %s: %w: %d", name, ErrInvalidTagWidth, e.width)
	}
	return e, nil
}

// MustEnum is like NewEnum but panics on error. It is intended for
// package-level registration.
func MustEnum(name string, opts ...EnumOption) *Enum {
	e, err := NewEnum(name, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// HintedEnum registers an enumeration whose width must come from a
// "Wants<N>Bits" suffix on its name.
func HintedEnum(name string) (*Enum, error) {
	if _, ok := ParseWidthHint(name); !ok {
		return nil, fmt.Errorf("enum %s: %w", name, ErrMissingWidthHint)
	}
	return NewEnum(name)
}

// ParseWidthHint extracts N from a name of the form "<Name>Wants<N>Bits".
func ParseWidthHint(name string) (uint32, bool) {
	m := widthHint.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Name returns the registered name of the enumeration.
func (e *Enum) Name() string { return e.name }

// TagWidth returns the number of bits each variant tag occupies.
func (e *Enum) TagWidth() uint32 { return e.width }

// Fits reports whether ordinal can be written without losing bits.
func (e *Enum) Fits(ordinal uint32) bool {
	return e.width >= 32 || ordinal < 1<<e.width
}

func (e *Enum) String() string {
	return fmt.Sprintf("%s(%d bits)", e.name, e.width)
}
