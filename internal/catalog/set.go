package catalog

import (
	"errors"
	"fmt"

	"github.com/vk/batatacode/internal/encoder"
)

// ErrUnknownIdentifier is returned when a name is not a member of a set.
var ErrUnknownIdentifier = errors.New("unknown identifier")

// Ordinal is the underlying type of every catalog identifier.
type Ordinal interface {
	~uint8 | ~uint16
}

// Set is a closed, ordered set of identifiers. The ordinal of an identifier
// is its position in the name list.
type Set[T Ordinal] struct {
	enum  *encoder.Enum
	names []string
	index map[string]T
}

// NewSet registers a set of identifiers under typeName. names are the wire
// names used by loaders, in ordinal order. Generated sets are sorted.
func NewSet[T Ordinal](typeName string, names []string, opts ...encoder.EnumOption) *Set[T] {
	s := &Set[T]{
		enum:  encoder.MustEnum(typeName, opts...),
		names: names,
		index: make(map[string]T, len(names)),
	}
	for i, n := range names {
		if _, dup := s.index[n]; dup {
			panic(fmt.Sprintf("catalog: duplicate %s identifier %q", typeName, n))
		}
		s.index[n] = T(i)
	}
	return s
}

// Enum returns the enumeration the set's tags are written with.
func (s *Set[T]) Enum() *encoder.Enum { return s.enum }

// Len returns the number of identifiers in the set.
func (s *Set[T]) Len() int { return len(s.names) }

// Names returns the wire names in ordinal order.
func (s *Set[T]) Names() []string { return s.names }

// Name returns the wire name of v.
func (s *Set[T]) Name(v T) string {
	if int(v) < len(s.names) {
		return s.names[v]
	}
	return fmt.Sprintf("%s(%d)", s.enum.Name(), v)
}

// Lookup returns the identifier with the given wire name.
func (s *Set[T]) Lookup(name string) (T, bool) {
	v, ok := s.index[name]
	return v, ok
}

// MarshalText returns the wire name of v.
func (s *Set[T]) MarshalText(v T) ([]byte, error) {
	if int(v) >= len(s.names) {
		return nil, fmt.Errorf("%s: ordinal %d out of range", s.enum.Name(), v)
	}
	return []byte(s.names[v]), nil
}

// UnmarshalText stores the identifier named by text into v.
func (s *Set[T]) UnmarshalText(text []byte, v *T) error {
	id, ok := s.index[string(text)]
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUnknownIdentifier, s.enum.Name(), text)
	}
	*v = id
	return nil
}

// Encode writes v as a unit variant tag.
func (s *Set[T]) Encode(e *encoder.Encoder, v T) {
	e.UnitVariant(s.enum, uint32(v))
}
