// Package bytecode compiles a module value graph into its bit-packed form.
package bytecode

import (
	"fmt"

	"github.com/vk/batatacode/internal/encoder"
	"github.com/vk/batatacode/internal/model"
)

// Program is a compiled module.
type Program struct {
	// Data holds the encoded bits. Unused high bits of the last byte are zero.
	Data []byte
	// Bits is the exact length of the encoding in bits.
	Bits uint64
	// Strings is the string table in index order.
	Strings []string
	// IndexWidth is the width of every string index in bits.
	IndexWidth uint32
}

// Encode compiles m. Encoding is all or nothing: on error no partial output
// is returned.
func Encode(m *model.Module) (*Program, error) {
	if m == nil {
		return nil, fmt.Errorf("bytecode: nil module")
	}
	e := encoder.New()
	m.EncodeBits(e)
	res, err := e.Finish()
	if err != nil {
		return nil, fmt.Errorf("bytecode: %w", err)
	}
	return &Program{
		Data:       res.Stream.Bytes(),
		Bits:       res.Stream.Len(),
		Strings:    res.Strings,
		IndexWidth: res.IndexWidth,
	}, nil
}
