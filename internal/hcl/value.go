package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/batatacode/internal/model"
)

// valueFromCty decodes an evaluated argument object with the interchange
// value rules. Nested objects and tuples keep their shape.
func valueFromCty(obj cty.Value) (model.Value, error) {
	if !obj.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	data, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	return model.ParseValue(data)
}
