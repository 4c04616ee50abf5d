package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vk/batatacode/internal/textcase"
)

var (
	// ErrMissingField is returned when a required field is absent or null.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownKind is returned when a value's type names no Kind.
	ErrUnknownKind = errors.New("unknown value type")
)

// fields holds the members of one JSON object.
type fields map[string]json.RawMessage

// get decodes the required member name into dst.
func (f fields) get(name string, dst any) error {
	raw, ok := f[name]
	if !ok || isNull(raw) {
		return fmt.Errorf("%w %q", ErrMissingField, name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

// UnmarshalJSON decodes the "handlers" list. Entries that are not objects
// are skipped; a malformed line fails the whole module.
func (m *Module) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	var entries []json.RawMessage
	if err := f.get("handlers", &entries); err != nil {
		return err
	}

	m.Handlers = make([]Line, 0, len(entries))
	for i, raw := range entries {
		if !isObject(raw) {
			continue
		}
		var l Line
		if err := json.Unmarshal(raw, &l); err != nil {
			return fmt.Errorf("handler %d: %w", i, err)
		}
		m.Handlers = append(m.Handlers, l)
	}
	return nil
}

// UnmarshalJSON decodes a line. Unknown line types are an error.
func (l *Line) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.get("type", &l.Type); err != nil {
		return err
	}
	if err := f.get("position", &l.Position); err != nil {
		return err
	}
	return f.get("operations", &l.Operations)
}

// UnmarshalJSON decodes an operation. Unknown actions are an error.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.get("action", &o.Action); err != nil {
		return err
	}
	return f.get("values", &o.Arguments)
}

// UnmarshalJSON decodes a named argument. A value of unknown shape becomes
// Error instead of failing.
func (a *NamedArgument) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.get("name", &a.Name); err != nil {
		return err
	}
	raw, ok := f["value"]
	if !ok {
		return fmt.Errorf("%w %q", ErrMissingField, "value")
	}
	a.Value = DecodeValue(raw)
	return nil
}

// DecodeValue decodes one interchange value. Input that does not match a
// known shape yields Error.
func DecodeValue(data []byte) Value {
	v, err := ParseValue(data)
	if err != nil {
		return Error{}
	}
	return v
}

// ParseValue decodes one interchange value, reporting why it does not match
// a known shape. Nested array elements must all parse.
func ParseValue(data []byte) (Value, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	var name string
	if err := f.get("type", &name); err != nil {
		return nil, err
	}
	kind, ok := Kinds.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, name)
	}

	switch kind {
	case KindArray:
		var raws []json.RawMessage
		if err := f.get("values", &raws); err != nil {
			return nil, err
		}
		arr := Array{Values: make([]Value, 0, len(raws))}
		for i, raw := range raws {
			v, err := ParseValue(raw)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			arr.Values = append(arr.Values, v)
		}
		return arr, nil

	case KindBlock:
		var v Block
		return v, f.get("block", &v.Block)

	case KindEnum:
		var s string
		if err := f.get("enum", &s); err != nil {
			return nil, err
		}
		return EnumValue{Value: textcase.UpperCamel(s)}, nil

	case KindItem:
		var v Item
		return v, f.get("item", &v.Item)

	case KindLocation:
		var v Location
		err := firstError(
			f.get("x", &v.X),
			f.get("y", &v.Y),
			f.get("z", &v.Z),
			f.get("yaw", &v.Yaw),
			f.get("pitch", &v.Pitch),
		)
		return v, err

	case KindNumber:
		raw, ok := f["number"]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingField, "number")
		}
		return parseNumber(raw)

	case KindParticle:
		return Particle{}, nil

	case KindPotion:
		var v Potion
		err := firstError(
			f.get("potion", &v.Potion),
			f.get("amplifier", &v.Amplifier),
			f.get("duration", &v.Duration),
		)
		return v, err

	case KindSound:
		var v Sound
		variation := "variation"
		if _, ok := f[variation]; !ok {
			variation = "variaton"
		}
		err := firstError(
			f.get("sound", &v.Sound),
			f.get("pitch", &v.Pitch),
			f.get("volume", &v.Volume),
			f.get(variation, &v.Variation),
			f.get("source", &v.Source),
		)
		return v, err

	case KindText:
		var v Text
		err := firstError(
			f.get("text", &v.Text),
			f.get("parsing", &v.Parsing),
		)
		return v, err

	case KindVariable:
		var v Variable
		err := firstError(
			f.get("variable", &v.Variable),
			f.get("scope", &v.Scope),
		)
		return v, err

	case KindVector:
		var v Vector
		err := firstError(
			f.get("x", &v.X),
			f.get("y", &v.Y),
			f.get("z", &v.Z),
		)
		return v, err

	case KindGameValue:
		var v GameValue
		err := firstError(
			f.get("game_value", &v.GameValue),
			f.get("selection", &v.Selection),
		)
		return v, err

	default:
		return Error{}, nil
	}
}

// parseNumber tries a numeric literal first and an expression second.
// Numeric-looking strings stay expressions.
func parseNumber(raw json.RawMessage) (Number, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil && !isNull(raw) {
		return Literal(f), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && !isNull(raw) {
		return Calc(s), nil
	}
	return Number{}, fmt.Errorf("number: neither a literal nor an expression: %s", raw)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
