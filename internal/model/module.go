package model

import (
	"github.com/vk/batatacode/internal/catalog"
	"github.com/vk/batatacode/internal/encoder"
)

// Module is the root of one program.
type Module struct {
	Handlers []Line
}

// Line is one handler of a module.
type Line struct {
	Type       LineType
	Position   uint8
	Operations []Operation
}

// Operation invokes one action with its arguments in input order.
type Operation struct {
	Action    catalog.ActionID
	Arguments []NamedArgument
}

// NamedArgument is an argument value and the name it was given. The name is
// not encoded.
type NamedArgument struct {
	Name  string
	Value Value
}

// LineType is the kind of a line.
type LineType uint8

const (
	LineTypeProcess LineType = iota
	LineTypeFunction
	LineTypeEvent
)

// LineTypes holds every LineType in ordinal order.
var LineTypes = catalog.NewSet[LineType]("LineType", []string{"process", "function", "event"})

func (t LineType) String() string { return LineTypes.Name(t) }

func (t LineType) MarshalText() ([]byte, error) { return LineTypes.MarshalText(t) }

func (t *LineType) UnmarshalText(text []byte) error { return LineTypes.UnmarshalText(text, t) }

func (t LineType) EncodeBits(e *encoder.Encoder) { LineTypes.Encode(e, t) }

// TextParsing selects how a Text value is interpreted.
type TextParsing uint8

const (
	TextParsingLegacy TextParsing = iota
	TextParsingPlain
)

// TextParsings holds every TextParsing in ordinal order.
var TextParsings = catalog.NewSet[TextParsing]("TextParsing", []string{"legacy", "plain"})

func (p TextParsing) String() string { return TextParsings.Name(p) }

func (p TextParsing) MarshalText() ([]byte, error) { return TextParsings.MarshalText(p) }

func (p *TextParsing) UnmarshalText(text []byte) error { return TextParsings.UnmarshalText(text, p) }

func (p TextParsing) EncodeBits(e *encoder.Encoder) { TextParsings.Encode(e, p) }

// VariableScope is the lifetime of a variable.
type VariableScope uint8

const (
	VariableScopeLocal VariableScope = iota
	VariableScopeGlobal
	VariableScopeSave
)

// VariableScopes holds every VariableScope in ordinal order.
var VariableScopes = catalog.NewSet[VariableScope]("VariableScope", []string{"local", "global", "save"})

func (s VariableScope) String() string { return VariableScopes.Name(s) }

func (s VariableScope) MarshalText() ([]byte, error) { return VariableScopes.MarshalText(s) }

func (s *VariableScope) UnmarshalText(text []byte) error {
	return VariableScopes.UnmarshalText(text, s)
}

func (s VariableScope) EncodeBits(e *encoder.Encoder) { VariableScopes.Encode(e, s) }

// EncodeBits writes the handlers as a sequence.
func (m *Module) EncodeBits(e *encoder.Encoder) {
	e.Seq(len(m.Handlers))
	for i := range m.Handlers {
		m.Handlers[i].EncodeBits(e)
	}
}

// EncodeBits writes the line type tag, the position and the operations.
func (l *Line) EncodeBits(e *encoder.Encoder) {
	l.Type.EncodeBits(e)
	e.Uint8(l.Position)
	e.Seq(len(l.Operations))
	for i := range l.Operations {
		l.Operations[i].EncodeBits(e)
	}
}

// EncodeBits writes the action tag and the argument values.
func (o *Operation) EncodeBits(e *encoder.Encoder) {
	o.Action.EncodeBits(e)
	e.Seq(len(o.Arguments))
	for i := range o.Arguments {
		o.Arguments[i].EncodeBits(e)
	}
}

// EncodeBits writes the argument value only.
func (a *NamedArgument) EncodeBits(e *encoder.Encoder) {
	encodeValue(e, a.Value)
}
