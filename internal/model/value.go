package model

import (
	"github.com/vk/batatacode/internal/catalog"
	"github.com/vk/batatacode/internal/encoder"
)

// Kind selects the variant of a Value.
type Kind uint8

const (
	KindArray Kind = iota
	KindBlock
	KindEnum
	KindItem
	KindLocation
	KindNumber
	KindParticle
	KindPotion
	KindSound
	KindText
	KindVariable
	KindVector
	KindGameValue
	KindError
)

// Kinds holds every Kind in ordinal order. The names are the "type" field of
// an interchange value.
var Kinds = catalog.NewSet[Kind]("Value", []string{
	"array",
	"block",
	"enum",
	"item",
	"location",
	"number",
	"particle",
	"potion",
	"sound",
	"text",
	"variable",
	"vector",
	"game_value",
	"error",
})

func (k Kind) String() string { return Kinds.Name(k) }

// Value is an argument value. Every variant writes its Kind as a tag followed
// by its fields in declaration order.
type Value interface {
	encoder.Encodable
	Kind() Kind
}

// Array is a list of nested values.
type Array struct {
	Values []Value
}

// Block names a block.
type Block struct {
	Block string
}

// EnumValue is an enumerated option, normalized to UpperCamel case.
type EnumValue struct {
	Value string
}

// Item is a serialized item stack.
type Item struct {
	Item string
}

// Location is a position with a view direction.
type Location struct {
	X, Y, Z    float64
	Yaw, Pitch float64
}

// Number is either a numeric literal or a calculation expression.
type Number struct {
	Literal float64
	Calc    string
	IsCalc  bool
}

// Literal returns a Number holding f.
func Literal(f float64) Number { return Number{Literal: f} }

// Calc returns a Number holding the expression expr.
func Calc(expr string) Number { return Number{Calc: expr, IsCalc: true} }

// Particle carries no payload.
type Particle struct{}

// Potion is a potion effect.
type Potion struct {
	Potion    string
	Amplifier int16
	Duration  int16
}

// Sound is a sound to play.
type Sound struct {
	Sound     string
	Pitch     float32
	Volume    float32
	Variation string
	Source    string
}

// Text is a text value and how to parse it.
type Text struct {
	Text    string
	Parsing TextParsing
}

// Variable references a variable in a scope.
type Variable struct {
	Variable string
	Scope    VariableScope
}

// Vector is a direction.
type Vector struct {
	X, Y, Z float64
}

// GameValue reads a value from the game for a selection.
type GameValue struct {
	GameValue catalog.GameValueID
	Selection string
}

// Error stands in for an input value that matched no known shape.
type Error struct{}

func (Array) Kind() Kind     { return KindArray }
func (Block) Kind() Kind     { return KindBlock }
func (EnumValue) Kind() Kind { return KindEnum }
func (Item) Kind() Kind      { return KindItem }
func (Location) Kind() Kind  { return KindLocation }
func (Number) Kind() Kind    { return KindNumber }
func (Particle) Kind() Kind  { return KindParticle }
func (Potion) Kind() Kind    { return KindPotion }
func (Sound) Kind() Kind     { return KindSound }
func (Text) Kind() Kind      { return KindText }
func (Variable) Kind() Kind  { return KindVariable }
func (Vector) Kind() Kind    { return KindVector }
func (GameValue) Kind() Kind { return KindGameValue }
func (Error) Kind() Kind     { return KindError }

func structTag(e *encoder.Encoder, k Kind) { e.StructVariant(Kinds.Enum(), uint32(k)) }

// encodeValue writes v. A nil value is written as Error.
func encodeValue(e *encoder.Encoder, v Value) {
	if v == nil {
		v = Error{}
	}
	v.EncodeBits(e)
}

func (v Array) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindArray)
	e.Seq(len(v.Values))
	for _, el := range v.Values {
		encodeValue(e, el)
	}
}

func (v Block) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindBlock)
	e.String(v.Block)
}

func (v EnumValue) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindEnum)
	e.String(v.Value)
}

func (v Item) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindItem)
	e.String(v.Item)
}

func (v Location) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindLocation)
	e.Float64(v.X)
	e.Float64(v.Y)
	e.Float64(v.Z)
	e.Float64(v.Yaw)
	e.Float64(v.Pitch)
}

// EncodeBits writes the tag and then the literal or the expression with no
// marker between them.
func (v Number) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindNumber)
	if v.IsCalc {
		e.String(v.Calc)
		return
	}
	e.Float64(v.Literal)
}

func (v Particle) EncodeBits(e *encoder.Encoder) {
	e.UnitVariant(Kinds.Enum(), uint32(KindParticle))
}

func (v Potion) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindPotion)
	e.String(v.Potion)
	e.Int16(v.Amplifier)
	e.Int16(v.Duration)
}

func (v Sound) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindSound)
	e.String(v.Sound)
	e.Float32(v.Pitch)
	e.Float32(v.Volume)
	e.String(v.Variation)
	e.String(v.Source)
}

func (v Text) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindText)
	e.String(v.Text)
	v.Parsing.EncodeBits(e)
}

func (v Variable) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindVariable)
	e.String(v.Variable)
	v.Scope.EncodeBits(e)
}

func (v Vector) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindVector)
	e.Float64(v.X)
	e.Float64(v.Y)
	e.Float64(v.Z)
}

func (v GameValue) EncodeBits(e *encoder.Encoder) {
	structTag(e, KindGameValue)
	v.GameValue.EncodeBits(e)
	e.String(v.Selection)
}

func (v Error) EncodeBits(e *encoder.Encoder) {
	e.UnitVariant(Kinds.Enum(), uint32(KindError))
}
