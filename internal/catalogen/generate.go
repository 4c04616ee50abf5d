package catalogen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"text/template"
)

// ErrEmptyEnum is returned when an identifier set has no members.
var ErrEmptyEnum = errors.New("identifier set is empty")

type variant struct {
	Const string
	Wire  string
}

type enumData struct {
	Type     string
	Doc      string
	Width    uint32
	Variants []variant
}

var fileTemplate = template.Must(template.New("catalog").Parse(`// Code generated by catalogen. DO NOT EDIT.

package {{.Package}}

import "github.com/vk/batatacode/internal/encoder"
{{range .Enums}}
// {{.Type}} {{.Doc}}
type {{.Type}} uint16

const (
{{- range $i, $v := .Variants}}
	{{$v.Const}}{{if eq $i 0}} {{$.Type}} = iota{{end}}
{{- end}}
)

// {{.Type}}s holds every {{.Type}} in ordinal order.
var {{.Type}}s = NewSet[{{.Type}}]("{{.Type}}", []string{
{{- range .Variants}}
	"{{.Wire}}",
{{- end}}
}{{if .Width}}, encoder.Width({{.Width}}){{end}})

func (v {{.Type}}) String() string { return {{.Type}}s.Name(v) }

func (v {{.Type}}) MarshalText() ([]byte, error) { return {{.Type}}s.MarshalText(v) }

func (v *{{.Type}}) UnmarshalText(text []byte) error { return {{.Type}}s.UnmarshalText(text, v) }

func (v {{.Type}}) EncodeBits(e *encoder.Encoder) { {{.Type}}s.Encode(e, v) }
{{end}}`))

// Generate writes gofmt-formatted Go source declaring enums into package pkg.
func Generate(w io.Writer, pkg string, enums []Enum) error {
	data := struct {
		Package string
		Enums   []enumData
	}{Package: pkg}

	for _, en := range enums {
		if len(en.IDs) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyEnum, en.Type)
		}
		d := enumData{Type: en.Type, Doc: en.Doc, Width: en.Width}
		for _, id := range en.IDs {
			d.Variants = append(d.Variants, variant{
				Const: ConstName(en.Type, id),
				Wire:  WireName(id),
			})
		}
		data.Enums = append(data.Enums, d)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
