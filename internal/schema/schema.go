// Package schema holds the gohcl decoding targets of the HCL module format.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// ModuleFile represents the top-level structure of an HCL module file.
type ModuleFile struct {
	Lines []*Line  `hcl:"line,block"`
	Body  hcl.Body `hcl:",remain"`
}

// Line represents a `line` block: one handler of the module.
type Line struct {
	Type       string       `hcl:"type,label"`
	Position   cty.Value    `hcl:"position"`
	Operations []*Operation `hcl:"operation,block"`
}

// Operation represents an `operation` block inside a line.
type Operation struct {
	Action    string      `hcl:"action,label"`
	Arguments []*Argument `hcl:"argument,block"`
}

// Argument represents an `argument` block. Its attributes describe one value
// in the same shape as the JSON interchange format, `type` included.
type Argument struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}
