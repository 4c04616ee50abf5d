package hcl

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/batatacode/internal/ctxlog"
	"github.com/vk/batatacode/internal/model"
	"github.com/vk/batatacode/internal/schema"
)

// translateLine converts the HCL line schema into the model.
func (l *Loader) translateLine(ctx context.Context, s *schema.Line) (model.Line, error) {
	var line model.Line
	if err := line.Type.UnmarshalText([]byte(s.Type)); err != nil {
		return line, err
	}

	pos, err := translatePosition(s.Position)
	if err != nil {
		return line, err
	}
	line.Position = pos

	line.Operations = make([]model.Operation, 0, len(s.Operations))
	for _, op := range s.Operations {
		translated, err := l.translateOperation(ctx, op)
		if err != nil {
			return line, fmt.Errorf("operation %q: %w", op.Action, err)
		}
		line.Operations = append(line.Operations, translated)
	}
	return line, nil
}

// translatePosition accepts a number or a numeric string between 0 and 255.
func translatePosition(v cty.Value) (uint8, error) {
	num, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("position: %w", err)
	}
	var pos uint8
	if err := gocty.FromCtyValue(num, &pos); err != nil {
		return 0, fmt.Errorf("position: %w", err)
	}
	return pos, nil
}

// translateOperation converts the HCL operation schema into the model.
func (l *Loader) translateOperation(ctx context.Context, s *schema.Operation) (model.Operation, error) {
	var op model.Operation
	if err := op.Action.UnmarshalText([]byte(s.Action)); err != nil {
		return op, err
	}

	op.Arguments = make([]model.NamedArgument, 0, len(s.Arguments))
	for _, arg := range s.Arguments {
		op.Arguments = append(op.Arguments, model.NamedArgument{
			Name:  arg.Name,
			Value: l.translateArgument(ctx, arg),
		})
	}
	return op, nil
}

// translateArgument evaluates the attributes of an argument block into a
// value. Anything that cannot be evaluated or matches no shape yields
// model.Error.
func (l *Loader) translateArgument(ctx context.Context, s *schema.Argument) model.Value {
	logger := ctxlog.FromContext(ctx).With("argument", s.Name)

	attrs, diags := s.Body.JustAttributes()
	if diags.HasErrors() {
		logger.Debug("Argument body is not attribute-only.", "error", diags.Error())
		return model.Error{}
	}

	fields := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			logger.Debug("Argument attribute did not evaluate.", "attribute", name, "error", diags.Error())
			return model.Error{}
		}
		fields[name] = val
	}

	v, err := valueFromCty(cty.ObjectVal(fields))
	if err != nil {
		logger.Debug("Argument matched no value shape.", "error", err)
		return model.Error{}
	}
	return v
}

