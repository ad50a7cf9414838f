package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional fields with non-nil,
// zero-width expression objects, so a simple nil check is insufficient.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}

// evalContext is shared by every attribute of a catalog. It exposes a small
// set of string functions and no variables.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
			"lower":     stdlib.LowerFunc,
			"upper":     stdlib.UpperFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

// evalString evaluates expr to a Go string. Omitted attributes and null
// values yield "".
func evalString(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext, attrName string) (string, error) {
	if !isExprDefined(expr) {
		ctxlog.FromContext(ctx).Debug("Attribute omitted.", "attribute", attrName)
		return "", nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("attribute %q: %w", attrName, diags)
	}
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("attribute %q at %s: value is not known", attrName, expr.Range())
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("attribute %q at %s: %s value cannot be used as text: %w", attrName, expr.Range(), val.Type().FriendlyName(), err)
	}

	var out string
	if err := gocty.FromCtyValue(strVal, &out); err != nil {
		return "", fmt.Errorf("attribute %q at %s: %w", attrName, expr.Range(), err)
	}
	return out, nil
}
