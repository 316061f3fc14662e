// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package exec

import (
	"github.com/ptxhq/ptx/internal/event"
	"github.com/ptxhq/ptx/internal/query"
)

// Evaluate implements spec.md §4.8 rule 1: the filter-expression
// evaluation rules, including the documented missing-field/numeric
// comparison semantics.
func Evaluate(expr query.Expr, ev event.Event) bool {
	switch e := expr.(type) {
	case *query.Comparison:
		return evalComparison(e, ev)
	case *query.InExpr:
		return evalIn(e, ev)
	case *query.HasExpr:
		_, ok := ev.Get(e.Field)
		return ok
	case *query.MatchExpr:
		return evalMatch(e, ev)
	case *query.UnaryExpr:
		inner := Evaluate(e.Operand, ev)
		return !inner
	case *query.BinaryExpr:
		switch e.Op {
		case query.AND:
			return Evaluate(e.Left, ev) && Evaluate(e.Right, ev)
		case query.OR:
			return Evaluate(e.Left, ev) || Evaluate(e.Right, ev)
		}
	}
	return false
}

// evalComparison fetches the field, treats an absent field as false
// regardless of operator (per spec.md §4.8, "!= on a missing field is
// also false — missing is unknown, not unequal"), and otherwise compares
// numerically when both sides look numeric, else lexicographically.
func evalComparison(c *query.Comparison, ev event.Event) bool {
	v, ok := ev.Get(c.Field)
	if !ok {
		return false
	}
	litValue := literalToValue(c.Value)

	vf, vok := v.AsFloat64Numeric()
	lf, lok := litValue.AsFloat64Numeric()
	if vok && lok {
		return compareFloat(vf, c.Op, lf)
	}
	return compareString(v.Render(), c.Op, litValue.Render())
}

func evalIn(in *query.InExpr, ev event.Event) bool {
	v, ok := ev.Get(in.Field)
	if !ok {
		return false
	}
	for _, lit := range in.Values {
		litValue := literalToValue(lit)
		vf, vok := v.AsFloat64Numeric()
		lf, lok := litValue.AsFloat64Numeric()
		if vok && lok {
			if vf == lf {
				return true
			}
			continue
		}
		if v.Render() == litValue.Render() {
			return true
		}
	}
	return false
}

// evalMatch never panics: the pattern is compiled at parse time (a bad
// pattern is a QuerySyntaxError there), so match failure here can only
// be a genuine non-match or a missing field, both of which are false.
func evalMatch(m *query.MatchExpr, ev event.Event) bool {
	v, ok := ev.Get(m.Field)
	if !ok {
		return false
	}
	return m.Pattern.MatchString(v.Render())
}

func literalToValue(lit query.Literal) event.Value {
	switch lit.Kind {
	case query.LitInt:
		return event.Int(lit.I)
	case query.LitFloat:
		return event.Float(lit.F)
	default:
		return event.String(lit.S)
	}
}

func compareFloat(a float64, op query.CmpOp, b float64) bool {
	switch op {
	case query.Eq:
		return a == b
	case query.Neq:
		return a != b
	case query.Lt:
		return a < b
	case query.Lte:
		return a <= b
	case query.Gt:
		return a > b
	case query.Gte:
		return a >= b
	default:
		return false
	}
}

func compareString(a string, op query.CmpOp, b string) bool {
	switch op {
	case query.Eq:
		return a == b
	case query.Neq:
		return a != b
	case query.Lt:
		return a < b
	case query.Lte:
		return a <= b
	case query.Gt:
		return a > b
	case query.Gte:
		return a >= b
	default:
		return false
	}
}
