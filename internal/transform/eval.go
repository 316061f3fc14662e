// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"

	"github.com/ptxhq/ptx/internal/event"
	"github.com/ptxhq/ptx/internal/query"
)

// ParseEval compiles a --eval expression string into a Transform. The
// expression is either `field = <expr>` or `drop if <expr>`, restricted
// to the closed operator set in SPEC_FULL.md's expansion of spec.md
// §9's "Safe user eval" redesign note: arithmetic, comparisons, if/then/
// else, and a handful of string functions. There is no identifier-call
// production for anything outside that set, so there is no path to
// arbitrary code execution to guard against at runtime.
func ParseEval(src string) (Transform, error) {
	stmt, err := parseEvalSource(src)
	if err != nil {
		return nil, err
	}
	return Func(func(ev event.Event) (event.Event, bool, error) {
		switch s := stmt.(type) {
		case *assignStmt:
			v, err := evalExprValue(s.expr, ev)
			if err != nil {
				return ev, true, err
			}
			out := ev.Clone()
			out.Set(s.field, v)
			return out, true, nil
		case *dropStmt:
			v, err := evalExprValue(s.cond, ev)
			if err != nil {
				return ev, true, err
			}
			truthy, _ := v.AsBool()
			return ev, !truthy, nil
		default:
			return ev, true, fmt.Errorf("unknown eval statement type %T", stmt)
		}
	}), nil
}

func evalExprValue(e evalExpr, ev event.Event) (event.Value, error) {
	switch n := e.(type) {
	case *fieldRef:
		if v, ok := ev.Get(n.name); ok {
			return v, nil
		}
		return event.Null, nil
	case *literal:
		return literalToEventValue(n.lit), nil
	case *arithExpr:
		return evalArith(n, ev)
	case *cmpExpr:
		return evalCmp(n, ev)
	case *condExpr:
		cv, err := evalExprValue(n.cond, ev)
		if err != nil {
			return event.Null, err
		}
		truthy, _ := cv.AsBool()
		if truthy {
			return evalExprValue(n.then, ev)
		}
		return evalExprValue(n.els, ev)
	case *callExpr:
		return evalCall(n, ev)
	default:
		return event.Null, fmt.Errorf("unknown eval expression type %T", e)
	}
}

func literalToEventValue(lit query.Literal) event.Value {
	switch lit.Kind {
	case query.LitInt:
		return event.Int(lit.I)
	case query.LitFloat:
		return event.Float(lit.F)
	default:
		return event.String(lit.S)
	}
}

func evalArith(n *arithExpr, ev event.Event) (event.Value, error) {
	lv, err := evalExprValue(n.left, ev)
	if err != nil {
		return event.Null, err
	}
	rv, err := evalExprValue(n.right, ev)
	if err != nil {
		return event.Null, err
	}
	lf, lok := lv.AsFloat64Numeric()
	rf, rok := rv.AsFloat64Numeric()
	if !lok || !rok {
		return event.Null, fmt.Errorf("arithmetic operand is not numeric")
	}
	switch n.op {
	case arithAdd:
		return event.Float(lf + rf), nil
	case arithSub:
		return event.Float(lf - rf), nil
	case arithMul:
		return event.Float(lf * rf), nil
	case arithDiv:
		if rf == 0 {
			return event.Null, fmt.Errorf("division by zero")
		}
		return event.Float(lf / rf), nil
	default:
		return event.Null, fmt.Errorf("unknown arithmetic operator")
	}
}

// evalCmp mirrors internal/exec's numeric-if-both-numeric, else
// lexicographic comparison rule, so --eval conditions behave
// consistently with `where` comparisons.
func evalCmp(n *cmpExpr, ev event.Event) (event.Value, error) {
	lv, err := evalExprValue(n.left, ev)
	if err != nil {
		return event.Null, err
	}
	rv, err := evalExprValue(n.right, ev)
	if err != nil {
		return event.Null, err
	}
	lf, lok := lv.AsFloat64Numeric()
	rf, rok := rv.AsFloat64Numeric()
	var result bool
	if lok && rok {
		result = compareFloatOp(lf, n.op, rf)
	} else {
		result = compareStringOp(lv.Render(), n.op, rv.Render())
	}
	return event.Bool(result), nil
}

func compareFloatOp(a float64, op query.CmpOp, b float64) bool {
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

func compareStringOp(a string, op query.CmpOp, b string) bool {
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

func evalCall(n *callExpr, ev event.Event) (event.Value, error) {
	switch n.name {
	case "concat":
		var b strings.Builder
		for _, arg := range n.args {
			v, err := evalExprValue(arg, ev)
			if err != nil {
				return event.Null, err
			}
			b.WriteString(v.Render())
		}
		return event.String(b.String()), nil
	case "lower":
		v, err := evalCallSingleArg(n, ev)
		if err != nil {
			return event.Null, err
		}
		return event.String(strings.ToLower(v.Render())), nil
	case "upper":
		v, err := evalCallSingleArg(n, ev)
		if err != nil {
			return event.Null, err
		}
		return event.String(strings.ToUpper(v.Render())), nil
	case "len":
		v, err := evalCallSingleArg(n, ev)
		if err != nil {
			return event.Null, err
		}
		return event.Int(int64(len(v.Render()))), nil
	default:
		return event.Null, fmt.Errorf("unknown function %q", n.name)
	}
}

func evalCallSingleArg(n *callExpr, ev event.Event) (event.Value, error) {
	if len(n.args) != 1 {
		return event.Null, fmt.Errorf("%s expects exactly one argument", n.name)
	}
	return evalExprValue(n.args[0], ev)
}
