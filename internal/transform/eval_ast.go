// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package transform

import "github.com/ptxhq/ptx/internal/query"

// evalExpr is the sum type of the --eval expression language's AST,
// per SPEC_FULL.md's expansion of spec.md §9's "Safe user eval" note.
type evalExpr interface{ isEvalExpr() }

type fieldRef struct{ name string }

func (*fieldRef) isEvalExpr() {}

type literal struct{ lit query.Literal }

func (*literal) isEvalExpr() {}

type arithOp int

const (
	arithAdd arithOp = iota
	arithSub
	arithMul
	arithDiv
)

type arithExpr struct {
	op          arithOp
	left, right evalExpr
}

func (*arithExpr) isEvalExpr() {}

type cmpExpr struct {
	op          query.CmpOp
	left, right evalExpr
}

func (*cmpExpr) isEvalExpr() {}

type condExpr struct {
	cond, then, els evalExpr
}

func (*condExpr) isEvalExpr() {}

type callExpr struct {
	name string
	args []evalExpr
}

func (*callExpr) isEvalExpr() {}

// evalStmt is the top-level form: either "field = expr" (assign) or
// "drop if expr" (conditionally drop the event).
type evalStmt interface{ isEvalStmt() }

type assignStmt struct {
	field string
	expr  evalExpr
}

func (*assignStmt) isEvalStmt() {}

type dropStmt struct {
	cond evalExpr
}

func (*dropStmt) isEvalStmt() {}
