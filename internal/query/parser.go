// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// parser is a hand-written recursive-descent parser over the token
// stream produced by lexer. spec.md §9 sanctions any parser strategy
// for this grammar ("hand-written recursive-descent is sufficient
// given the small grammar"); see DESIGN.md for why no parser-combinator
// library was introduced for this component.
type parser struct {
	toks []Token
	pos  int
}

// Parse compiles a query string into a Query AST, per the grammar in
// spec.md §4.7 plus the has()/matches productions added by SPEC_FULL.md.
func Parse(src string) (*Query, error) {
	toks, err := newLexer(src).Lex()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != TokEOF {
		return nil, p.errorf("unexpected trailing input %q", p.cur().Text)
	}
	return q, nil
}

func (p *parser) cur() Token  { return p.toks[p.pos] }
func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &QuerySyntaxError{Pos: p.cur().Pos, Msg: fmt.Sprintf(format, args...)}
}

// isKeyword reports whether tok is an identifier token matching kw,
// case-insensitively (grammar keywords are case-insensitive per spec.md §4.7).
func isKeyword(tok Token, kw string) bool {
	return tok.Kind == TokIdent && strings.EqualFold(tok.Text, kw)
}

func (p *parser) parseQuery() (*Query, error) {
	q := &Query{}

	if isKeyword(p.cur(), "where") {
		p.advance()
	}

	// An expression is present unless the next token directly opens a
	// group/agg/sort/limit clause or we're at EOF.
	if !p.atClauseKeyword() && p.cur().Kind != TokEOF {
		expr, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		q.Where = &expr
	}

	for isKeyword(p.cur(), "group") {
		p.advance()
		if isKeyword(p.cur(), "by") {
			p.advance()
		}
		field, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		q.Group = append(q.Group, field)
		for p.cur().Kind == TokComma {
			p.advance()
			field, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			q.Group = append(q.Group, field)
		}
	}

	for p.atAggKeyword() {
		agg, err := p.parseAgg()
		if err != nil {
			return nil, err
		}
		q.Aggs = append(q.Aggs, agg)
	}

	if isKeyword(p.cur(), "sort") {
		p.advance()
		if isKeyword(p.cur(), "by") {
			p.advance()
		}
		field, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		dir := Asc
		if isKeyword(p.cur(), "asc") {
			p.advance()
		} else if isKeyword(p.cur(), "desc") {
			dir = Desc
			p.advance()
		}
		q.Sort = &SortClause{Field: field, Dir: dir}
	}

	if isKeyword(p.cur(), "limit") {
		p.advance()
		if p.cur().Kind != TokInt {
			return nil, p.errorf("expected integer after 'limit'")
		}
		n, err := strconv.ParseUint(p.advance().Text, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid limit value")
		}
		q.Limit = &n
	}

	return q, nil
}

func (p *parser) atClauseKeyword() bool {
	return isKeyword(p.cur(), "group") || p.atAggKeyword() ||
		isKeyword(p.cur(), "sort") || isKeyword(p.cur(), "limit")
}

func (p *parser) atAggKeyword() bool {
	return isKeyword(p.cur(), "count") || isKeyword(p.cur(), "sum") ||
		isKeyword(p.cur(), "avg") || isKeyword(p.cur(), "min") || isKeyword(p.cur(), "max")
}

func (p *parser) parseAgg() (Agg, error) {
	tok := p.advance()
	switch {
	case strings.EqualFold(tok.Text, "count"):
		return Agg{Func: AggCount}, nil
	case strings.EqualFold(tok.Text, "sum"):
		f, err := p.expectIdent()
		return Agg{Func: AggSum, Field: f}, err
	case strings.EqualFold(tok.Text, "avg"):
		f, err := p.expectIdent()
		return Agg{Func: AggAvg, Field: f}, err
	case strings.EqualFold(tok.Text, "min"):
		f, err := p.expectIdent()
		return Agg{Func: AggMin, Field: f}, err
	case strings.EqualFold(tok.Text, "max"):
		f, err := p.expectIdent()
		return Agg{Func: AggMax, Field: f}, err
	default:
		return Agg{}, &QuerySyntaxError{Pos: tok.Pos, Msg: "expected aggregate function"}
	}
}

func (p *parser) expectIdent() (string, error) {
	if p.cur().Kind != TokIdent {
		return "", p.errorf("expected identifier, found %q", p.cur().Text)
	}
	return p.advance().Text, nil
}

func (p *parser) parseOrExpr() (Expr, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	for isKeyword(p.cur(), "or") {
		p.advance()
		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: OR, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAndExpr() (Expr, error) {
	left, err := p.parseNotExpr()
	if err != nil {
		return nil, err
	}
	for isKeyword(p.cur(), "and") {
		p.advance()
		right, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: AND, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNotExpr() (Expr, error) {
	if isKeyword(p.cur(), "not") {
		p.advance()
		operand, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: NOT, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	if p.cur().Kind == TokLParen {
		p.advance()
		inner, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != TokRParen {
			return nil, p.errorf("expected ')'")
		}
		p.advance()
		return inner, nil
	}

	if isKeyword(p.cur(), "has") {
		p.advance()
		if p.cur().Kind != TokLParen {
			return nil, p.errorf("expected '(' after 'has'")
		}
		p.advance()
		field, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != TokRParen {
			return nil, p.errorf("expected ')' to close has(...)")
		}
		p.advance()
		return &HasExpr{Field: field}, nil
	}

	field, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if isKeyword(p.cur(), "in") {
		p.advance()
		if p.cur().Kind != TokLBrace {
			return nil, p.errorf("expected '{' after 'in'")
		}
		p.advance()
		values, err := p.parseValueList()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != TokRBrace {
			return nil, p.errorf("expected '}' to close in-list")
		}
		p.advance()
		return &InExpr{Field: field, Values: values}, nil
	}

	if isKeyword(p.cur(), "matches") {
		p.advance()
		if p.cur().Kind != TokString {
			return nil, p.errorf("expected string pattern after 'matches'")
		}
		raw := p.advance().Text
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, &QuerySyntaxError{Pos: p.toks[p.pos-1].Pos, Msg: "invalid regular expression: " + err.Error()}
		}
		return &MatchExpr{Field: field, Pattern: re}, nil
	}

	op, err := p.parseCmpOp()
	if err != nil {
		return nil, err
	}
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &Comparison{Field: field, Op: op, Value: val}, nil
}

func (p *parser) parseValueList() ([]Literal, error) {
	var vals []Literal
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	vals = append(vals, v)
	for p.cur().Kind == TokComma {
		p.advance()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (p *parser) parseCmpOp() (CmpOp, error) {
	tok := p.cur()
	switch tok.Kind {
	case TokEq:
		p.advance()
		return Eq, nil
	case TokNeq:
		p.advance()
		return Neq, nil
	case TokLt:
		p.advance()
		return Lt, nil
	case TokLte:
		p.advance()
		return Lte, nil
	case TokGt:
		p.advance()
		return Gt, nil
	case TokGte:
		p.advance()
		return Gte, nil
	default:
		return 0, p.errorf("expected comparison operator, found %q", tok.Text)
	}
}

func (p *parser) parseValue() (Literal, error) {
	tok := p.cur()
	switch tok.Kind {
	case TokString:
		p.advance()
		return Literal{Kind: LitString, S: tok.Text}, nil
	case TokInt:
		p.advance()
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return Literal{}, &QuerySyntaxError{Pos: tok.Pos, Msg: "invalid integer literal"}
		}
		return Literal{Kind: LitInt, I: n}, nil
	case TokFloat:
		p.advance()
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return Literal{}, &QuerySyntaxError{Pos: tok.Pos, Msg: "invalid float literal"}
		}
		return Literal{Kind: LitFloat, F: f}, nil
	default:
		return Literal{}, p.errorf("expected value, found %q", tok.Text)
	}
}
