// Package parser implements a Pratt-style, precedence-climbing recursive
// descent parser that turns a token stream into a model.Ast.
package parser

import (
	"math"

	"github.com/fabian2000/exath-go/internal/exerr"
	"github.com/fabian2000/exath-go/internal/lexer"
	"github.com/fabian2000/exath-go/internal/model"
)

// maxDepth bounds recursive-descent depth so hostile, deeply-nested input
// fails with a ParseError instead of overflowing the Go stack.
const maxDepth = 1000

// functionNames is the fixed set of identifiers recognised as built-in
// functions for implicit-argument application (e.g. "sin x" without parens).
// The "log:" prefix (subscripted log base) is recognised separately.
var functionNames = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"asin": true, "acos": true, "atan": true, "acot": true, "asec": true, "acsc": true,
	"sinh": true, "cosh": true, "tanh": true, "coth": true, "sech": true, "csch": true,
	"asinh": true, "acosh": true, "atanh": true, "acoth": true, "asech": true, "acsch": true,
	"ln": true, "lg": true, "log": true, "exp": true,
	"sqrt": true, "cbrt": true, "abs": true,
	"floor": true, "ceil": true, "round": true, "trunc": true, "frac": true,
	"sign": true, "sgn": true, "arg": true, "conj": true, "real": true, "imag": true,
	"deg": true, "rad": true,
	"if": true, "min": true, "max": true, "clamp": true, "gcd": true, "lcm": true,
}

func isFunctionName(name string) bool {
	if functionNames[name] {
		return true
	}
	return len(name) > 4 && name[:4] == "log:"
}

// Parse tokenizes and parses a complete expression, failing with a
// ParseError if trailing tokens remain after a full expression is read.
func Parse(src string) (model.Ast, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.current().Kind != model.TkEOF {
		return nil, exerr.Parse("unexpected token after expression")
	}
	return node, nil
}

type parser struct {
	tokens []model.Token
	pos    int
	depth  int
}

func (p *parser) current() model.Token { return p.tokens[p.pos] }

func (p *parser) advance() model.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return exerr.Parse("expression nested too deeply")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// Precedence, low to high: || , && , comparisons, + -, * / % (and implicit
// multiplication), ^ (right-assoc), unary, primary (with postfix !).
// Matches SPEC_FULL.md §4.4.
func (p *parser) parseExpr() (model.Ast, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.parseOr()
}

func (p *parser) parseOr() (model.Ast, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == model.TkOrOr {
		pos := p.advance().Pos
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &model.BinExpr{Op: model.OpOr, Left: left, Right: right, StartPos: pos}
	}
	return left, nil
}

func (p *parser) parseAnd() (model.Ast, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == model.TkAndAnd {
		pos := p.advance().Pos
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &model.BinExpr{Op: model.OpAnd, Left: left, Right: right, StartPos: pos}
	}
	return left, nil
}

var compareOps = map[model.TokenKind]model.BinOp{
	model.TkEqEq: model.OpEq, model.TkNe: model.OpNe,
	model.TkLt: model.OpLt, model.TkLe: model.OpLe,
	model.TkGt: model.OpGt, model.TkGe: model.OpGe,
}

func (p *parser) parseComparison() (model.Ast, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := compareOps[p.current().Kind]
		if !ok {
			break
		}
		pos := p.advance().Pos
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		left = &model.BinExpr{Op: op, Left: left, Right: right, StartPos: pos}
	}
	return left, nil
}

func (p *parser) parseAdd() (model.Ast, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current().Kind {
		case model.TkPlus:
			pos := p.advance().Pos
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &model.BinExpr{Op: model.OpAdd, Left: left, Right: right, StartPos: pos}
		case model.TkMinus:
			pos := p.advance().Pos
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &model.BinExpr{Op: model.OpSub, Left: left, Right: right, StartPos: pos}
		default:
			return left, nil
		}
	}
}

// parseTerm handles *, /, %, and implicit multiplication: a '(' or an
// identifier appearing where an operator was expected synthesises a Mul
// node instead of stopping, so "2x", "3(1+y)", and "2pi" parse as products.
func (p *parser) parseTerm() (model.Ast, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current().Kind {
		case model.TkMul:
			pos := p.advance().Pos
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &model.BinExpr{Op: model.OpMul, Left: left, Right: right, StartPos: pos}
		case model.TkDiv:
			pos := p.advance().Pos
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &model.BinExpr{Op: model.OpDiv, Left: left, Right: right, StartPos: pos}
		case model.TkMod:
			pos := p.advance().Pos
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &model.BinExpr{Op: model.OpMod, Left: left, Right: right, StartPos: pos}
		case model.TkLParen, model.TkIdent:
			pos := p.current().Pos
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &model.BinExpr{Op: model.OpMul, Left: left, Right: right, StartPos: pos}
		default:
			return left, nil
		}
	}
}

// parsePower handles right-associative ^ and postfix factorial(s).
func (p *parser) parsePower() (model.Ast, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.current().Kind == model.TkPow {
		pos := p.advance().Pos
		exponent, err := p.parsePower() // right-associative
		if err != nil {
			return nil, err
		}
		return &model.BinExpr{Op: model.OpPow, Left: base, Right: exponent, StartPos: pos}, nil
	}

	result := base
	for p.current().Kind == model.TkFactorial {
		pos := p.advance().Pos
		result = &model.Factorial{Inner: result, StartPos: pos}
	}
	return result, nil
}

func (p *parser) parseUnary() (model.Ast, error) {
	switch p.current().Kind {
	case model.TkMinus:
		pos := p.advance().Pos
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &model.UnaryNeg{Inner: inner, StartPos: pos}, nil
	case model.TkPlus:
		p.advance()
		return p.parsePrimary()
	case model.TkFactorial:
		pos := p.advance().Pos
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &model.UnaryNot{Inner: inner, StartPos: pos}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (model.Ast, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.current()
	switch tok.Kind {
	case model.TkNumber:
		p.advance()
		return &model.Number{Value: tok.NumVal, StartPos: tok.Pos}, nil

	case model.TkIdent:
		name := tok.Literal
		p.advance()
		if p.current().Kind == model.TkLParen {
			p.advance()
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			if p.current().Kind != model.TkRParen {
				return nil, exerr.Parse("missing ')'")
			}
			p.advance()
			return &model.Call{Name: name, Args: args, StartPos: tok.Pos}, nil
		}
		if isFunctionName(name) {
			arg, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return &model.Call{Name: name, Args: []model.Ast{arg}, StartPos: tok.Pos}, nil
		}
		return resolveConstOrVar(name, tok.Pos)

	case model.TkLParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current().Kind != model.TkRParen {
			return nil, exerr.Parse("missing ')'")
		}
		p.advance()
		return inner, nil

	default:
		return nil, exerr.Parse("unexpected token")
	}
}

func (p *parser) parseArgList() ([]model.Ast, error) {
	var args []model.Ast
	if p.current().Kind == model.TkRParen {
		return args, nil
	}
	first, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	args = append(args, first)
	for p.current().Kind == model.TkComma {
		p.advance()
		next, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	return args, nil
}

// resolveConstOrVar resolves a bare identifier to a reserved constant
// literal, or else builds a Var node for later environment lookup.
func resolveConstOrVar(name string, pos model.Position) (model.Ast, error) {
	switch name {
	case "e":
		return &model.Number{Value: math.E, StartPos: pos}, nil
	case "pi", "π":
		return &model.Number{Value: math.Pi, StartPos: pos}, nil
	case "phi", "ϕ":
		return &model.Number{Value: 1.618033988749895, StartPos: pos}, nil
	case "epsilon", "ε":
		// Intentionally resolves to Euler's e, not machine epsilon — see
		// DESIGN.md's open-question log. Reproduced, not "fixed".
		return &model.Number{Value: math.E, StartPos: pos}, nil
	case "mod":
		return nil, exerr.Parse("'mod' must be used as a binary operator")
	default:
		return &model.Var{Name: name, StartPos: pos}, nil
	}
}
