package exath

import (
	"sort"
	"strings"

	"github.com/fabian2000/exath-go/internal/cx"
	"github.com/fabian2000/exath-go/internal/eval"
	"github.com/fabian2000/exath-go/internal/parser"
)

// Session is a stateful evaluation context that persists variables and
// user-defined functions across repeated calls to Eval.
//
// A Session is not safe for concurrent use; callers sharing one across
// goroutines must synchronize their own access.
type Session struct {
	AngleMode AngleMode
	vars      map[string]cx.Cx
	fns       map[string]eval.UserFunc
}

// NewSession creates an empty Session under the given angle mode.
func NewSession(angleMode AngleMode) *Session {
	return &Session{
		AngleMode: angleMode,
		vars:      make(map[string]cx.Cx),
		fns:       make(map[string]eval.UserFunc),
	}
}

// Eval evaluates one line, which may take one of three forms:
//
//	f(x, y) = expr   defines a user function, stored and returns 0
//	ident = expr     assigns a variable, returns its value
//	expr             evaluates the expression and returns its value
func (s *Session) Eval(line string) (CalcResult, error) {
	line = strings.TrimSpace(line)

	if name, params, body, ok := splitFnDef(line); ok {
		bodyAst, err := parser.Parse(body)
		if err != nil {
			return CalcResult{}, err
		}
		s.fns[strings.ToLower(name)] = eval.UserFunc{Params: params, Body: bodyAst}
		return Real(0), nil
	}

	if lhs, rhs, ok := splitAssignment(line); ok {
		ast, err := parser.Parse(rhs)
		if err != nil {
			return CalcResult{}, err
		}
		value, err := eval.Eval(ast, s.vars, s.fns, s.AngleMode)
		if err != nil {
			return CalcResult{}, err
		}
		s.vars[lhs] = value
		return fromCx(value), nil
	}

	ast, err := parser.Parse(line)
	if err != nil {
		return CalcResult{}, err
	}
	value, err := eval.Eval(ast, s.vars, s.fns, s.AngleMode)
	if err != nil {
		return CalcResult{}, err
	}
	return fromCx(value), nil
}

// GetVar reads a variable's current value.
func (s *Session) GetVar(name string) (CalcResult, bool) {
	v, ok := s.vars[name]
	if !ok {
		return CalcResult{}, false
	}
	return fromCx(v), true
}

// SetVar sets a variable directly, bypassing expression evaluation.
func (s *Session) SetVar(name string, re, im float64) {
	s.vars[name] = cx.Cx{Re: re, Im: im}
}

// RemoveVar deletes a variable.
func (s *Session) RemoveVar(name string) { delete(s.vars, name) }

// ClearVars removes every variable.
func (s *Session) ClearVars() { s.vars = make(map[string]cx.Cx) }

// VarNames returns every variable name, sorted.
func (s *Session) VarNames() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FnNames returns every user-defined function name, sorted.
func (s *Session) FnNames() []string {
	names := make([]string, 0, len(s.fns))
	for name := range s.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RemoveFn deletes a user-defined function.
func (s *Session) RemoveFn(name string) { delete(s.fns, strings.ToLower(name)) }

// splitFnDef detects "ident(params) = body" and splits it into the function
// name, its parameter names, and the body source. It is a lightweight
// character scan, not a parse: a false match only costs a failed parser.Parse
// downstream, so it stays deliberately permissive about surrounding
// whitespace and deliberately strict about identifier shape.
func splitFnDef(line string) (name string, params []string, body string, ok bool) {
	lparen := strings.IndexByte(line, '(')
	if lparen < 0 {
		return "", nil, "", false
	}
	name = strings.TrimSpace(line[:lparen])
	if !isIdent(name) {
		return "", nil, "", false
	}

	rparenRel := strings.IndexByte(line[lparen:], ')')
	if rparenRel < 0 {
		return "", nil, "", false
	}
	rparen := lparen + rparenRel

	afterParen := strings.TrimLeft(line[rparen+1:], " \t")
	if !strings.HasPrefix(afterParen, "=") {
		return "", nil, "", false
	}
	afterEq := strings.TrimLeft(afterParen[1:], " \t")
	if strings.HasPrefix(afterEq, "=") {
		return "", nil, "", false
	}

	paramsStr := strings.TrimSpace(line[lparen+1 : rparen])
	if paramsStr != "" {
		for _, p := range strings.Split(paramsStr, ",") {
			p = strings.TrimSpace(p)
			if !isIdent(p) {
				return "", nil, "", false
			}
			params = append(params, p)
		}
	}

	return name, params, afterEq, true
}

// splitAssignment detects "identifier = expression", rejecting any '=' that
// is actually part of '==', '!=', '<=', or '>='.
func splitAssignment(line string) (lhs, rhs string, ok bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != '=' {
			continue
		}
		var prev, next byte
		if i > 0 {
			prev = line[i-1]
		}
		if i+1 < len(line) {
			next = line[i+1]
		}
		if prev == '!' || prev == '<' || prev == '>' || next == '=' {
			continue
		}
		candidate := strings.TrimSpace(line[:i])
		if isIdent(candidate) {
			return candidate, strings.TrimSpace(line[i+1:]), true
		}
	}
	return "", "", false
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '_':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
