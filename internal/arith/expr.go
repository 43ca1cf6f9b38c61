// Package arith intercepts simple arithmetic requests such as
// "what is 12 times 7" and evaluates them safely without eval.
package arith

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrEmptyExpression is returned for blank input.
	ErrEmptyExpression = errors.New("empty expression")
)

// Eval evaluates an arithmetic expression over decimal numbers.
// Supports: +, -, *, /, unary sign, parentheses.
// Example: "(1+2)*3.5" => 10.5
func Eval(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, ErrEmptyExpression
	}

	p := &parser{input: expr}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected character at position %d: %c", p.pos, p.input[p.pos])
	}
	return result, nil
}

type parser struct {
	input string
	pos   int
	depth int
}

// maxDepth bounds nesting of parentheses and unary signs.
const maxDepth = 64

func (p *parser) parseExpr() (float64, error) {
	return p.parseAddSub()
}

func (p *parser) parseAddSub() (float64, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return 0, err
	}

	for p.pos < len(p.input) {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			break
		}
		op := p.input[p.pos]
		if op != '+' && op != '-' {
			break
		}
		p.pos++
		right, err := p.parseMulDiv()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *parser) parseMulDiv() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for p.pos < len(p.input) {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			break
		}
		op := p.input[p.pos]
		if op != '*' && op != '/' {
			break
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
			continue
		}
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		left /= right
	}
	return left, nil
}

func (p *parser) parseUnary() (float64, error) {
	p.skipSpaces()
	if p.pos < len(p.input) && (p.input[p.pos] == '-' || p.input[p.pos] == '+') {
		neg := p.input[p.pos] == '-'
		p.pos++
		p.depth++
		if p.depth > maxDepth {
			return 0, fmt.Errorf("expression nested too deeply")
		}
		val, err := p.parseUnary()
		p.depth--
		if err != nil {
			return 0, err
		}
		if neg {
			return -val, nil
		}
		return val, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (float64, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	ch := p.input[p.pos]

	// Parenthesized expression
	if ch == '(' {
		p.pos++ // skip '('
		p.depth++
		if p.depth > maxDepth {
			return 0, fmt.Errorf("expression nested too deeply")
		}
		val, err := p.parseExpr()
		p.depth--
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("expected ')' at position %d", p.pos)
		}
		p.pos++ // skip ')'
		return val, nil
	}

	// Number, optionally with a fractional part
	if isDigit(ch) || ch == '.' {
		start := p.pos
		for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
			p.pos++
		}
		val, err := strconv.ParseFloat(p.input[start:p.pos], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
		}
		return val, nil
	}

	return 0, fmt.Errorf("unexpected character '%c' at position %d", ch, p.pos)
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
