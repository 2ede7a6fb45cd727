package gate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Evaluation errors. All of them surface to the user as the same "Error"
// display: the gate never distinguishes bad math from anything else.
var (
	ErrIncompleteExpression = errors.New("incomplete expression")
	ErrMalformedExpression  = errors.New("malformed expression")
	ErrDivisionByZero       = errors.New("division by zero")
)

// Evaluate computes a calculator expression over + - * / with decimals and
// postfix % (percent divides the preceding operand by 100). Standard operator
// precedence applies. A trailing binary operator is rejected as incomplete.
func Evaluate(expr string) (float64, error) {
	p := &parser{input: strings.TrimSpace(expr)}
	if p.input == "" {
		return 0, ErrIncompleteExpression
	}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, ErrMalformedExpression
	}
	return v, nil
}

// FormatResult renders an evaluation result the way the calculator display
// shows it: no trailing zeros, no exponent notation for ordinary magnitudes.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseExpr := term { ('+'|'-') term }
func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

// parseTerm := unary { ('*'|'/') unary }
func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			v /= rhs
		}
	}
}

// parseUnary := '-' unary | postfix
func (p *parser) parseUnary() (float64, error) {
	if c, ok := p.peek(); ok && c == '-' {
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parsePostfix()
}

// parsePostfix := number { '%' }
func (p *parser) parsePostfix() (float64, error) {
	v, err := p.parseNumber()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || c != '%' {
			return v, nil
		}
		p.pos++
		v /= 100
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	seenDot := false
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		// an operator with nothing after it reads as incomplete
		return 0, ErrIncompleteExpression
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedExpression, p.input[start:p.pos])
	}
	return v, nil
}
