package literal

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/literal/internal/token"
	"github.com/wippyai/wasm-values/value"
)

// Eval evaluates literal text produced by Render and returns the host
// value: float64, value.Float, value.Long or string. constants[i] is read
// from pool. Anything Render cannot emit is rejected.
func Eval(text string, pool *Pool) (any, error) {
	tokens, err := token.Tokenize(text)
	if err != nil {
		return nil, decodeError(err.Error())
	}
	p := &parser{tokens: tokens, pool: pool}
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, decodeError(fmt.Sprintf("unexpected %s %q at offset %d", t.Type, t.Value, t.Pos))
	}
	return v, nil
}

type parser struct {
	tokens []token.Token
	pool   *Pool
	pos    int
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token.Token {
	t := p.peek()
	if t != nil {
		p.pos++
	}
	return t
}

func (p *parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, decodeError(fmt.Sprintf("expected %s, got end of input", typ))
	}
	if t.Type != typ {
		return nil, decodeError(fmt.Sprintf("expected %s, got %q at offset %d", typ, t.Value, t.Pos))
	}
	return t, nil
}

func (p *parser) expectIdent(name string) error {
	t, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	if t.Value != name {
		return decodeError(fmt.Sprintf("expected %s, got %q at offset %d", name, t.Value, t.Pos))
	}
	return nil
}

func (p *parser) parseExpr() (any, error) {
	t := p.peek()
	if t == nil {
		return nil, decodeError("empty literal")
	}

	if t.Type == token.Minus {
		p.next()
		f, err := p.parseMagnitude()
		if err != nil {
			return nil, err
		}
		return -f, nil
	}

	switch t.Type {
	case token.Number:
		f, err := p.parseMagnitude()
		if err != nil {
			return nil, err
		}
		return f, nil
	case token.String:
		p.next()
		return t.Value, nil
	case token.Ident:
		switch t.Value {
		case "Infinity":
			p.next()
			return math.Inf(1), nil
		case "constants":
			return p.parseConstant()
		case "new":
			return p.parseLong()
		case NaNConstructor:
			return p.parseNaN()
		}
	}
	return nil, decodeError(fmt.Sprintf("unexpected %s %q at offset %d", t.Type, t.Value, t.Pos))
}

func (p *parser) parseMagnitude() (float64, error) {
	t := p.next()
	if t == nil {
		return 0, decodeError("expected number, got end of input")
	}
	if t.Type == token.Ident && t.Value == "Infinity" {
		return math.Inf(1), nil
	}
	if t.Type != token.Number {
		return 0, decodeError(fmt.Sprintf("expected number, got %q at offset %d", t.Value, t.Pos))
	}
	f, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		return 0, decodeError(fmt.Sprintf("invalid number %q", t.Value))
	}
	return f, nil
}

// parseInt reads an optionally negated integer within [lo, hi].
func (p *parser) parseInt(lo, hi int64) (int64, error) {
	neg := false
	if t := p.peek(); t != nil && t.Type == token.Minus {
		p.next()
		neg = true
	}
	t, err := p.expect(token.Number)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(t.Value, 10, 64)
	if err != nil {
		return 0, decodeError(fmt.Sprintf("invalid integer %q", t.Value))
	}
	if neg {
		n = -n
	}
	if n < lo || n > hi {
		return 0, decodeError(fmt.Sprintf("integer %d outside [%d, %d]", n, lo, hi))
	}
	return n, nil
}

func (p *parser) parseConstant() (any, error) {
	p.next()
	if _, err := p.expect(token.LBracket); err != nil {
		return nil, err
	}
	i, err := p.parseInt(0, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	if p.pool == nil {
		return nil, errors.OutOfBounds(errors.PhaseDecode, int(i), 0)
	}
	s, err := p.pool.At(int(i))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) parseLong() (any, error) {
	p.next()
	if err := p.expectIdent("Long"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	low, err := p.parseInt(math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	high, err := p.parseInt(math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return value.Long{Low: int32(low), High: int32(high)}, nil
}

func (p *parser) parseNaN() (any, error) {
	p.next()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBracket); err != nil {
		return nil, err
	}
	var b [8]byte
	for i := range b {
		if i > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		n, err := p.parseInt(0, math.MaxUint8)
		if err != nil {
			return nil, err
		}
		b[i] = byte(n)
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	t, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	var signalling bool
	switch t.Value {
	case "true":
		signalling = true
	case "false":
	default:
		return nil, decodeError(fmt.Sprintf("expected true or false, got %q", t.Value))
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return FromNaNBytes(b, signalling), nil
}

func decodeError(detail string) *errors.Error {
	return errors.InvalidData(errors.ClassCompile, errors.PhaseDecode, detail)
}
