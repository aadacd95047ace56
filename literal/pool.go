package literal

import (
	"github.com/wippyai/wasm-values/errors"
)

// Pool is the constant pool of one rendering pass: strings too complex to
// inline are appended here and referenced as constants[i].
// A Pool is not safe for concurrent use.
type Pool struct {
	values []string
}

func NewPool() *Pool {
	return &Pool{}
}

// Push appends s and returns its index.
func (p *Pool) Push(s string) int {
	p.values = append(p.values, s)
	return len(p.values) - 1
}

func (p *Pool) Len() int {
	return len(p.values)
}

func (p *Pool) At(i int) (string, error) {
	if i < 0 || i >= len(p.values) {
		return "", errors.OutOfBounds(errors.PhaseDecode, i, len(p.values))
	}
	return p.values[i], nil
}

// Values returns a copy of the pool contents in index order.
func (p *Pool) Values() []string {
	out := make([]string, len(p.values))
	copy(out, p.values)
	return out
}
