package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/value"
)

// Render returns literal text that evaluates back to v bit for bit.
//
//	float64, float32, value.Float, int, uint,   number literal, or a
//	int8..int32, uint8..uint32                  NaNConstructor call for NaN
//	value.Long, int64, uint64                   new Long(low,high)
//	string                                      'text' or constants[i]
//	value.Value                                 by its kind
//
// Strings outside [A-Za-z0-9_ $-] are appended to pool instead of being
// escaped; pool may be nil when no such string is rendered.
func Render(v any, pool *Pool) (string, error) {
	switch x := v.(type) {
	case string:
		return renderString(x, pool)
	case value.Long:
		return renderLong(x), nil
	case int64:
		return renderLong(value.LongFromInt64(x)), nil
	case uint64:
		return renderLong(value.LongFromInt64(int64(x))), nil
	case value.Value:
		h, err := value.ToHostLong(x)
		if err != nil {
			return "", errors.Wrap(errors.ClassCompile, errors.PhaseRender, errors.KindUnsupported, err,
				"rendering machine value")
		}
		return Render(h, pool)
	}
	if f, ok := value.AsFloat(v); ok {
		return renderNumber(f), nil
	}
	return "", errors.Unrenderable(v)
}

// RenderAll renders each value against the same pool.
func RenderAll(vs []any, pool *Pool) ([]string, error) {
	out := make([]string, len(vs))
	for i, v := range vs {
		s, err := Render(v, pool)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func renderNumber(f value.Float) string {
	if f.IsNaN() {
		// NaN literals cannot carry payload bits
		b, signalling := NaNBytes(f)
		var sb strings.Builder
		sb.WriteString(NaNConstructor)
		sb.WriteString("([")
		for i, c := range b {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(c)))
		}
		sb.WriteString("],")
		sb.WriteString(strconv.FormatBool(signalling))
		sb.WriteByte(')')
		Logger().Debug("rendered NaN through bytes",
			zap.String("bits", fmt.Sprintf("%#016x", f.Bits)),
			zap.Bool("signalling", signalling))
		return sb.String()
	}

	x := f.Float64()
	// Signbit also catches -0, which compares equal to 0.
	if math.Signbit(x) {
		return "-" + formatNumber(math.Abs(x))
	}
	return formatNumber(x)
}

func renderLong(l value.Long) string {
	return "new Long(" + strconv.Itoa(int(l.Low)) + "," + strconv.Itoa(int(l.High)) + ")"
}

func renderString(s string, pool *Pool) (string, error) {
	if IsSimpleString(s) {
		return "'" + s + "'", nil
	}
	if pool == nil {
		return "", errors.InvalidData(errors.ClassCompile, errors.PhaseRender,
			fmt.Sprintf("string %q needs a constant pool", s))
	}
	i := pool.Push(s)
	Logger().Debug("hoisted string to constant pool", zap.Int("index", i), zap.Int("len", len(s)))
	return "constants[" + strconv.Itoa(i) + "]", nil
}

// IsSimpleString reports whether s can be quoted without escaping.
func IsSimpleString(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '_', c == ' ', c == '$', c == '-':
		default:
			return false
		}
	}
	return true
}
