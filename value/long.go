package value

import (
	"math"
	"strconv"
)

// Long is a 64-bit signed integer as a pair of 32-bit halves.
type Long struct {
	Low  int32
	High int32
}

// LongFromInt64 splits v into its halves.
func LongFromInt64(v int64) Long {
	return Long{Low: int32(uint32(v)), High: int32(v >> 32)}
}

// LongFromNumber converts a host number, truncating toward zero.
// NaN becomes 0 and out-of-range values saturate at the int64 bounds.
func LongFromNumber(f float64) Long {
	switch {
	case math.IsNaN(f):
		return Long{}
	case f <= -twoPow63:
		return LongFromInt64(math.MinInt64)
	case f+1 >= twoPow63:
		return LongFromInt64(math.MaxInt64)
	}
	return LongFromInt64(int64(f))
}

const twoPow63 = 1 << 63

func (l Long) Int64() int64 {
	return int64(l.High)<<32 | int64(uint32(l.Low))
}

// Float64 returns the nearest float64, ties to even. Magnitudes beyond 2^53
// are not exact.
func (l Long) Float64() float64 {
	return float64(l.Int64())
}

// Exact reports whether Float64 represents l without rounding.
func (l Long) Exact() bool {
	v := l.Int64()
	f := float64(v)
	if f >= twoPow63 {
		return false
	}
	return int64(f) == v
}

func (l Long) String() string {
	return strconv.FormatInt(l.Int64(), 10)
}
