package value

import (
	"math"
	"strconv"
)

// Float is a host number with an explicit signalling flag. Plain float64
// host values always have Signalling false.
type Float struct {
	Bits       uint64
	Signalling bool
}

func NewFloat(f float64) Float {
	return Float{Bits: math.Float64bits(f)}
}

// SignallingNaN returns a Float marked signalling with the given bits.
func SignallingNaN(bits uint64) Float {
	return Float{Bits: bits, Signalling: true}
}

func (f Float) Float64() float64 {
	return math.Float64frombits(f.Bits)
}

func (f Float) IsNaN() bool {
	return isNaN64(f.Bits)
}

func (f Float) String() string {
	if f.IsNaN() {
		s := "nan:0x" + strconv.FormatUint(f.Bits, 16)
		if f.Signalling {
			s += " (signalling)"
		}
		return s
	}
	return strconv.FormatFloat(f.Float64(), 'g', -1, 64)
}

const (
	f64ExpMask   = 0x7FF0000000000000
	f64MantMask  = 0x000FFFFFFFFFFFFF
	f64QuietBit  = 0x0008000000000000
	f32ExpMask   = 0x7F800000
	f32MantMask  = 0x007FFFFF
	f32QuietBit  = 0x00400000
	mantNarrowBy = 52 - 23
)

func isNaN64(b uint64) bool {
	return b&f64ExpMask == f64ExpMask && b&f64MantMask != 0
}

func isNaN32(b uint32) bool {
	return b&f32ExpMask == f32ExpMask && b&f32MantMask != 0
}

// IsSignallingNaN64 reports whether b is a NaN with the quiet bit clear.
func IsSignallingNaN64(b uint64) bool {
	return isNaN64(b) && b&f64QuietBit == 0
}

// IsSignallingNaN32 reports whether b is a NaN with the quiet bit clear.
func IsSignallingNaN32(b uint32) bool {
	return isNaN32(b) && b&f32QuietBit == 0
}

// NarrowF32 rounds f to the nearest f32, ties to even. NaNs keep their
// sign and top 23 payload bits; an all-zero payload becomes the quiet one.
func NarrowF32(f float64) uint32 {
	b := math.Float64bits(f)
	if !isNaN64(b) {
		return math.Float32bits(float32(f))
	}
	sign := uint32(b>>63) << 31
	mant := uint32(b>>mantNarrowBy) & f32MantMask
	if mant == 0 {
		mant = f32QuietBit
	}
	return sign | f32ExpMask | mant
}

// WidenF32 converts f32 bits to float64 exactly, NaN payloads included.
func WidenF32(b uint32) float64 {
	if !isNaN32(b) {
		return float64(math.Float32frombits(b))
	}
	sign := uint64(b>>31) << 63
	mant := uint64(b&f32MantMask) << mantNarrowBy
	return math.Float64frombits(sign | f64ExpMask | mant)
}
