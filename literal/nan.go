package literal

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/wasm-values/value"
)

// NaNConstructor is the call that rebuilds a NaN from its raw bytes.
const NaNConstructor = "WebAssembly._fromNaNBytes"

// NaNBytes returns the little-endian bytes of f and its signalling flag.
func NaNBytes(f value.Float) ([8]byte, bool) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], f.Bits)
	return buf, f.Signalling
}

// FromNaNBytes rebuilds a number from 8 little-endian bytes. With
// signalling set the result is a value.Float carrying the flag, so a later
// Render reproduces the same bytes and flag; otherwise it is a float64.
func FromNaNBytes(b [8]byte, signalling bool) any {
	bits := binary.LittleEndian.Uint64(b[:])
	if signalling {
		return value.SignallingNaN(bits)
	}
	return math.Float64frombits(bits)
}
