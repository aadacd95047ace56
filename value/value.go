package value

import (
	"math"
	"strconv"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-values/errors"
)

// Value is a machine value: the active variant always matches Kind.
// Floats are held as raw bits so NaN payloads survive every copy.
type Value struct {
	kind Kind
	bits uint64
}

func I32(v int32) Value { return Value{kind: KindI32, bits: api.EncodeI32(v)} }

func I64(v int64) Value { return Value{kind: KindI64, bits: api.EncodeI64(v)} }

func F32(v float32) Value { return Value{kind: KindF32, bits: api.EncodeF32(v)} }

func F64(v float64) Value { return Value{kind: KindF64, bits: api.EncodeF64(v)} }

// F32Bits builds an f32 from its IEEE-754 bit pattern.
func F32Bits(b uint32) Value { return Value{kind: KindF32, bits: uint64(b)} }

// F64Bits builds an f64 from its IEEE-754 bit pattern.
func F64Bits(b uint64) Value { return Value{kind: KindF64, bits: b} }

// Zero returns the zero value of k.
func Zero(k Kind) (Value, error) {
	if !k.Valid() {
		return Value{}, errors.UnknownKind(errors.ClassType, errors.PhaseCoerce, k)
	}
	return Value{kind: k}, nil
}

// Decode wraps a raw wazero stack value as a Value of kind k.
func Decode(k Kind, raw uint64) (Value, error) {
	switch k {
	case KindI32, KindF32:
		return Value{kind: k, bits: uint64(uint32(raw))}, nil
	case KindI64, KindF64:
		return Value{kind: k, bits: raw}, nil
	}
	return Value{}, errors.UnknownKind(errors.ClassType, errors.PhaseCoerce, k)
}

// Encode returns the raw wazero stack representation.
func (v Value) Encode() uint64 { return v.bits }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Int32() int32 { return api.DecodeI32(v.bits) }

func (v Value) Int64() int64 { return int64(v.bits) }

func (v Value) Float32() float32 { return api.DecodeF32(v.bits) }

func (v Value) Float64() float64 { return api.DecodeF64(v.bits) }

// Float32Bits returns the f32 bit pattern.
func (v Value) Float32Bits() uint32 { return uint32(v.bits) }

// Float64Bits returns the f64 bit pattern.
func (v Value) Float64Bits() uint64 { return v.bits }

// Equal compares kind and exact bits, so -0 != 0 and NaNs compare by payload.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.bits == o.bits
}

func (v Value) String() string {
	switch v.kind {
	case KindI32:
		return "i32:" + strconv.FormatInt(int64(v.Int32()), 10)
	case KindI64:
		return "i64:" + strconv.FormatInt(v.Int64(), 10)
	case KindF32:
		f := v.Float32()
		if math.IsNaN(float64(f)) {
			return "f32:nan:0x" + strconv.FormatUint(uint64(v.Float32Bits()), 16)
		}
		return "f32:" + strconv.FormatFloat(float64(f), 'g', -1, 32)
	case KindF64:
		f := v.Float64()
		if math.IsNaN(f) {
			return "f64:nan:0x" + strconv.FormatUint(v.bits, 16)
		}
		return "f64:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "invalid"
}
