package value

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-values/errors"
)

// ToMachine converts a host value to a machine value of kind k.
// A nil host value is undefined and yields the zero value of k.
func ToMachine(host any, k Kind) (Value, error) {
	if host == nil {
		return Zero(k)
	}
	if k == KindI64 {
		if n, ok := hostInt64(host); ok {
			return I64(n), nil
		}
	}
	f, ok := AsFloat(host)
	if !ok {
		return Value{}, errors.NotNumeric(errors.PhaseCoerce, host)
	}
	switch k {
	case KindI32:
		return I32(ToInt32(f.Float64())), nil
	case KindI64:
		return I64(LongFromNumber(f.Float64()).Int64()), nil
	case KindF32:
		return F32Bits(NarrowF32(f.Float64())), nil
	case KindF64:
		return F64Bits(f.Bits), nil
	}
	return Value{}, errors.UnknownKind(errors.ClassType, errors.PhaseCoerce, k)
}

// ToHost converts a machine value to a host value: float64 for every kind,
// or Float when the value is a signalling NaN. i64 values round to the
// nearest float64, ties to even.
func ToHost(v Value) (any, error) {
	switch v.kind {
	case KindI32:
		return float64(v.Int32()), nil
	case KindI64:
		l := LongFromInt64(v.Int64())
		if !l.Exact() {
			Logger().Debug("i64 rounded to host number", zap.Int64("value", v.Int64()))
		}
		return l.Float64(), nil
	case KindF32:
		b := v.Float32Bits()
		f := WidenF32(b)
		if IsSignallingNaN32(b) {
			return SignallingNaN(math.Float64bits(f)), nil
		}
		return f, nil
	case KindF64:
		if IsSignallingNaN64(v.bits) {
			return SignallingNaN(v.bits), nil
		}
		return v.Float64(), nil
	}
	return nil, errors.UnknownKind(errors.ClassType, errors.PhaseCoerce, v.kind)
}

// ToHostStrict is ToHost, except i64 values that a float64 cannot hold
// exactly fail with a RangeError.
func ToHostStrict(v Value) (any, error) {
	if v.kind == KindI64 && !LongFromInt64(v.Int64()).Exact() {
		return nil, errors.New(errors.ClassRange, errors.PhaseCoerce, errors.KindOverflow).
			WasmType("i64").
			Value(v.Int64()).
			Detail("i64 %d is not exactly representable as a host number", v.Int64()).
			Build()
	}
	return ToHost(v)
}

// ToHostLong is ToHost, except i64 values come back as Long without loss.
func ToHostLong(v Value) (any, error) {
	if v.kind == KindI64 {
		return LongFromInt64(v.Int64()), nil
	}
	return ToHost(v)
}

// ToInt32 wraps f into the signed 32-bit range: truncate toward zero, then
// reduce modulo 2^32. NaN and infinities become 0.
func ToInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	return int32(uint32(int64(m)))
}

// WrapUint32 reduces f modulo 2^32 without any range check.
func WrapUint32(f float64) uint32 {
	return uint32(ToInt32(f))
}

// ToNonWrappingUint32 truncates f into the unsigned 32-bit range and fails
// with a RangeError instead of wrapping when f falls outside it.
func ToNonWrappingUint32(f float64) (uint32, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Overflow(errors.PhaseCoerce, f, "u32")
	}
	t := math.Trunc(f)
	if t < 0 || t > math.MaxUint32 {
		return 0, errors.Overflow(errors.PhaseCoerce, f, "u32")
	}
	return uint32(t), nil
}

// IsNumber reports whether host is a host number (boxed or not).
func IsNumber(host any) bool {
	_, ok := AsFloat(host)
	return ok
}

// AsFloat unboxes a host number. Go integers convert through float64 and
// may round. Long is not a number; only i64 coercion accepts it.
func AsFloat(host any) (Float, bool) {
	switch v := host.(type) {
	case float64:
		return NewFloat(v), true
	case Float:
		return v, true
	case float32:
		return NewFloat(WidenF32(math.Float32bits(v))), true
	case int:
		return NewFloat(float64(v)), true
	case int8:
		return NewFloat(float64(v)), true
	case int16:
		return NewFloat(float64(v)), true
	case int32:
		return NewFloat(float64(v)), true
	case int64:
		return NewFloat(float64(v)), true
	case uint:
		return NewFloat(float64(v)), true
	case uint8:
		return NewFloat(float64(v)), true
	case uint16:
		return NewFloat(float64(v)), true
	case uint32:
		return NewFloat(float64(v)), true
	case uint64:
		return NewFloat(float64(v)), true
	}
	return Float{}, false
}

// hostInt64 returns integer host values exactly; uint64 above MaxInt64 wraps.
func hostInt64(host any) (int64, bool) {
	switch v := host.(type) {
	case Long:
		return v.Int64(), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	}
	return 0, false
}
