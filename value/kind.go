package value

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-values/errors"
)

// Kind is a machine value kind. Values are the wasm binary type codes, so
// they convert directly to and from wazero's api.ValueType.
type Kind byte

const (
	KindI32 Kind = 0x7F // 32-bit integer
	KindI64 Kind = 0x7E // 64-bit integer
	KindF32 Kind = 0x7D // 32-bit float
	KindF64 Kind = 0x7C // 64-bit float
)

// Kinds lists every machine kind in binary-code order.
var Kinds = [...]Kind{KindI32, KindI64, KindF32, KindF64}

func (k Kind) String() string {
	switch k {
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	}
	return "unknown"
}

// Valid reports whether k is one of the four machine kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindI32, KindI64, KindF32, KindF64:
		return true
	}
	return false
}

// ValueType returns the wazero value type for k.
func (k Kind) ValueType() api.ValueType {
	return api.ValueType(k)
}

// KindOf maps a wazero value type to a machine kind.
// Reference and vector types have no host-number form.
func KindOf(vt api.ValueType) (Kind, error) {
	k := Kind(vt)
	if !k.Valid() {
		return 0, errors.UnknownKind(errors.ClassType, errors.PhaseCoerce, api.ValueTypeName(vt))
	}
	return k, nil
}

// ParseKind maps a kind name ("i32", "i64", "f32", "f64") to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, errors.UnknownKind(errors.ClassType, errors.PhaseCoerce, name)
}
