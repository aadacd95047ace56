package value

import (
	"fmt"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-values/errors"
)

// TagSeparator splits parameter codes from result codes in a signature tag.
const TagSeparator = '_'

// Signature is an ordered list of parameter kinds and result kinds.
type Signature struct {
	Params  []Kind
	Results []Kind
}

// Tag encodes s as one code per kind (i32 'i', i64 'l', f32 'f', f64 'd'),
// parameters first, then '_', then results. (i32, f64) -> (i64) is "id_l".
func (s Signature) Tag() (string, error) {
	var b strings.Builder
	b.Grow(len(s.Params) + len(s.Results) + 1)
	for _, k := range s.Params {
		c, err := kindCode(k)
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
	}
	b.WriteByte(TagSeparator)
	for _, k := range s.Results {
		c, err := kindCode(k)
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// Equal reports whether s and o have the same kinds in the same order.
func (s Signature) Equal(o Signature) bool {
	if len(s.Params) != len(o.Params) || len(s.Results) != len(o.Results) {
		return false
	}
	for i := range s.Params {
		if s.Params[i] != o.Params[i] {
			return false
		}
	}
	for i := range s.Results {
		if s.Results[i] != o.Results[i] {
			return false
		}
	}
	return true
}

func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, k := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteString(") -> (")
	for i, k := range s.Results {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteByte(')')
	return b.String()
}

// ParseTag decodes a tag produced by Signature.Tag.
func ParseTag(tag string) (Signature, error) {
	params, results, found := strings.Cut(tag, string(TagSeparator))
	if !found {
		return Signature{}, errors.InvalidData(errors.ClassCompile, errors.PhaseSignature,
			fmt.Sprintf("signature tag %q has no separator", tag))
	}
	var s Signature
	var err error
	if s.Params, err = parseCodes(params); err != nil {
		return Signature{}, err
	}
	if s.Results, err = parseCodes(results); err != nil {
		return Signature{}, err
	}
	return s, nil
}

// SignatureOf reads the signature of a wazero function definition.
func SignatureOf(def api.FunctionDefinition) (Signature, error) {
	var s Signature
	for _, vt := range def.ParamTypes() {
		k, err := signatureKind(vt)
		if err != nil {
			return Signature{}, err
		}
		s.Params = append(s.Params, k)
	}
	for _, vt := range def.ResultTypes() {
		k, err := signatureKind(vt)
		if err != nil {
			return Signature{}, err
		}
		s.Results = append(s.Results, k)
	}
	return s, nil
}

func signatureKind(vt api.ValueType) (Kind, error) {
	k := Kind(vt)
	if !k.Valid() {
		return 0, errors.UnknownKind(errors.ClassCompile, errors.PhaseSignature, api.ValueTypeName(vt))
	}
	return k, nil
}

func kindCode(k Kind) (byte, error) {
	switch k {
	case KindI32:
		return 'i', nil
	case KindI64:
		return 'l', nil
	case KindF32:
		return 'f', nil
	case KindF64:
		return 'd', nil
	}
	return 0, errors.UnknownKind(errors.ClassCompile, errors.PhaseSignature, k)
}

func parseCodes(codes string) ([]Kind, error) {
	if codes == "" {
		return nil, nil
	}
	kinds := make([]Kind, 0, len(codes))
	for i := 0; i < len(codes); i++ {
		switch codes[i] {
		case 'i':
			kinds = append(kinds, KindI32)
		case 'l':
			kinds = append(kinds, KindI64)
		case 'f':
			kinds = append(kinds, KindF32)
		case 'd':
			kinds = append(kinds, KindF64)
		default:
			return nil, errors.UnknownKind(errors.ClassCompile, errors.PhaseSignature, string(codes[i]))
		}
	}
	return kinds, nil
}
