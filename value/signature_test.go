package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-values/errors"
)

func TestSignature_Tag(t *testing.T) {
	tests := []struct {
		sig  Signature
		want string
	}{
		{Signature{Params: []Kind{KindI32, KindF64}, Results: []Kind{KindI64}}, "id_l"},
		{Signature{}, "_"},
		{Signature{Params: []Kind{KindF32}}, "f_"},
		{Signature{Results: []Kind{KindF64, KindI32}}, "_di"},
		{Signature{Params: []Kind{KindI64, KindI64, KindF32}, Results: []Kind{KindI32}}, "llf_i"},
	}
	for _, tt := range tests {
		got, err := tt.sig.Tag()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s", tt.sig)

		again, err := tt.sig.Tag()
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

func TestSignature_TagInjective(t *testing.T) {
	var all []Signature
	var lists func(n int) [][]Kind
	lists = func(n int) [][]Kind {
		if n == 0 {
			return [][]Kind{nil}
		}
		var out [][]Kind
		for _, prefix := range lists(n - 1) {
			for _, k := range Kinds {
				l := append(append([]Kind(nil), prefix...), k)
				out = append(out, l)
			}
		}
		return out
	}
	for total := 0; total <= 3; total++ {
		for np := 0; np <= total; np++ {
			for _, p := range lists(np) {
				for _, r := range lists(total - np) {
					all = append(all, Signature{Params: p, Results: r})
				}
			}
		}
	}

	seen := make(map[string]Signature, len(all))
	for _, s := range all {
		tag, err := s.Tag()
		require.NoError(t, err)
		if prev, ok := seen[tag]; ok {
			t.Fatalf("tag %q shared by %s and %s", tag, prev, s)
		}
		seen[tag] = s

		parsed, err := ParseTag(tag)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(s), "ParseTag(%q) = %s, want %s", tag, parsed, s)
	}
}

func TestSignature_UnknownKind(t *testing.T) {
	_, err := Signature{Params: []Kind{KindI32, Kind(0x7B)}}.Tag()
	assert.ErrorIs(t, err, errors.ErrCompile)

	_, err = Signature{Results: []Kind{Kind(0)}}.Tag()
	assert.ErrorIs(t, err, errors.ErrCompile)

	_, err = ParseTag("ix_")
	assert.ErrorIs(t, err, errors.ErrCompile)

	_, err = ParseTag("id")
	assert.ErrorIs(t, err, errors.ErrCompile)
}

type fakeDefinition struct {
	api.FunctionDefinition
	params, results []api.ValueType
}

func (d fakeDefinition) ParamTypes() []api.ValueType  { return d.params }
func (d fakeDefinition) ResultTypes() []api.ValueType { return d.results }

func TestSignatureOf(t *testing.T) {
	s, err := SignatureOf(fakeDefinition{
		params:  []api.ValueType{api.ValueTypeI32, api.ValueTypeF64},
		results: []api.ValueType{api.ValueTypeI64},
	})
	require.NoError(t, err)
	tag, err := s.Tag()
	require.NoError(t, err)
	assert.Equal(t, "id_l", tag)
	assert.Equal(t, "(i32, f64) -> (i64)", s.String())

	_, err = SignatureOf(fakeDefinition{params: []api.ValueType{api.ValueTypeExternref}})
	assert.ErrorIs(t, err, errors.ErrCompile)
}
