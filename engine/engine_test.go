package engine

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/literal"
	"github.com/wippyai/wasm-values/value"
)

// numericWasm exports:
//
//	add   (i32, i32) -> i32   i32.add
//	id64  (i64) -> i64        identity
//	idf32 (f32) -> f32        identity
//	idf64 (f64) -> f64        identity
//	boom  () -> ()            unreachable
//	ref   (externref) -> ()   not callable from host numbers
//	mix   (i32, f64) -> i64   i64.extend_i32_s of the first param
//	nop   () -> ()            empty body
var numericWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x23, 0x07, 0x60,
	0x02, 0x7f, 0x7f, 0x01, 0x7f, 0x60, 0x01, 0x7e, 0x01, 0x7e, 0x60, 0x01,
	0x7d, 0x01, 0x7d, 0x60, 0x01, 0x7c, 0x01, 0x7c, 0x60, 0x00, 0x00, 0x60,
	0x01, 0x6f, 0x00, 0x60, 0x02, 0x7f, 0x7c, 0x01, 0x7e, 0x03, 0x09, 0x08,
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x04, 0x07, 0x37, 0x08, 0x03,
	0x61, 0x64, 0x64, 0x00, 0x00, 0x04, 0x69, 0x64, 0x36, 0x34, 0x00, 0x01,
	0x05, 0x69, 0x64, 0x66, 0x33, 0x32, 0x00, 0x02, 0x05, 0x69, 0x64, 0x66,
	0x36, 0x34, 0x00, 0x03, 0x04, 0x62, 0x6f, 0x6f, 0x6d, 0x00, 0x04, 0x03,
	0x72, 0x65, 0x66, 0x00, 0x05, 0x03, 0x6d, 0x69, 0x78, 0x00, 0x06, 0x03,
	0x6e, 0x6f, 0x70, 0x00, 0x07, 0x0a, 0x28, 0x08, 0x07, 0x00, 0x20, 0x00,
	0x20, 0x01, 0x6a, 0x0b, 0x04, 0x00, 0x20, 0x00, 0x0b, 0x04, 0x00, 0x20,
	0x00, 0x0b, 0x04, 0x00, 0x20, 0x00, 0x0b, 0x03, 0x00, 0x00, 0x0b, 0x02,
	0x00, 0x0b, 0x05, 0x00, 0x20, 0x00, 0xac, 0x0b, 0x02, 0x00, 0x0b,
}

func loadModule(t *testing.T, cfg *Config) *Module {
	t.Helper()
	ctx := context.Background()
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.Interpreter = true

	eng, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close(ctx) })

	mod, err := eng.Load(ctx, numericWasm)
	require.NoError(t, err)
	return mod
}

func TestModule_Exports(t *testing.T) {
	mod := loadModule(t, nil)

	assert.Equal(t, []string{"add", "boom", "id64", "idf32", "idf64", "mix", "nop"}, mod.ExportNames())

	tags, err := mod.Tags()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"add":   "ii_i",
		"id64":  "l_l",
		"idf32": "f_f",
		"idf64": "d_d",
		"boom":  "_",
		"mix":   "id_l",
		"nop":   "_",
	}, tags)

	sig := mod.Exports()["mix"]
	assert.Equal(t, []value.Kind{value.KindI32, value.KindF64}, sig.Params)
	assert.Equal(t, []value.Kind{value.KindI64}, sig.Results)
}

func TestModule_CallI32(t *testing.T) {
	ctx := context.Background()
	mod := loadModule(t, nil)

	out, err := mod.Call(ctx, "add", 2.0, 3.0)
	require.NoError(t, err)
	assert.Equal(t, []any{5.0}, out)

	out, err = mod.Call(ctx, "add", 4294967296.0, 1)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0}, out)

	out, err = mod.Call(ctx, "add", 2147483647.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []any{-2147483648.0}, out)

	// undefined arguments are zero
	out, err = mod.Call(ctx, "add")
	require.NoError(t, err)
	assert.Equal(t, []any{0.0}, out)

	out, err = mod.Call(ctx, "add", 1.0, 2.0, "ignored")
	require.NoError(t, err)
	assert.Equal(t, []any{3.0}, out)
}

func TestModule_CallErrors(t *testing.T) {
	ctx := context.Background()
	mod := loadModule(t, nil)

	_, err := mod.Call(ctx, "add", "x", 1.0)
	assert.ErrorIs(t, err, errors.ErrType)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"add", "arg0"}, e.Path)

	_, err = mod.Call(ctx, "boom")
	assert.ErrorIs(t, err, errors.ErrRuntime)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindTrap})

	_, err = mod.Call(ctx, "ref", nil)
	assert.ErrorIs(t, err, errors.ErrType)
	assert.ErrorIs(t, err, errors.ErrCompile)

	_, err = mod.Call(ctx, "missing")
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindNotFound})
}

func TestModule_CallI64(t *testing.T) {
	ctx := context.Background()
	big := int64(9007199254740993)

	out, err := loadModule(t, nil).Call(ctx, "id64", big)
	require.NoError(t, err)
	assert.Equal(t, []any{9007199254740992.0}, out)

	out, err = loadModule(t, &Config{PreserveI64: true}).Call(ctx, "id64", big)
	require.NoError(t, err)
	assert.Equal(t, []any{value.LongFromInt64(big)}, out)

	_, err = loadModule(t, &Config{StrictI64: true}).Call(ctx, "id64", big)
	assert.ErrorIs(t, err, errors.ErrRange)

	out, err = loadModule(t, &Config{StrictI64: true}).Call(ctx, "id64", -1e20)
	require.NoError(t, err)
	assert.Equal(t, []any{-9223372036854775808.0}, out)
}

func TestModule_CallFloats(t *testing.T) {
	ctx := context.Background()
	mod := loadModule(t, nil)

	out, err := mod.Call(ctx, "idf32", 0.1)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(float32(0.1))}, out)

	out, err = mod.Call(ctx, "idf64", math.Copysign(0, -1))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, math.Signbit(out[0].(float64)))

	out, err = mod.Call(ctx, "idf64", math.Float64frombits(0x7FF8000000000abc))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7FF8000000000abc), math.Float64bits(out[0].(float64)))

	out, err = mod.Call(ctx, "idf64", value.SignallingNaN(0x7FF0000000000abc))
	require.NoError(t, err)
	assert.Equal(t, []any{value.SignallingNaN(0x7FF0000000000abc)}, out)
}

func TestModule_Render(t *testing.T) {
	ctx := context.Background()
	mod := loadModule(t, nil)
	pool := literal.NewPool()

	out, err := mod.Render(ctx, "mix", pool, -7.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"new Long(-7,-1)"}, out)

	out, err = mod.Render(ctx, "idf64", pool, math.Copysign(0, -1))
	require.NoError(t, err)
	assert.Equal(t, []string{"-0"}, out)

	out, err = mod.Render(ctx, "nop", pool)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = mod.Render(ctx, "boom", pool)
	assert.ErrorIs(t, err, errors.ErrRuntime)
	assert.Nil(t, out)

	// Render leaves the i64 policy of Call untouched
	res, err := mod.Call(ctx, "mix", 3.0, 0.0)
	require.NoError(t, err)
	assert.Equal(t, []any{3.0}, res)
}

func TestEngine_Load(t *testing.T) {
	ctx := context.Background()
	eng, err := New(ctx, &Config{Interpreter: true, MemoryLimitPages: 16})
	require.NoError(t, err)
	defer eng.Close(ctx)

	_, err = eng.Load(ctx, []byte("not wasm"))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidData})

	first, err := eng.Load(ctx, numericWasm)
	require.NoError(t, err)
	second, err := eng.Load(ctx, numericWasm)
	require.NoError(t, err)

	require.NoError(t, first.Close(ctx))
	out, err := second.Call(ctx, "add", 1.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []any{2.0}, out)
}
