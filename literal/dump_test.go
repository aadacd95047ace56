package literal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/wasm-values/value"
)

func withObservedLogger(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestDump(t *testing.T) {
	logs := withObservedLogger(t)

	line := Dump("result:", math.Copysign(0, -1), value.LongFromInt64(5), map[string]int{"a": 1})
	assert.Equal(t, `result: -0 new Long(5,0) {"a":1}`, line)

	entries := logs.FilterMessage("dump").All()
	require.Len(t, entries, 1)
	assert.Equal(t, line, entries[0].ContextMap()["line"])
}

func TestDump_IntegersAreNumbers(t *testing.T) {
	withObservedLogger(t)

	assert.Equal(t, "5 5 5 -5", Dump(5, int32(5), uint(5), -5))
	assert.Equal(t, "new Long(5,0)", Dump(int64(5)))
}

func TestRender_LogsPoolHoisting(t *testing.T) {
	logs := withObservedLogger(t)

	_, err := Render("a\nb", NewPool())
	require.NoError(t, err)
	_, err = Render(math.NaN(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("hoisted string to constant pool").Len())
	assert.Equal(t, 1, logs.FilterMessage("rendered NaN through bytes").Len())
}
