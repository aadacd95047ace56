package literal

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-values/value"
)

// Dump formats args for diagnostics and logs the line at debug level.
// Strings print verbatim, numbers as their literal text, anything else as
// JSON. The formatted line is returned.
func Dump(args ...any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, dumpArg(arg))
	}
	line := strings.Join(parts, " ")
	Logger().Debug("dump", zap.String("line", line))
	return line
}

func dumpArg(arg any) string {
	switch x := arg.(type) {
	case string:
		return x
	case value.Long:
		return renderLong(x)
	}
	if value.IsNumber(arg) {
		if s, err := Render(arg, nil); err == nil {
			return s
		}
	}
	data, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(data)
}
