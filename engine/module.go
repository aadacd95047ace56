package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/literal"
	"github.com/wippyai/wasm-values/value"
)

// Module is an instantiated core module.
type Module struct {
	compiled    wazero.CompiledModule
	instance    api.Module
	exports     map[string]value.Signature
	unsupported map[string]error
	cfg         Config
}

// Exports returns the signature of every callable export.
func (m *Module) Exports() map[string]value.Signature {
	out := make(map[string]value.Signature, len(m.exports))
	for name, sig := range m.exports {
		out[name] = sig
	}
	return out
}

// ExportNames returns callable export names in sorted order.
func (m *Module) ExportNames() []string {
	names := make([]string, 0, len(m.exports))
	for name := range m.exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tags returns the signature tag of every callable export.
func (m *Module) Tags() (map[string]string, error) {
	tags := make(map[string]string, len(m.exports))
	for name, sig := range m.exports {
		tag, err := sig.Tag()
		if err != nil {
			return nil, err
		}
		tags[name] = tag
	}
	return tags, nil
}

// Call invokes an export with host arguments and returns host results.
// Missing arguments are undefined and become zero; extra ones are ignored.
func (m *Module) Call(ctx context.Context, name string, args ...any) ([]any, error) {
	return m.call(ctx, name, m.toHost, args)
}

func (m *Module) call(ctx context.Context, name string, toHost func(value.Value) (any, error), args []any) ([]any, error) {
	sig, ok := m.exports[name]
	if !ok {
		if err, bad := m.unsupported[name]; bad {
			return nil, errors.Wrap(errors.ClassType, errors.PhaseCall, errors.KindUnsupported, err,
				fmt.Sprintf("export %q has non-numeric types", name))
		}
		return nil, errors.NotFound(errors.PhaseCall, "export", name)
	}
	fn := m.instance.ExportedFunction(name)
	if fn == nil {
		return nil, errors.NotFound(errors.PhaseCall, "export", name)
	}

	params := make([]uint64, len(sig.Params))
	for i, k := range sig.Params {
		var host any
		if i < len(args) {
			host = args[i]
		}
		v, err := value.ToMachine(host, k)
		if err != nil {
			return nil, withPath(err, name, fmt.Sprintf("arg%d", i))
		}
		params[i] = v.Encode()
	}
	if len(args) > len(sig.Params) {
		Logger().Debug("extra arguments ignored",
			zap.String("export", name),
			zap.Int("want", len(sig.Params)),
			zap.Int("got", len(args)))
	}

	raw, err := fn.Call(ctx, params...)
	if err != nil {
		return nil, errors.Trap(fmt.Sprintf("call %s", name), err)
	}

	results := make([]any, len(sig.Results))
	for i, k := range sig.Results {
		v, err := value.Decode(k, raw[i])
		if err != nil {
			return nil, err
		}
		h, err := toHost(v)
		if err != nil {
			return nil, withPath(err, name, fmt.Sprintf("result%d", i))
		}
		results[i] = h
	}
	return results, nil
}

// Render calls an export and renders each result as literal text.
// Results are read back as value.Long for i64 so no digits are lost.
func (m *Module) Render(ctx context.Context, name string, pool *literal.Pool, args ...any) ([]string, error) {
	results, err := m.call(ctx, name, value.ToHostLong, args)
	if err != nil {
		return nil, err
	}
	return literal.RenderAll(results, pool)
}

// Close releases the instance and its compiled code.
func (m *Module) Close(ctx context.Context) error {
	err := m.instance.Close(ctx)
	if cerr := m.compiled.Close(ctx); err == nil {
		err = cerr
	}
	return err
}

func (m *Module) toHost(v value.Value) (any, error) {
	switch {
	case m.cfg.PreserveI64:
		return value.ToHostLong(v)
	case m.cfg.StrictI64:
		return value.ToHostStrict(v)
	}
	return value.ToHost(v)
}

func withPath(err error, path ...string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		e.Path = path
	}
	return err
}
