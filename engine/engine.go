package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/value"
)

// Engine compiles and instantiates core modules on one wazero runtime.
type Engine struct {
	runtime wazero.Runtime
	cfg     Config
}

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means the wazero default.
	MemoryLimitPages uint32

	// Interpreter selects wazero's interpreter instead of the compiler.
	Interpreter bool

	// PreserveI64 returns i64 results as value.Long instead of float64.
	PreserveI64 bool

	// StrictI64 fails calls whose i64 results do not fit a float64 exactly.
	// Ignored when PreserveI64 is set.
	StrictI64 bool
}

// New creates an engine. A nil cfg uses defaults.
func New(ctx context.Context, cfg *Config) (*Engine, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if c.Interpreter {
		runtimeCfg = wazero.NewRuntimeConfigInterpreter()
	}
	if c.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(c.MemoryLimitPages)
	}

	return &Engine{
		runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
		cfg:     c,
	}, nil
}

// Close releases the runtime and every module loaded from it.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Load compiles and instantiates a core module. Exports whose signatures
// include non-numeric types are kept but cannot be called.
func (e *Engine) Load(ctx context.Context, wasm []byte) (*Module, error) {
	compiled, err := e.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Load("compile module", err)
	}

	exports := make(map[string]value.Signature)
	unsupported := make(map[string]error)
	for name, def := range compiled.ExportedFunctions() {
		sig, err := value.SignatureOf(def)
		if err != nil {
			unsupported[name] = err
			Logger().Debug("export has no host-number signature", zap.String("export", name), zap.Error(err))
			continue
		}
		exports[name] = sig
	}

	// anonymous: the same binary may be loaded more than once
	instance, err := e.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		_ = compiled.Close(ctx)
		return nil, errors.Load("instantiate module", err)
	}

	Logger().Debug("module loaded",
		zap.Int("exports", len(exports)),
		zap.Int("unsupported", len(unsupported)))

	return &Module{
		compiled:    compiled,
		instance:    instance,
		exports:     exports,
		unsupported: unsupported,
		cfg:         e.cfg,
	}, nil
}
