// Package errors provides structured error types for the wasm value layer.
//
// Every error carries a Class (the signal callers see: TypeError,
// RangeError, CompileError or RuntimeError), a Phase (where it occurred)
// and a Kind (error category), plus optional path, Go/wasm type names and
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.ClassRange, errors.PhaseCoerce, errors.KindOverflow).
//		Path("add", "arg0").
//		WasmType("u32").
//		Detail("value %v is negative", -1).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotNumeric(errors.PhaseCoerce, "x")
//	err := errors.OutOfBounds(errors.PhaseDecode, 10, 5)
//
// The class sentinels match any error of their class through the standard
// library's errors.Is:
//
//	if stderrors.Is(err, errors.ErrRange) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
