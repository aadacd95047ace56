// Package engine runs core WebAssembly modules on wazero and exchanges
// host values with their exports.
//
// Every call goes through the value package: arguments are coerced with
// value.ToMachine (missing arguments count as undefined and become zero),
// results come back through value.ToHost.
//
//	eng, err := engine.New(ctx, nil)
//	defer eng.Close(ctx)
//
//	mod, err := eng.Load(ctx, wasmBytes)
//	out, err := mod.Call(ctx, "add", 1.0, 2.0) // []any{3.0}
//
// # i64 results
//
// By default i64 results round to the nearest float64. Config.PreserveI64
// returns value.Long instead; Config.StrictI64 fails with a RangeError
// when rounding would lose precision.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Module is not; synchronize calls or
// load one Module per goroutine.
package engine
