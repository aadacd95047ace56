// Package value converts numbers across the WebAssembly host boundary.
//
// Four machine kinds exist: i32, i64, f32 and f64. Host values are plain Go
// values, conceptually a float64:
//
//	nil        undefined; coerces to the zero value of any kind
//	float64    a host number
//	Float      a host number carrying an explicit signalling-NaN flag
//	Long       a 64-bit integer split into low and high 32-bit halves;
//	           an object, not a number, so only i64 coercion accepts it
//
// Go integer types and float32 are accepted as numbers too.
//
// # Coercion
//
//	v, err := value.ToMachine(4294967296.0, value.KindI32) // i32 0
//	h, err := value.ToHost(value.I64(1<<62))           // float64
//
// ToHost rounds i64 values to the nearest float64 (ties to even). Use
// ToHostStrict to reject values beyond 2^53, or ToHostLong to keep them.
//
// # Signatures
//
// Signature.Tag encodes ordered parameter and result kinds as a compact
// string key, e.g. (i32, f64) -> (i64) is "id_l".
//
// All functions are pure and safe for concurrent use.
package value
