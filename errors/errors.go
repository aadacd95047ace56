package errors

import (
	"fmt"
	"strings"
)

// Class is the caller-visible error signal a failure is raised as.
type Class string

const (
	ClassType    Class = "TypeError"    // wrong host-level type at a conversion boundary
	ClassRange   Class = "RangeError"   // numeric value outside the accepted range
	ClassCompile Class = "CompileError" // value or kind cannot be represented/encoded
	ClassRuntime Class = "RuntimeError" // execution-time failure
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCoerce    Phase = "coerce"    // host <-> machine value conversion
	PhaseRender    Phase = "render"    // value to literal text
	PhaseDecode    Phase = "decode"    // literal text back to value
	PhaseSignature Phase = "signature" // signature tag encoding
	PhaseValidate  Phase = "validate"  // guard assertions
	PhaseLoad      Phase = "load"      // module loading
	PhaseCall      Phase = "call"      // export invocation
	PhaseConfig    Phase = "config"    // startup configuration
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindUnknownKind  Kind = "unknown_kind"
	KindNotNumeric   Kind = "not_numeric"
	KindUndefined    Kind = "undefined"
	KindNotCallable  Kind = "not_callable"
	KindOverflow     Kind = "overflow"
	KindUnsupported  Kind = "unsupported"
	KindInvalidData  Kind = "invalid_data"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindNotFound     Kind = "not_found"
	KindTrap         Kind = "trap"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Class    Class
	Phase    Phase
	Kind     Kind
	GoType   string
	WasmType string
	Detail   string
	Path     []string
}

// Sentinels matching any error of a class through errors.Is.
var (
	ErrType    = &Error{Class: ClassType}
	ErrRange   = &Error{Class: ClassRange}
	ErrCompile = &Error{Class: ClassCompile}
	ErrRuntime = &Error{Class: ClassRuntime}
)

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Class != "" {
		b.WriteString(string(e.Class))
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WasmType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WasmType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wasm type ")
			b.WriteString(e.WasmType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wasm type ")
			b.WriteString(e.WasmType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WasmType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target carrying only a Class matches every error of that class;
// otherwise Phase and Kind must both match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" && t.Kind == "" {
		return t.Class != "" && e.Class == t.Class
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(class Class, phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Class: class,
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WasmType sets the wasm value type name
func (b *Builder) WasmType(t string) *Builder {
	b.err.WasmType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, wasmType string) *Error {
	return &Error{
		Class:    ClassType,
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		WasmType: wasmType,
	}
}

// UnknownKind reports a machine kind outside {i32, i64, f32, f64}.
// Coercion raises it as a TypeError, signature encoding as a CompileError.
func UnknownKind(class Class, phase Phase, kind any) *Error {
	return &Error{
		Class:  class,
		Phase:  phase,
		Kind:   KindUnknownKind,
		Detail: fmt.Sprintf("unknown machine kind: %v", kind),
		Value:  kind,
	}
}

// NotNumeric creates the error raised when a non-number reaches a coercion
func NotNumeric(phase Phase, value any) *Error {
	return &Error{
		Class:  ClassType,
		Phase:  phase,
		Kind:   KindNotNumeric,
		GoType: fmt.Sprintf("%T", value),
		Detail: "cannot convert non-numeric value",
		Value:  value,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, targetType string) *Error {
	return &Error{
		Class:    ClassRange,
		Phase:    phase,
		Kind:     KindOverflow,
		WasmType: targetType,
		Detail:   fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:    value,
	}
}

// Unrenderable creates the error raised for a value with no literal form
func Unrenderable(value any) *Error {
	return &Error{
		Class:  ClassCompile,
		Phase:  PhaseRender,
		Kind:   KindUnsupported,
		Detail: fmt.Sprintf("rendering unknown type of value: %T : %v", value, value),
		Value:  value,
	}
}

// InvalidData creates an invalid data error
func InvalidData(class Class, phase Phase, detail string) *Error {
	return &Error{
		Class:  class,
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Class:  ClassCompile,
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Class:  ClassRuntime,
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(class Class, phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Class:  class,
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Trap creates the runtime error for a failed guest execution
func Trap(msg string, cause error) *Error {
	if msg == "" {
		msg = "it's a trap!"
	}
	return &Error{
		Class:  ClassRuntime,
		Phase:  PhaseCall,
		Kind:   KindTrap,
		Detail: msg,
		Cause:  cause,
	}
}

// Load creates a module loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Class:  ClassCompile,
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}
