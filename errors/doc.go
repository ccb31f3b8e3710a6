// Package errors provides structured error types for the treebridge module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type name, the offending value
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSerialize, errors.KindUnsupported).
//		Path("user", "callback").
//		GoType("func()").
//		Detail("functions cannot be serialized").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.KeyNotString(key)
//	err := errors.Custom("age must be positive")
//
// All errors implement the standard error interface and support errors.Is/As.
// errors.Is matches on phase and kind, so the exported Err* values work as
// targets:
//
//	if errors.Is(err, errors.ErrKeyNotString) { ... }
package errors
