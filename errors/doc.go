// Package errors provides structured error types for the bytegen module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the member and target type involved plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSelect, errors.KindInvalidArgument).
//		Member("java/lang/Object.hashCode()I").
//		Target("java/lang/String").
//		Detail("not a legal special target").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidState(errors.PhaseSelect, member, "static method")
//	err := errors.StackOverflow(5, 4)
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels match any error of their kind regardless of phase.
package errors
