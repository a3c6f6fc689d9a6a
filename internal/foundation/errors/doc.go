// Package errors provides classified error primitives used across sitecontent.
//
// A ClassifiedError carries a category, a severity and structured context.
// The CLI adapter turns categories into exit codes.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryStore, "content directory unavailable").
//		Fatal().
//		WithContext("path", root).
//		WithCause(statErr).
//		Build()
package errors
