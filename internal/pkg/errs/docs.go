// Package errs provides the typed errors shared by the dashboard domain, use cases
// and HTTP adapter.
//
// Each error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct type carrying the parameter name
//   - a New...Error constructor (NewValueIsInvalidErrorWithCause for invalid values)
//   - Unwrap exposing the sentinel, so callers classify errors with errors.Is
//
// The HTTP adapter maps these sentinels onto status codes.
package errs
