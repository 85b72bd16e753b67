// Package errs provides standardized error types for the mailroom application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidStateError: For when an operation is not allowed in the current lifecycle state
//   - TransportError: For when the remote store could not complete an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The four kinds a caller of the application core needs to distinguish map
// onto the sentinels as follows: validation failures unwrap to
// ErrValueIsRequired or ErrValueIsInvalid, missing parcels to
// ErrObjectNotFound, rejected lifecycle transitions to ErrInvalidState, and
// store/network failures to ErrTransport. Lower-layer errors are never masked
// as a different kind; classification is added on top of the raw cause.
package errs
