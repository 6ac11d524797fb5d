// Package errs defines the error types shared across layers.
//
// HTTPError is the JSON error shape returned to API clients.
// EmployeeNotFoundError and ModuleNotFoundError are the typed, recoverable
// lookup failures raised by the service layer; the global error handler
// turns any EntityNotFoundError into a 404 carrying the error text.
package errs
