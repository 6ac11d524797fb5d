package errs

import "fmt"

// EntityNotFoundError is implemented by lookup failures that callers can
// recover from. The offending identifier is always part of the message.
type EntityNotFoundError interface {
	error
	EntityKind() string
	EntityID() int64
}

// EmployeeNotFoundError reports that no employee exists with ID.
type EmployeeNotFoundError struct {
	ID int64
}

func NewEmployeeNotFoundError(id int64) *EmployeeNotFoundError {
	return &EmployeeNotFoundError{ID: id}
}

func (e *EmployeeNotFoundError) Error() string {
	return fmt.Sprintf("Employee not found with ID: %d", e.ID)
}

func (e *EmployeeNotFoundError) EntityKind() string { return "Employee" }
func (e *EmployeeNotFoundError) EntityID() int64    { return e.ID }

// ModuleNotFoundError reports that no module exists with ID.
type ModuleNotFoundError struct {
	ID int64
}

func NewModuleNotFoundError(id int64) *ModuleNotFoundError {
	return &ModuleNotFoundError{ID: id}
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("Module not found with ID: %d", e.ID)
}

func (e *ModuleNotFoundError) EntityKind() string { return "Module" }
func (e *ModuleNotFoundError) EntityID() int64    { return e.ID }
