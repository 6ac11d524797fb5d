package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundMessagesCarryIdentifier(t *testing.T) {
	assert.Equal(t, "Employee not found with ID: 999", NewEmployeeNotFoundError(999).Error())
	assert.Equal(t, "Module not found with ID: 3", NewModuleNotFoundError(3).Error())
}

func TestNotFoundKindsAreDistinguishable(t *testing.T) {
	var err error = NewModuleNotFoundError(3)

	var moduleErr *ModuleNotFoundError
	var employeeErr *EmployeeNotFoundError
	assert.True(t, errors.As(err, &moduleErr))
	assert.False(t, errors.As(err, &employeeErr))
	assert.Equal(t, int64(3), moduleErr.ID)
}

func TestEntityNotFoundErrorThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewEmployeeNotFoundError(7))

	var notFound EntityNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Employee", notFound.EntityKind())
	assert.Equal(t, int64(7), notFound.EntityID())
}

func TestFromNotFound(t *testing.T) {
	httpErr := FromNotFound(NewModuleNotFoundError(3))

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "MODULE_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Module not found with ID: 3", httpErr.Message)

	httpErr = FromNotFound(NewEmployeeNotFoundError(1))
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", httpErr.Code)
}

func TestHTTPErrorIsMatchesType(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewBadRequestError("bad", false, nil, nil, nil))

	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessageCopies(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	custom := base.WithMessage("Employee not found")

	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, "Employee not found", custom.Message)
	assert.Equal(t, base.Code, custom.Code)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "TOO_MANY_REQUESTS", NewTooManyRequestsError("slow down").Code)
}
