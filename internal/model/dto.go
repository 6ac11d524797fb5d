package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their wire names: the json key, or the
// path parameter for fields that are not part of the body.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := strings.Split(f.Tag.Get("json"), ",")[0]; name != "" && name != "-" {
			return name
		}
		if name := f.Tag.Get("param"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// GetEmployeesRequest has no parameters; it exists so the list endpoint goes
// through the same handler pipeline as the others.
type GetEmployeesRequest struct{}

func (r *GetEmployeesRequest) Validate() error {
	return nil
}

// EmployeeIDRequest addresses a single employee by path parameter. Ids that
// match no employee, zero and negatives included, are reported as not found.
type EmployeeIDRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *EmployeeIDRequest) Validate() error {
	return validate.Struct(r)
}

// CreateEmployeeRequest is the body of POST /employees.
//
// Name is free-form text. moduleIds distinguishes null/omitted (nil slice)
// from [] (empty slice); encoding/json preserves that difference. Unknown
// module ids are left to the resolver, which answers with a not-found error.
type CreateEmployeeRequest struct {
	Name      string  `json:"name"`
	ModuleIDs []int64 `json:"moduleIds"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateEmployeeRequest) ToInput() EmployeeInput {
	return EmployeeInput{Name: r.Name, ModuleIDs: r.ModuleIDs}
}

// UpdateEmployeeRequest is the path and body of PUT /employees/:id.
type UpdateEmployeeRequest struct {
	ID        int64   `param:"id" json:"-"`
	Name      string  `json:"name"`
	ModuleIDs []int64 `json:"moduleIds"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateEmployeeRequest) ToInput() EmployeeInput {
	return EmployeeInput{Name: r.Name, ModuleIDs: r.ModuleIDs}
}

// GetModulesRequest has no parameters.
type GetModulesRequest struct{}

func (r *GetModulesRequest) Validate() error {
	return nil
}
