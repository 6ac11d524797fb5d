package handler

import (
	"context"

	"github.com/deppfellow/acm/internal/model"
	"github.com/deppfellow/acm/internal/server"
	"github.com/labstack/echo/v4"
)

// EmployeeManager is the part of the employee service the HTTP layer uses.
type EmployeeManager interface {
	GetAllEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*model.Employee, error)
	CreateEmployee(ctx context.Context, in model.EmployeeInput) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, in model.EmployeeInput) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type EmployeeHandler struct {
	Handler
	employees EmployeeManager
}

func NewEmployeeHandler(s *server.Server, employees EmployeeManager) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

func (h *EmployeeHandler) GetEmployees(c echo.Context, _ *model.GetEmployeesRequest) ([]model.Employee, error) {
	return h.employees.GetAllEmployees(c.Request().Context())
}

func (h *EmployeeHandler) GetEmployee(c echo.Context, req *model.EmployeeIDRequest) (*model.Employee, error) {
	return h.employees.GetEmployeeByID(c.Request().Context(), req.ID)
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context, req *model.CreateEmployeeRequest) (*model.Employee, error) {
	return h.employees.CreateEmployee(c.Request().Context(), req.ToInput())
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context, req *model.UpdateEmployeeRequest) (*model.Employee, error) {
	return h.employees.UpdateEmployee(c.Request().Context(), req.ID, req.ToInput())
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context, req *model.EmployeeIDRequest) error {
	return h.employees.DeleteEmployee(c.Request().Context(), req.ID)
}
