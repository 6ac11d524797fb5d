package router

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/acm/internal/config"
	"github.com/deppfellow/acm/internal/errs"
	"github.com/deppfellow/acm/internal/handler"
	"github.com/deppfellow/acm/internal/middleware"
	"github.com/deppfellow/acm/internal/model"
	"github.com/deppfellow/acm/internal/repository"
	"github.com/deppfellow/acm/internal/server"
	"github.com/deppfellow/acm/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type employeeStore struct {
	mock.Mock
}

func (m *employeeStore) FindAll(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]model.Employee)
	return employees, args.Error(1)
}

func (m *employeeStore) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*model.Employee)
	if e != nil {
		e = e.Clone()
	}
	return e, args.Error(1)
}

func (m *employeeStore) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, e)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	saved := e.Clone()
	if !saved.IsPersisted() {
		saved.ID = 1
	}
	return saved, nil
}

func (m *employeeStore) Delete(ctx context.Context, e *model.Employee) error {
	return m.Called(ctx, e).Error(0)
}

type moduleStore struct {
	mock.Mock
}

func (m *moduleStore) FindByID(ctx context.Context, id int64) (*model.Module, error) {
	args := m.Called(ctx, id)
	module, _ := args.Get(0).(*model.Module)
	return module, args.Error(1)
}

type serviceFixture struct {
	employees *employeeStore
	modules   *moduleStore
	router    *echo.Echo
}

// newServiceFixture serves the v1 routes through the real employee service
// and module resolver, backed by mocked stores.
func newServiceFixture() *serviceFixture {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}

	f := &serviceFixture{employees: &employeeStore{}, modules: &moduleStore{}}
	employees := service.NewEmployeeService(f.employees, service.NewModuleResolver(f.modules, &logger), nil, nil, &logger)

	h := &handler.Handlers{
		Employee: handler.NewEmployeeHandler(s, employees),
		Module:   handler.NewModuleHandler(s, fakeModules{}),
	}

	f.router = echo.New()
	f.router.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	registerV1Routes(f.router.Group("/api/v1"), h)
	return f
}

func TestUpdateWithUnknownModuleSavesNothing(t *testing.T) {
	f := newServiceFixture()
	f.employees.On("FindByID", mock.Anything, int64(7)).
		Return(&model.Employee{ID: 7, Name: "Aditya", Modules: []model.Module{{ID: 1, Name: "Library"}}}, nil)
	f.modules.On("FindByID", mock.Anything, int64(1)).Return(&model.Module{ID: 1, Name: "Library"}, nil)
	f.modules.On("FindByID", mock.Anything, int64(3)).Return(nil, repository.ErrNotFound)

	rec := do(t, f.router, http.MethodPut, "/api/v1/employees/7", `{"name":"Aditya K","moduleIds":[1,3]}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "MODULE_NOT_FOUND", body.Code)
	assert.Equal(t, "Module not found with ID: 3", body.Message)
	f.employees.AssertNumberOfCalls(t, "Save", 0)
	f.modules.AssertExpectations(t)
}

func TestCreateWithNegativeModuleIDIsNotFound(t *testing.T) {
	f := newServiceFixture()
	f.modules.On("FindByID", mock.Anything, int64(-3)).Return(nil, repository.ErrNotFound)

	rec := do(t, f.router, http.MethodPost, "/api/v1/employees", `{"name":"Bob","moduleIds":[-3]}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Module not found with ID: -3", decode[errs.HTTPError](t, rec).Message)
	f.employees.AssertNumberOfCalls(t, "Save", 0)
}

func TestUpdateOverwritesNameWithEmpty(t *testing.T) {
	f := newServiceFixture()
	f.employees.On("FindByID", mock.Anything, int64(7)).
		Return(&model.Employee{ID: 7, Name: "Aditya", Modules: []model.Module{{ID: 1, Name: "Library"}}}, nil)
	f.employees.On("Save", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil, nil).Once()

	rec := do(t, f.router, http.MethodPut, "/api/v1/employees/7", `{"name":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[model.Employee](t, rec)
	assert.Empty(t, updated.Name)
	assert.Equal(t, []int64{1}, updated.ModuleIDs())
	f.employees.AssertExpectations(t)
	f.modules.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetNonPositiveIDIsNotFound(t *testing.T) {
	f := newServiceFixture()
	f.employees.On("FindByID", mock.Anything, int64(0)).Return(nil, repository.ErrNotFound)

	rec := do(t, f.router, http.MethodGet, "/api/v1/employees/0", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Employee not found with ID: 0", decode[errs.HTTPError](t, rec).Message)
}
