package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/acm/internal/config"
	"github.com/deppfellow/acm/internal/errs"
	"github.com/deppfellow/acm/internal/handler"
	"github.com/deppfellow/acm/internal/middleware"
	"github.com/deppfellow/acm/internal/model"
	"github.com/deppfellow/acm/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmployees is an in-memory EmployeeManager with the same not-found
// behavior as the real service.
type fakeEmployees struct {
	mu        sync.Mutex
	nextID    int64
	employees map[int64]*model.Employee
	modules   map[int64]model.Module
}

func newFakeEmployees() *fakeEmployees {
	return &fakeEmployees{
		nextID:    1,
		employees: map[int64]*model.Employee{},
		modules: map[int64]model.Module{
			1: {ID: 1, Name: "Library"},
			2: {ID: 2, Name: "Dashboard"},
		},
	}
}

func (f *fakeEmployees) resolve(ids []int64) ([]model.Module, error) {
	var modules []model.Module
	for _, id := range ids {
		m, ok := f.modules[id]
		if !ok {
			return nil, errs.NewModuleNotFoundError(id)
		}
		modules = append(modules, m)
	}
	return model.ModuleSet(modules), nil
}

func (f *fakeEmployees) GetAllEmployees(ctx context.Context) ([]model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := []model.Employee{}
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.employees[id]; ok {
			all = append(all, *e.Clone())
		}
	}
	return all, nil
}

func (f *fakeEmployees) GetEmployeeByID(ctx context.Context, id int64) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return nil, errs.NewEmployeeNotFoundError(id)
	}
	return e.Clone(), nil
}

func (f *fakeEmployees) CreateEmployee(ctx context.Context, in model.EmployeeInput) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := model.NewEmployee(in.Name)
	if in.ModuleIDs != nil {
		modules, err := f.resolve(in.ModuleIDs)
		if err != nil {
			return nil, err
		}
		e.SetModules(modules)
	}
	e.ID = f.nextID
	f.nextID++
	f.employees[e.ID] = e
	return e.Clone(), nil
}

func (f *fakeEmployees) UpdateEmployee(ctx context.Context, id int64, in model.EmployeeInput) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.employees[id]
	if !ok {
		return nil, errs.NewEmployeeNotFoundError(id)
	}
	e := current.Clone()
	e.Name = in.Name
	if in.ModuleIDs != nil {
		modules, err := f.resolve(in.ModuleIDs)
		if err != nil {
			return nil, err
		}
		e.SetModules(modules)
	}
	f.employees[id] = e
	return e.Clone(), nil
}

func (f *fakeEmployees) DeleteEmployee(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.employees[id]; !ok {
		return errs.NewEmployeeNotFoundError(id)
	}
	delete(f.employees, id)
	return nil
}

type fakeModules struct{}

func (fakeModules) GetModules(ctx context.Context) ([]model.Module, error) {
	return []model.Module{{ID: 1, Name: "Library"}, {ID: 2, Name: "Dashboard"}}, nil
}

func newTestRouter() *echo.Echo {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}

	h := &handler.Handlers{
		Employee: handler.NewEmployeeHandler(s, newFakeEmployees()),
		Module:   handler.NewModuleHandler(s, fakeModules{}),
	}

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	registerV1Routes(e.Group("/api/v1"), h)
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestEmployeeLifecycle(t *testing.T) {
	e := newTestRouter()

	rec := do(t, e, http.MethodPost, "/api/v1/employees", `{"name":"Aditya","moduleIds":[2,1]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Employee](t, rec)
	assert.Equal(t, "Aditya", created.Name)
	assert.Equal(t, []int64{1, 2}, created.ModuleIDs())

	rec = do(t, e, http.MethodPut, "/api/v1/employees/1", `{"name":"Aditya K"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[model.Employee](t, rec)
	assert.Equal(t, "Aditya K", updated.Name)
	assert.Len(t, updated.Modules, 2)

	rec = do(t, e, http.MethodPut, "/api/v1/employees/1", `{"name":"Aditya K","moduleIds":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[model.Employee](t, rec).Modules)

	rec = do(t, e, http.MethodGet, "/api/v1/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Employee](t, rec), 1)

	rec = do(t, e, http.MethodDelete, "/api/v1/employees/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/employees/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmptyEmployeeListIsArray(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/api/v1/employees", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNotFoundResponses(t *testing.T) {
	e := newTestRouter()

	tests := []struct {
		name, method, target, body string
		wantCode, wantMessage      string
	}{
		{"get", http.MethodGet, "/api/v1/employees/999", "", "EMPLOYEE_NOT_FOUND", "Employee not found with ID: 999"},
		{"delete", http.MethodDelete, "/api/v1/employees/999", "", "EMPLOYEE_NOT_FOUND", "Employee not found with ID: 999"},
		{"update", http.MethodPut, "/api/v1/employees/999", `{"name":"x"}`, "EMPLOYEE_NOT_FOUND", "Employee not found with ID: 999"},
		{"create with unknown module", http.MethodPost, "/api/v1/employees", `{"name":"Bob","moduleIds":[3]}`, "MODULE_NOT_FOUND", "Module not found with ID: 3"},
		{"create with negative module", http.MethodPost, "/api/v1/employees", `{"name":"Bob","moduleIds":[-3]}`, "MODULE_NOT_FOUND", "Module not found with ID: -3"},
		{"get id zero", http.MethodGet, "/api/v1/employees/0", "", "EMPLOYEE_NOT_FOUND", "Employee not found with ID: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusNotFound, rec.Code)
			body := decode[errs.HTTPError](t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestMalformedRequests(t *testing.T) {
	e := newTestRouter()

	rec := do(t, e, http.MethodPost, "/api/v1/employees", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/v1/employees", `{"name":"Bob","moduleIds":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/employees/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmptyNameIsAccepted(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodPost, "/api/v1/employees", `{"moduleIds":[1]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Employee](t, rec)
	assert.Empty(t, created.Name)
	assert.Equal(t, []int64{1}, created.ModuleIDs())
}

func TestRequestsDoNotShareState(t *testing.T) {
	e := newTestRouter()

	rec := do(t, e, http.MethodPost, "/api/v1/employees", `{"name":"First","moduleIds":[1]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/v1/employees", `{"name":"Second"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, decode[model.Employee](t, rec).Modules)
}

func TestGetModules(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/api/v1/modules", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Library"},{"id":2,"name":"Dashboard"}]`, rec.Body.String())
}
