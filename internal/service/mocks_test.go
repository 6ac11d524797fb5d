package service

import (
	"context"

	"github.com/deppfellow/acm/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockEmployeeStore struct {
	mock.Mock
}

func (m *mockEmployeeStore) FindAll(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]model.Employee)
	return employees, args.Error(1)
}

func (m *mockEmployeeStore) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*model.Employee)
	if e != nil {
		e = e.Clone()
	}
	return e, args.Error(1)
}

// Save mimics storage: it assigns id 1 to transient employees.
func (m *mockEmployeeStore) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
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

func (m *mockEmployeeStore) Delete(ctx context.Context, e *model.Employee) error {
	return m.Called(ctx, e).Error(0)
}

type mockModuleStore struct {
	mock.Mock
}

func (m *mockModuleStore) FindByID(ctx context.Context, id int64) (*model.Module, error) {
	args := m.Called(ctx, id)
	module, _ := args.Get(0).(*model.Module)
	return module, args.Error(1)
}

func (m *mockModuleStore) FindAll(ctx context.Context) ([]model.Module, error) {
	args := m.Called(ctx)
	modules, _ := args.Get(0).([]model.Module)
	return modules, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, change model.AccessChange) error {
	return m.Called(ctx, change).Error(0)
}
