package service

import (
	"context"
	"errors"

	"github.com/deppfellow/acm/internal/errs"
	"github.com/deppfellow/acm/internal/metric"
	"github.com/deppfellow/acm/internal/model"
	"github.com/deppfellow/acm/internal/repository"
	"github.com/rs/zerolog"
)

const (
	opList   = "list"
	opGet    = "get"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// EmployeeService implements employee CRUD and keeps module access in sync.
//
// Not-found conditions come back as *errs.EmployeeNotFoundError or
// *errs.ModuleNotFoundError, unwrapped. Every other error is returned as
// the gateway produced it.
type EmployeeService struct {
	employees EmployeeStore
	resolver  *ModuleResolver
	notifier  ChangeNotifier
	metrics   *metric.Metrics
	logger    *zerolog.Logger
}

// NewEmployeeService wires the service. A nil notifier disables change
// notifications and nil metrics records nothing.
func NewEmployeeService(
	employees EmployeeStore,
	resolver *ModuleResolver,
	notifier ChangeNotifier,
	metrics *metric.Metrics,
	logger *zerolog.Logger,
) *EmployeeService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &EmployeeService{
		employees: employees,
		resolver:  resolver,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetAllEmployees returns every employee in storage order.
func (s *EmployeeService) GetAllEmployees(ctx context.Context) (employees []model.Employee, err error) {
	defer func() { s.metrics.RecordEmployeeOperation(opList, err) }()

	return s.employees.FindAll(ctx)
}

// GetEmployeeByID returns the employee with id.
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id int64) (employee *model.Employee, err error) {
	defer func() { s.metrics.RecordEmployeeOperation(opGet, err) }()

	return s.load(ctx, id)
}

// CreateEmployee persists a new employee. Module ids are resolved before
// anything is written; a nil ModuleIDs creates the employee without modules.
func (s *EmployeeService) CreateEmployee(ctx context.Context, in model.EmployeeInput) (employee *model.Employee, err error) {
	defer func() { s.metrics.RecordEmployeeOperation(opCreate, err) }()

	e := model.NewEmployee(in.Name)

	if in.ModuleIDs != nil {
		modules, err := s.resolver.Resolve(ctx, in.ModuleIDs)
		if err != nil {
			return nil, err
		}
		e.SetModules(modules)
	}

	saved, err := s.employees.Save(ctx, e)
	if err != nil {
		return nil, err
	}

	loggerFrom(ctx, s.logger).Info().
		Int64("employee_id", saved.ID).
		Int("modules", len(saved.Modules)).
		Msg("employee created")

	s.notify(ctx, saved, nil, saved.Modules)

	return saved, nil
}

// UpdateEmployee overwrites the name of employee id and, when ModuleIDs is
// non-nil, replaces its whole module set. A nil ModuleIDs keeps the current
// modules. Nothing is saved if a module id cannot be resolved.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int64, in model.EmployeeInput) (employee *model.Employee, err error) {
	defer func() { s.metrics.RecordEmployeeOperation(opUpdate, err) }()

	e, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	before := e.Clone().Modules

	e.Name = in.Name

	if in.ModuleIDs != nil {
		modules, err := s.resolver.Resolve(ctx, in.ModuleIDs)
		if err != nil {
			return nil, err
		}
		e.SetModules(modules)
	}

	saved, err := s.employees.Save(ctx, e)
	if errors.Is(err, repository.ErrNotFound) {
		// deleted between load and save
		return nil, s.employeeNotFound(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	loggerFrom(ctx, s.logger).Info().
		Int64("employee_id", saved.ID).
		Int("modules", len(saved.Modules)).
		Msg("employee updated")

	s.notify(ctx, saved, before, saved.Modules)

	return saved, nil
}

// DeleteEmployee removes employee id together with its module associations.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) (err error) {
	defer func() { s.metrics.RecordEmployeeOperation(opDelete, err) }()

	e, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	err = s.employees.Delete(ctx, e)
	if errors.Is(err, repository.ErrNotFound) {
		return s.employeeNotFound(ctx, id)
	}
	if err != nil {
		return err
	}

	loggerFrom(ctx, s.logger).Info().Int64("employee_id", id).Msg("employee deleted")

	s.notify(ctx, e, e.Modules, nil)

	return nil
}

func (s *EmployeeService) load(ctx context.Context, id int64) (*model.Employee, error) {
	e, err := s.employees.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, s.employeeNotFound(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) employeeNotFound(ctx context.Context, id int64) error {
	notFound := errs.NewEmployeeNotFoundError(id)
	loggerFrom(ctx, s.logger).Error().Int64("employee_id", id).Msg(notFound.Error())
	return notFound
}

// notify reports the difference between before and after. The write has
// already committed, so a failing notifier is only logged.
func (s *EmployeeService) notify(ctx context.Context, e *model.Employee, before, after []model.Module) {
	added, removed := model.DiffModules(before, after)
	change := model.AccessChange{
		EmployeeID:   e.ID,
		EmployeeName: e.Name,
		Added:        added,
		Removed:      removed,
	}
	if change.Empty() {
		return
	}

	s.metrics.RecordAccessChange(len(added), len(removed))

	if err := s.notifier.Notify(ctx, change); err != nil {
		loggerFrom(ctx, s.logger).Error().
			Err(err).
			Int64("employee_id", e.ID).
			Msg("failed to publish module access change")
	}
}
