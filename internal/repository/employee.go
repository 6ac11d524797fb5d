package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/acm/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectEmployeesWithModules = `
SELECT e.id, e.name, m.id, m.name
FROM employees e
LEFT JOIN employee_modules em ON em.employee_id = e.id
LEFT JOIN modules m ON m.id = em.module_id`

// EmployeeRepository persists employees and their module associations.
// Associations live in the employee_modules join table.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// FindAll returns every employee with its modules, ordered by id.
func (r *EmployeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx, selectEmployeesWithModules+` ORDER BY e.id, m.id`)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning employees: %w", err)
	}

	return employees, nil
}

// FindByID returns the employee with id or ErrNotFound.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	rows, err := r.pool.Query(ctx, selectEmployeesWithModules+` WHERE e.id = $1 ORDER BY m.id`, id)
	if err != nil {
		return nil, fmt.Errorf("finding employee %d: %w", id, err)
	}

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning employee %d: %w", id, err)
	}
	if len(employees) == 0 {
		return nil, ErrNotFound
	}

	return &employees[0], nil
}

// Save inserts a transient employee or updates a persisted one, then brings
// the employee_modules rows in line with e.Modules. Everything happens in one
// transaction. The returned employee carries the assigned id; e is not modified.
func (r *EmployeeRepository) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	saved := e.Clone()
	saved.SetModules(e.Modules)

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if !e.IsPersisted() {
			if err := tx.QueryRow(ctx,
				`INSERT INTO employees (name) VALUES ($1) RETURNING id`, e.Name,
			).Scan(&saved.ID); err != nil {
				return fmt.Errorf("inserting employee: %w", err)
			}
		} else {
			tag, err := tx.Exec(ctx,
				`UPDATE employees SET name = $2, updated_at = now() WHERE id = $1`, e.ID, e.Name)
			if err != nil {
				return fmt.Errorf("updating employee %d: %w", e.ID, err)
			}
			if tag.RowsAffected() == 0 {
				return ErrNotFound
			}
		}

		return replaceModules(ctx, tx, saved.ID, saved.ModuleIDs())
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// replaceModules rewrites the join rows for employeeID as a set difference:
// pairs no longer wanted are deleted, new pairs inserted, the rest untouched.
func replaceModules(ctx context.Context, tx pgx.Tx, employeeID int64, wanted []int64) error {
	rows, err := tx.Query(ctx,
		`SELECT module_id FROM employee_modules WHERE employee_id = $1 FOR UPDATE`, employeeID)
	if err != nil {
		return fmt.Errorf("loading modules of employee %d: %w", employeeID, err)
	}

	current, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return fmt.Errorf("scanning modules of employee %d: %w", employeeID, err)
	}

	added, removed := model.DiffIDs(current, wanted)

	if len(removed) > 0 {
		if _, err := tx.Exec(ctx,
			`DELETE FROM employee_modules WHERE employee_id = $1 AND module_id = ANY($2)`,
			employeeID, removed,
		); err != nil {
			return fmt.Errorf("removing modules from employee %d: %w", employeeID, err)
		}
	}

	if len(added) > 0 {
		if _, err := tx.Exec(ctx,
			`INSERT INTO employee_modules (employee_id, module_id) SELECT $1, unnest($2::bigint[])`,
			employeeID, added,
		); err != nil {
			return fmt.Errorf("adding modules to employee %d: %w", employeeID, err)
		}
	}

	return nil
}

// Delete removes the employee; its employee_modules rows cascade.
func (r *EmployeeRepository) Delete(ctx context.Context, e *model.Employee) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, e.ID)
	if err != nil {
		return fmt.Errorf("deleting employee %d: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// collectEmployees folds the employee x module join rows back into employees.
// Rows must arrive grouped by employee id.
func collectEmployees(rows pgx.Rows) ([]model.Employee, error) {
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var (
			id         int64
			name       string
			moduleID   *int64
			moduleName *string
		)
		if err := rows.Scan(&id, &name, &moduleID, &moduleName); err != nil {
			return nil, err
		}

		if len(employees) == 0 || employees[len(employees)-1].ID != id {
			employees = append(employees, model.Employee{ID: id, Name: name, Modules: []model.Module{}})
		}

		if moduleID != nil {
			current := &employees[len(employees)-1]
			current.Modules = append(current.Modules, model.Module{ID: *moduleID, Name: *moduleName})
		}
	}

	return employees, rows.Err()
}
