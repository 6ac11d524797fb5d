package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/acm/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ModuleRepository reads modules. Modules are maintained outside this
// service, so there are no write methods.
type ModuleRepository struct {
	pool *pgxpool.Pool
}

func NewModuleRepository(pool *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{pool: pool}
}

// FindByID returns the module with id or ErrNotFound.
func (r *ModuleRepository) FindByID(ctx context.Context, id int64) (*model.Module, error) {
	var module model.Module

	err := r.pool.QueryRow(ctx, `SELECT id, name FROM modules WHERE id = $1`, id).
		Scan(&module.ID, &module.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding module %d: %w", id, err)
	}

	return &module, nil
}

// FindAll returns every module ordered by id.
func (r *ModuleRepository) FindAll(ctx context.Context) ([]model.Module, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM modules ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	modules, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Module])
	if err != nil {
		return nil, fmt.Errorf("scanning modules: %w", err)
	}

	return modules, nil
}
