package service

import (
	"context"
	"errors"

	"github.com/deppfellow/acm/internal/errs"
	"github.com/deppfellow/acm/internal/model"
	"github.com/deppfellow/acm/internal/repository"
	"github.com/rs/zerolog"
)

// ModuleResolver turns module ids from client input into modules.
type ModuleResolver struct {
	modules ModuleFinder
	logger  *zerolog.Logger
}

func NewModuleResolver(modules ModuleFinder, logger *zerolog.Logger) *ModuleResolver {
	return &ModuleResolver{modules: modules, logger: logger}
}

// Resolve looks up every id in input order and returns the modules in set
// form. Repeated ids are looked up once. The first missing id aborts with a
// *errs.ModuleNotFoundError; storage faults are returned as they are.
func (r *ModuleResolver) Resolve(ctx context.Context, ids []int64) ([]model.Module, error) {
	seen := make(map[int64]struct{}, len(ids))
	modules := make([]model.Module, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		m, err := r.modules.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			notFound := errs.NewModuleNotFoundError(id)
			loggerFrom(ctx, r.logger).Error().Int64("module_id", id).Msg(notFound.Error())
			return nil, notFound
		}
		if err != nil {
			return nil, err
		}

		modules = append(modules, *m)
	}

	return model.ModuleSet(modules), nil
}
