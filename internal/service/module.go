package service

import (
	"context"

	"github.com/deppfellow/acm/internal/model"
)

// ModuleLister lists modules for display.
type ModuleLister interface {
	FindAll(ctx context.Context) ([]model.Module, error)
}

// ModuleService exposes the read-only module catalogue.
type ModuleService struct {
	modules ModuleLister
}

func NewModuleService(modules ModuleLister) *ModuleService {
	return &ModuleService{modules: modules}
}

func (s *ModuleService) GetModules(ctx context.Context) ([]model.Module, error) {
	return s.modules.FindAll(ctx)
}
