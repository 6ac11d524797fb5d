package handler

import (
	"context"

	"github.com/deppfellow/acm/internal/model"
	"github.com/deppfellow/acm/internal/server"
	"github.com/labstack/echo/v4"
)

type ModuleLister interface {
	GetModules(ctx context.Context) ([]model.Module, error)
}

type ModuleHandler struct {
	Handler
	modules ModuleLister
}

func NewModuleHandler(s *server.Server, modules ModuleLister) *ModuleHandler {
	return &ModuleHandler{
		Handler: NewHandler(s),
		modules: modules,
	}
}

func (h *ModuleHandler) GetModules(c echo.Context, _ *model.GetModulesRequest) ([]model.Module, error) {
	return h.modules.GetModules(c.Request().Context())
}
