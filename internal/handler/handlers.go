package handler

import (
	"github.com/deppfellow/acm/internal/server"
	"github.com/deppfellow/acm/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Employee *EmployeeHandler
	Module   *ModuleHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Employee: NewEmployeeHandler(s, services.Employee),
		Module:   NewModuleHandler(s, services.Module),
	}
}
