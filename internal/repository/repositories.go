package repository

import (
	"github.com/deppfellow/acm/internal/server"
)

// Repositories is the container for all repository instances.
type Repositories struct {
	Employee *EmployeeRepository
	Module   *ModuleRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Employee: NewEmployeeRepository(s.DB.Pool),
		Module:   NewModuleRepository(s.DB.Pool),
	}
}
