// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated input, services apply the domain rules and talk to storage
// through the small interfaces declared here.
package service

import (
	"context"

	"github.com/deppfellow/acm/internal/model"
	"github.com/rs/zerolog"
)

// EmployeeStore is the primary storage gateway.
type EmployeeStore interface {
	FindAll(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id int64) (*model.Employee, error)
	Save(ctx context.Context, e *model.Employee) (*model.Employee, error)
	Delete(ctx context.Context, e *model.Employee) error
}

// ModuleFinder is the read-only gateway for modules.
type ModuleFinder interface {
	FindByID(ctx context.Context, id int64) (*model.Module, error)
}

// ChangeNotifier is told about committed module access changes.
type ChangeNotifier interface {
	Notify(ctx context.Context, change model.AccessChange) error
}

// NopNotifier discards every change.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, model.AccessChange) error { return nil }

// loggerFrom prefers the request-scoped logger stored on ctx.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
