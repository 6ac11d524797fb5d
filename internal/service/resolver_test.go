package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/acm/internal/errs"
	"github.com/deppfellow/acm/internal/model"
	"github.com/deppfellow/acm/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestResolver(modules ModuleFinder) *ModuleResolver {
	logger := zerolog.Nop()
	return NewModuleResolver(modules, &logger)
}

func TestResolveReturnsModulesInSetForm(t *testing.T) {
	modules := &mockModuleStore{}
	modules.On("FindByID", mock.Anything, int64(2)).Return(&model.Module{ID: 2, Name: "Dashboard"}, nil)
	modules.On("FindByID", mock.Anything, int64(1)).Return(&model.Module{ID: 1, Name: "Library"}, nil)

	got, err := newTestResolver(modules).Resolve(context.Background(), []int64{2, 1, 2})

	require.NoError(t, err)
	assert.Equal(t, []model.Module{{ID: 1, Name: "Library"}, {ID: 2, Name: "Dashboard"}}, got)
	modules.AssertNumberOfCalls(t, "FindByID", 2)
}

func TestResolveEmptyInput(t *testing.T) {
	modules := &mockModuleStore{}

	got, err := newTestResolver(modules).Resolve(context.Background(), []int64{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	modules.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestResolveFailsFastOnMissingModule(t *testing.T) {
	modules := &mockModuleStore{}
	modules.On("FindByID", mock.Anything, int64(1)).Return(&model.Module{ID: 1, Name: "Library"}, nil)
	modules.On("FindByID", mock.Anything, int64(3)).Return(nil, repository.ErrNotFound)

	_, err := newTestResolver(modules).Resolve(context.Background(), []int64{1, 3, 4})

	var notFound *errs.ModuleNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(3), notFound.ID)
	assert.Equal(t, "Module not found with ID: 3", err.Error())
	modules.AssertNotCalled(t, "FindByID", mock.Anything, int64(4))
}

func TestResolvePassesStorageFaultsThrough(t *testing.T) {
	boom := errors.New("connection reset")
	modules := &mockModuleStore{}
	modules.On("FindByID", mock.Anything, int64(1)).Return(nil, boom)

	_, err := newTestResolver(modules).Resolve(context.Background(), []int64{1})

	assert.Same(t, boom, err)
}
