package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/service"
	"libraryapi/internal/specification"
)

type MockEntityService[T any, P service.Patch[T]] struct {
	mock.Mock
}

type (
	MockAuthorService    = MockEntityService[model.Author, model.AuthorPatch]
	MockClientService    = MockEntityService[model.Client, model.ClientPatch]
	MockPublisherService = MockEntityService[model.Publisher, model.PublisherPatch]
)

var (
	_ service.AuthorService    = (*MockAuthorService)(nil)
	_ service.ClientService    = (*MockClientService)(nil)
	_ service.PublisherService = (*MockPublisherService)(nil)
)

func (m *MockEntityService[T, P]) entity(args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityService[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	return m.entity(m.Called(ctx, entity))
}

func (m *MockEntityService[T, P]) Update(ctx context.Context, id int64, entity *T) (*T, error) {
	return m.entity(m.Called(ctx, id, entity))
}

func (m *MockEntityService[T, P]) PartialUpdate(ctx context.Context, id int64, patch P) (*T, error) {
	return m.entity(m.Called(ctx, id, patch))
}

func (m *MockEntityService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return m.entity(m.Called(ctx, id))
}

func (m *MockEntityService[T, P]) List(ctx context.Context, spec specification.Specification, pq repository.PageQuery) (*service.ListResult[T], error) {
	args := m.Called(ctx, spec, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[T]), args.Error(1)
}

func (m *MockEntityService[T, P]) Count(ctx context.Context, spec specification.Specification) (int64, error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityService[T, P]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
