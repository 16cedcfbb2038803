package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
)

type MockRepository[T any] struct {
	mock.Mock
}

type (
	MockAuthorRepository    = MockRepository[model.Author]
	MockClientRepository    = MockRepository[model.Client]
	MockPublisherRepository = MockRepository[model.Publisher]
)

var (
	_ repository.AuthorRepository    = (*MockAuthorRepository)(nil)
	_ repository.ClientRepository    = (*MockClientRepository)(nil)
	_ repository.PublisherRepository = (*MockPublisherRepository)(nil)
)

func (m *MockRepository[T]) entity(args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) entities(args mock.Arguments) ([]T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) page(args mock.Arguments) (*repository.PageResult[T], error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[T]), args.Error(1)
}

func (m *MockRepository[T]) Save(ctx context.Context, entity *T) (*T, error) {
	return m.entity(m.Called(ctx, entity))
}

func (m *MockRepository[T]) SaveAll(ctx context.Context, entities []T) ([]T, error) {
	return m.entities(m.Called(ctx, entities))
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return m.entity(m.Called(ctx, id))
}

func (m *MockRepository[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) FindAll(ctx context.Context, sort repository.Sort) ([]T, error) {
	return m.entities(m.Called(ctx, sort))
}

func (m *MockRepository[T]) FindAllByID(ctx context.Context, ids []int64) ([]T, error) {
	return m.entities(m.Called(ctx, ids))
}

func (m *MockRepository[T]) FindPage(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[T], error) {
	return m.page(m.Called(ctx, pq))
}

func (m *MockRepository[T]) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository[T]) DeleteAllByID(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockRepository[T]) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRepository[T]) FindOne(ctx context.Context, spec specification.Specification) (*T, error) {
	return m.entity(m.Called(ctx, spec))
}

func (m *MockRepository[T]) FindAllBy(ctx context.Context, spec specification.Specification, sort repository.Sort) ([]T, error) {
	return m.entities(m.Called(ctx, spec, sort))
}

func (m *MockRepository[T]) FindPageBy(ctx context.Context, spec specification.Specification, pq repository.PageQuery) (*repository.PageResult[T], error) {
	return m.page(m.Called(ctx, spec, pq))
}

func (m *MockRepository[T]) CountBy(ctx context.Context, spec specification.Specification) (int64, error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[T]) ExistsBy(ctx context.Context, spec specification.Specification) (bool, error) {
	args := m.Called(ctx, spec)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) DeleteBy(ctx context.Context, spec specification.Specification) (int64, error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(int64), args.Error(1)
}
