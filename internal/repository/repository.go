// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, cached) inside this directory.
package repository

import (
	"context"
	"errors"

	"libraryapi/internal/specification"
)

var (
	// ErrNotFound is returned when no row matches an id or a specification.
	ErrNotFound = errors.New("entity not found")
	// ErrNotUnique is returned by FindOne when more than one row matches.
	ErrNotUnique = errors.New("more than one entity matches")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("entity conflicts with an existing row")
)

// CrudRepository is the generic persistence contract for an entity keyed by an int64 id.
// Strictly persistence operations, no business logic.
type CrudRepository[T any] interface {
	// Save inserts the entity when its id is zero and updates the row with that id otherwise.
	// It returns the stored row, including the id assigned by the database.
	Save(ctx context.Context, entity *T) (*T, error)

	// SaveAll saves every entity in a single transaction.
	SaveAll(ctx context.Context, entities []T) ([]T, error)

	// FindByID returns ErrNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*T, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindAll returns every row in the given order.
	FindAll(ctx context.Context, sort Sort) ([]T, error)

	// FindAllByID returns the rows for ids that exist; missing ids are skipped.
	FindAllByID(ctx context.Context, ids []int64) ([]T, error)

	// FindPage returns one page of rows and the total row count.
	FindPage(ctx context.Context, pq PageQuery) (*PageResult[T], error)

	Count(ctx context.Context) (int64, error)

	// DeleteByID removes a row. It returns nil if the row was deleted or did not exist.
	DeleteByID(ctx context.Context, id int64) error

	DeleteAllByID(ctx context.Context, ids []int64) error

	DeleteAll(ctx context.Context) error
}

// SpecificationExecutor runs queries filtered by a specification.Specification.
// A nil specification matches every row.
type SpecificationExecutor[T any] interface {
	// FindOne returns ErrNotFound for no match and ErrNotUnique for several.
	FindOne(ctx context.Context, spec specification.Specification) (*T, error)

	FindAllBy(ctx context.Context, spec specification.Specification, sort Sort) ([]T, error)

	FindPageBy(ctx context.Context, spec specification.Specification, pq PageQuery) (*PageResult[T], error)

	CountBy(ctx context.Context, spec specification.Specification) (int64, error)

	ExistsBy(ctx context.Context, spec specification.Specification) (bool, error)

	// DeleteBy removes every matching row and reports how many were removed.
	DeleteBy(ctx context.Context, spec specification.Specification) (int64, error)
}

// Repository combines CRUD access with specification queries.
type Repository[T any] interface {
	CrudRepository[T]
	SpecificationExecutor[T]
}
