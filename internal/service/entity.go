package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
	"libraryapi/internal/validator"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

var (
	ErrNotFound     = errors.New("entity not found")
	ErrConflict     = errors.New("entity conflicts with an existing one")
	ErrIDNotAllowed = errors.New("a new entity cannot already have an id")
	ErrIDRequired   = errors.New("id is required")
	ErrIDMismatch   = errors.New("id in body does not match id in path")
	ErrInvalidPage  = errors.New("page is out of range")
)

// Patch is a partial update for T; Apply copies its set fields onto the entity.
type Patch[T any] interface {
	Apply(*T)
}

// ListResult is the service-level DTO for a page of entities.
type ListResult[T any] struct {
	Items []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// EntityService defines the use cases shared by every library entity.
type EntityService[T any, P Patch[T]] interface {
	// Create stores a new entity. The entity must not carry an id.
	Create(ctx context.Context, entity *T) (*T, error)

	// Update replaces the entity stored under id. The body id must equal id.
	Update(ctx context.Context, id int64, entity *T) (*T, error)

	// PartialUpdate applies patch to the stored entity and saves the result.
	PartialUpdate(ctx context.Context, id int64, patch P) (*T, error)

	// Get returns a single entity by its id.
	Get(ctx context.Context, id int64) (*T, error)

	// List returns one page of the entities matching spec; a nil spec matches all.
	List(ctx context.Context, spec specification.Specification, pq repository.PageQuery) (*ListResult[T], error)

	// Count returns how many entities match spec.
	Count(ctx context.Context, spec specification.Specification) (int64, error)

	// Delete removes the entity. Deleting a missing id succeeds.
	Delete(ctx context.Context, id int64) error
}

// normalizer is implemented by entities that tidy their fields before validation.
type normalizer interface {
	Normalize()
}

func normalize(entity any) {
	if n, ok := entity.(normalizer); ok {
		n.Normalize()
	}
}

// entityService is the concrete implementation of EntityService.
type entityService[T any, P Patch[T]] struct {
	name string
	repo repository.Repository[T]
	id   func(*T) int64
}

func newEntityService[T any, P Patch[T]](name string, repo repository.Repository[T], id func(*T) int64) *entityService[T, P] {
	return &entityService[T, P]{name: name, repo: repo, id: id}
}

func (s *entityService[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	if s.id(entity) != 0 {
		return nil, ErrIDNotAllowed
	}
	normalize(entity)
	if err := validator.Validate(entity); err != nil {
		return nil, err
	}
	stored, err := s.repo.Save(ctx, entity)
	if err != nil {
		return nil, s.translate(err, 0)
	}
	return stored, nil
}

func (s *entityService[T, P]) Update(ctx context.Context, id int64, entity *T) (*T, error) {
	bodyID := s.id(entity)
	if bodyID == 0 {
		return nil, ErrIDRequired
	}
	if bodyID != id {
		return nil, ErrIDMismatch
	}
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, s.notFound(id)
	}
	normalize(entity)
	if err := validator.Validate(entity); err != nil {
		return nil, err
	}
	stored, err := s.repo.Save(ctx, entity)
	if err != nil {
		return nil, s.translate(err, id)
	}
	return stored, nil
}

func (s *entityService[T, P]) PartialUpdate(ctx context.Context, id int64, patch P) (*T, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, id)
	}
	patch.Apply(current)
	normalize(current)
	if err := validator.Validate(current); err != nil {
		return nil, err
	}
	stored, err := s.repo.Save(ctx, current)
	if err != nil {
		return nil, s.translate(err, id)
	}
	return stored, nil
}

func (s *entityService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, id)
	}
	return e, nil
}

// List normalizes paging: size defaults to DefaultPageSize and is capped at MaxPageSize.
// A page whose offset does not fit in an int returns ErrInvalidPage.
func (s *entityService[T, P]) List(ctx context.Context, spec specification.Specification, pq repository.PageQuery) (*ListResult[T], error) {
	if pq.Size <= 0 {
		pq.Size = DefaultPageSize
	}
	if pq.Size > MaxPageSize {
		pq.Size = MaxPageSize
	}
	if pq.Page < 0 {
		pq.Page = 0
	}
	if pq.Page > math.MaxInt/pq.Size {
		return nil, ErrInvalidPage
	}

	res, err := s.repo.FindPageBy(ctx, spec, pq)
	if err != nil {
		return nil, err
	}
	return &ListResult[T]{Items: res.Items, Total: res.Total, Page: res.Page, Size: res.Size}, nil
}

func (s *entityService[T, P]) Count(ctx context.Context, spec specification.Specification) (int64, error) {
	return s.repo.CountBy(ctx, spec)
}

func (s *entityService[T, P]) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *entityService[T, P]) notFound(id int64) error {
	return fmt.Errorf("%s %d: %w", s.name, id, ErrNotFound)
}

func (s *entityService[T, P]) translate(err error, id int64) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return s.notFound(id)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
