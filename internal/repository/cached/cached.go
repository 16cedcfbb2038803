// Package cached decorates repositories with a read-through entity cache.
//
// Only FindByID is served from the cache. Every write evicts the keys it may
// have made stale, and bulk deletes evict the entity's whole key prefix.
// Cache failures are logged and never fail the underlying operation.
package cached

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"libraryapi/internal/cache"
	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
)

// Options configures a cached repository.
type Options struct {
	// Prefix namespaces keys, e.g. "library" gives "library:author:42".
	Prefix string
	TTL    time.Duration
	Logger *zap.Logger
}

// Repository wraps a repository.Repository[T] with a cache in front of FindByID.
type Repository[T any] struct {
	next   repository.Repository[T]
	cache  cache.Cache
	id     func(*T) int64
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

var _ repository.Repository[struct{}] = (*Repository[struct{}])(nil)

// New wraps next. entity names the key namespace and id extracts an entity's id.
func New[T any](next repository.Repository[T], c cache.Cache, entity string, id func(*T) int64, opts Options) *Repository[T] {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	prefix := entity
	if opts.Prefix != "" {
		prefix = opts.Prefix + ":" + entity
	}
	return &Repository[T]{
		next:   next,
		cache:  c,
		id:     id,
		prefix: prefix + ":",
		ttl:    opts.TTL,
		log:    log.With(zap.String("component", "cache"), zap.String("entity", entity)),
	}
}

func (r *Repository[T]) key(id int64) string {
	return r.prefix + strconv.FormatInt(id, 10)
}

func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	key := r.key(id)

	b, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var e T
		decErr := json.Unmarshal(b, &e)
		if decErr == nil {
			return &e, nil
		}
		r.log.Warn("cache entry undecodable", zap.String("key", key), zap.Error(decErr))
	}

	e, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(e); err != nil {
		r.log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
	} else if err := r.cache.Set(ctx, key, b, r.ttl); err != nil {
		r.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return e, nil
}

func (r *Repository[T]) Save(ctx context.Context, entity *T) (*T, error) {
	stored, err := r.next.Save(ctx, entity)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, r.id(stored))
	return stored, nil
}

func (r *Repository[T]) SaveAll(ctx context.Context, entities []T) ([]T, error) {
	stored, err := r.next.SaveAll(ctx, entities)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(stored))
	for i := range stored {
		ids[i] = r.id(&stored[i])
	}
	r.evict(ctx, ids...)
	return stored, nil
}

func (r *Repository[T]) DeleteByID(ctx context.Context, id int64) error {
	if err := r.next.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *Repository[T]) DeleteAllByID(ctx context.Context, ids []int64) error {
	if err := r.next.DeleteAllByID(ctx, ids); err != nil {
		return err
	}
	r.evict(ctx, ids...)
	return nil
}

func (r *Repository[T]) DeleteAll(ctx context.Context) error {
	if err := r.next.DeleteAll(ctx); err != nil {
		return err
	}
	r.evictAll(ctx)
	return nil
}

func (r *Repository[T]) DeleteBy(ctx context.Context, spec specification.Specification) (int64, error) {
	n, err := r.next.DeleteBy(ctx, spec)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.evictAll(ctx)
	}
	return n, nil
}

func (r *Repository[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.next.ExistsByID(ctx, id)
}

func (r *Repository[T]) FindAll(ctx context.Context, sort repository.Sort) ([]T, error) {
	return r.next.FindAll(ctx, sort)
}

func (r *Repository[T]) FindAllByID(ctx context.Context, ids []int64) ([]T, error) {
	return r.next.FindAllByID(ctx, ids)
}

func (r *Repository[T]) FindPage(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[T], error) {
	return r.next.FindPage(ctx, pq)
}

func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *Repository[T]) FindOne(ctx context.Context, spec specification.Specification) (*T, error) {
	return r.next.FindOne(ctx, spec)
}

func (r *Repository[T]) FindAllBy(ctx context.Context, spec specification.Specification, sort repository.Sort) ([]T, error) {
	return r.next.FindAllBy(ctx, spec, sort)
}

func (r *Repository[T]) FindPageBy(ctx context.Context, spec specification.Specification, pq repository.PageQuery) (*repository.PageResult[T], error) {
	return r.next.FindPageBy(ctx, spec, pq)
}

func (r *Repository[T]) CountBy(ctx context.Context, spec specification.Specification) (int64, error) {
	return r.next.CountBy(ctx, spec)
}

func (r *Repository[T]) ExistsBy(ctx context.Context, spec specification.Specification) (bool, error) {
	return r.next.ExistsBy(ctx, spec)
}

func (r *Repository[T]) evict(ctx context.Context, ids ...int64) {
	if len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.log.Warn("cache evict failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (r *Repository[T]) evictAll(ctx context.Context) {
	if err := r.cache.DeletePrefix(ctx, r.prefix); err != nil {
		r.log.Warn("cache clear failed", zap.String("prefix", r.prefix), zap.Error(err))
	}
}
