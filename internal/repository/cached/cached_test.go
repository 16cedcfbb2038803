package cached

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	cacheMocks "libraryapi/internal/cache/mocks"
	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	repoMocks "libraryapi/internal/repository/mocks"
	"libraryapi/internal/specification"
)

const ttl = 10 * time.Minute

func newAuthors(t *testing.T) (repository.AuthorRepository, *repoMocks.MockAuthorRepository, *cacheMocks.MockCache, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	next := new(repoMocks.MockAuthorRepository)
	c := new(cacheMocks.MockCache)
	repo := NewAuthorRepository(next, c, Options{Prefix: "library", TTL: ttl, Logger: zap.New(core)})
	return repo, next, c, logs
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	author := &model.Author{ID: 42, FirstName: "Iain", LastName: "Banks"}
	encoded, err := json.Marshal(author)
	require.NoError(t, err)

	t.Run("hit skips the store", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		c.On("Get", ctx, "library:author:42").Return(encoded, true, nil).Once()

		got, err := repo.FindByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, author, got)
		next.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		c.AssertExpectations(t)
	})

	t.Run("miss reads through and fills the cache", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		c.On("Get", ctx, "library:author:42").Return(nil, false, nil).Once()
		next.On("FindByID", ctx, int64(42)).Return(author, nil).Once()
		c.On("Set", ctx, "library:author:42", encoded, ttl).Return(nil).Once()

		got, err := repo.FindByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, author, got)
		next.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("not found is not cached", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		c.On("Get", ctx, "library:author:7").Return(nil, false, nil).Once()
		next.On("FindByID", ctx, int64(7)).Return(nil, repository.ErrNotFound).Once()

		_, err := repo.FindByID(ctx, 7)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache outage falls back to the store", func(t *testing.T) {
		repo, next, c, logs := newAuthors(t)
		c.On("Get", ctx, "library:author:42").Return(nil, false, errors.New("connection refused")).Once()
		next.On("FindByID", ctx, int64(42)).Return(author, nil).Once()
		c.On("Set", ctx, "library:author:42", encoded, ttl).Return(errors.New("connection refused")).Once()

		got, err := repo.FindByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, author, got)
		assert.Equal(t, 1, logs.FilterMessage("cache get failed").Len())
		assert.Equal(t, 1, logs.FilterMessage("cache set failed").Len())
	})

	t.Run("corrupt entry is refetched", func(t *testing.T) {
		repo, next, c, logs := newAuthors(t)
		c.On("Get", ctx, "library:author:42").Return([]byte("{not json"), true, nil).Once()
		next.On("FindByID", ctx, int64(42)).Return(author, nil).Once()
		c.On("Set", ctx, "library:author:42", encoded, ttl).Return(nil).Once()

		got, err := repo.FindByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, author, got)
		assert.Equal(t, 1, logs.FilterMessage("cache entry undecodable").Len())
	})
}

func TestRepository_WritesEvict(t *testing.T) {
	ctx := context.Background()

	t.Run("save evicts the stored id", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		in := &model.Author{ID: 3, FirstName: "A", LastName: "B"}
		next.On("Save", ctx, in).Return(in, nil).Once()
		c.On("Delete", ctx, []string{"library:author:3"}).Return(nil).Once()

		got, err := repo.Save(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, in, got)
		c.AssertExpectations(t)
	})

	t.Run("failed save leaves the cache alone", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		in := &model.Author{ID: 3}
		next.On("Save", ctx, in).Return(nil, errors.New("db down")).Once()

		_, err := repo.Save(ctx, in)

		assert.Error(t, err)
		c.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("save all evicts every stored id", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		in := []model.Author{{FirstName: "A"}, {ID: 9, FirstName: "B"}}
		out := []model.Author{{ID: 8, FirstName: "A"}, {ID: 9, FirstName: "B"}}
		next.On("SaveAll", ctx, in).Return(out, nil).Once()
		c.On("Delete", ctx, []string{"library:author:8", "library:author:9"}).Return(nil).Once()

		got, err := repo.SaveAll(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, out, got)
		c.AssertExpectations(t)
	})

	t.Run("delete by id", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		next.On("DeleteByID", ctx, int64(5)).Return(nil).Once()
		c.On("Delete", ctx, []string{"library:author:5"}).Return(nil).Once()

		require.NoError(t, repo.DeleteByID(ctx, 5))
		c.AssertExpectations(t)
	})

	t.Run("delete all by id", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		next.On("DeleteAllByID", ctx, []int64{1, 2}).Return(nil).Once()
		c.On("Delete", ctx, []string{"library:author:1", "library:author:2"}).Return(nil).Once()

		require.NoError(t, repo.DeleteAllByID(ctx, []int64{1, 2}))
		c.AssertExpectations(t)
	})

	t.Run("delete all clears the prefix", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		next.On("DeleteAll", ctx).Return(nil).Once()
		c.On("DeletePrefix", ctx, "library:author:").Return(nil).Once()

		require.NoError(t, repo.DeleteAll(ctx))
		c.AssertExpectations(t)
	})

	t.Run("delete by spec clears the prefix only when rows went away", func(t *testing.T) {
		repo, next, c, _ := newAuthors(t)
		spec := specification.IsNull("lastName")
		next.On("DeleteBy", ctx, spec).Return(int64(0), nil).Once()

		n, err := repo.DeleteBy(ctx, spec)

		require.NoError(t, err)
		assert.Zero(t, n)
		c.AssertNotCalled(t, "DeletePrefix", mock.Anything, mock.Anything)

		next.On("DeleteBy", ctx, spec).Return(int64(2), nil).Once()
		c.On("DeletePrefix", ctx, "library:author:").Return(nil).Once()

		n, err = repo.DeleteBy(ctx, spec)

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		c.AssertExpectations(t)
	})

	t.Run("evict failure is logged, not returned", func(t *testing.T) {
		repo, next, c, logs := newAuthors(t)
		next.On("DeleteByID", ctx, int64(5)).Return(nil).Once()
		c.On("Delete", ctx, []string{"library:author:5"}).Return(errors.New("timeout")).Once()

		assert.NoError(t, repo.DeleteByID(ctx, 5))
		assert.Equal(t, 1, logs.FilterMessage("cache evict failed").Len())
	})
}

func TestRepository_QueriesPassThrough(t *testing.T) {
	ctx := context.Background()
	repo, next, c, _ := newAuthors(t)
	spec := specification.Contains("lastName", "banks")
	pq := repository.PageQuery{Page: 0, Size: 20}
	page := &repository.PageResult[model.Author]{Items: []model.Author{{ID: 1}}, Total: 1, Size: 20}

	next.On("FindPageBy", ctx, spec, pq).Return(page, nil).Once()
	next.On("CountBy", ctx, spec).Return(int64(1), nil).Once()
	next.On("ExistsByID", ctx, int64(1)).Return(true, nil).Once()

	gotPage, err := repo.FindPageBy(ctx, spec, pq)
	require.NoError(t, err)
	assert.Equal(t, page, gotPage)

	n, err := repo.CountBy(ctx, spec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := repo.ExistsByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	next.AssertExpectations(t)
	c.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestNew_KeyWithoutPrefix(t *testing.T) {
	r := New[model.Publisher](nil, nil, "publisher", func(p *model.Publisher) int64 { return p.ID }, Options{})

	assert.Equal(t, "publisher:12", r.key(12))
}
