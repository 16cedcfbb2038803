package cached

import (
	"libraryapi/internal/cache"
	"libraryapi/internal/model"
	"libraryapi/internal/repository"
)

// NewAuthorRepository caches author reads under "<prefix>:author:<id>".
func NewAuthorRepository(next repository.AuthorRepository, c cache.Cache, opts Options) repository.AuthorRepository {
	return New[model.Author](next, c, "author", func(a *model.Author) int64 { return a.ID }, opts)
}

// NewClientRepository caches client reads under "<prefix>:client:<id>".
func NewClientRepository(next repository.ClientRepository, c cache.Cache, opts Options) repository.ClientRepository {
	return New[model.Client](next, c, "client", func(cl *model.Client) int64 { return cl.ID }, opts)
}

// NewPublisherRepository caches publisher reads under "<prefix>:publisher:<id>".
func NewPublisherRepository(next repository.PublisherRepository, c cache.Cache, opts Options) repository.PublisherRepository {
	return New[model.Publisher](next, c, "publisher", func(p *model.Publisher) int64 { return p.ID }, opts)
}
