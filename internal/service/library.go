package service

import (
	"libraryapi/internal/model"
	"libraryapi/internal/repository"
)

type (
	AuthorService    = EntityService[model.Author, model.AuthorPatch]
	ClientService    = EntityService[model.Client, model.ClientPatch]
	PublisherService = EntityService[model.Publisher, model.PublisherPatch]
)

// NewAuthorService constructs the AuthorService.
func NewAuthorService(repo repository.AuthorRepository) AuthorService {
	return newEntityService[model.Author, model.AuthorPatch]("author", repo,
		func(a *model.Author) int64 { return a.ID })
}

// NewClientService constructs the ClientService.
func NewClientService(repo repository.ClientRepository) ClientService {
	return newEntityService[model.Client, model.ClientPatch]("client", repo,
		func(c *model.Client) int64 { return c.ID })
}

// NewPublisherService constructs the PublisherService.
func NewPublisherService(repo repository.PublisherRepository) PublisherService {
	return newEntityService[model.Publisher, model.PublisherPatch]("publisher", repo,
		func(p *model.Publisher) int64 { return p.ID })
}
