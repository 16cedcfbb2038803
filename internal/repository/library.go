package repository

import "libraryapi/internal/model"

// AuthorRepository persists model.Author rows.
type AuthorRepository interface {
	Repository[model.Author]
}

// ClientRepository persists model.Client rows.
type ClientRepository interface {
	Repository[model.Client]
}

// PublisherRepository persists model.Publisher rows.
type PublisherRepository interface {
	Repository[model.Publisher]
}
