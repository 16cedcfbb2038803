package postgres

import (
	"database/sql"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
)

var publisherTable = table[model.Publisher]{
	name:    "publisher",
	columns: []string{"name"},
	fields: specification.Fields{
		"id":   "id",
		"name": "name",
	},
	id: func(p *model.Publisher) int64 { return p.ID },
	values: func(p *model.Publisher) []any {
		return []any{p.Name}
	},
}

// PublisherPostgres is a PostgreSQL implementation of repository.PublisherRepository.
type PublisherPostgres struct {
	*crudRepository[model.Publisher]
}

// NewPublisherPostgres creates a new PublisherPostgres repository.
func NewPublisherPostgres(db *sql.DB) *PublisherPostgres {
	return &PublisherPostgres{newCrudRepository(db, publisherTable)}
}

var _ repository.PublisherRepository = (*PublisherPostgres)(nil)
