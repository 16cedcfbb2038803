package postgres

import (
	"database/sql"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
)

var authorTable = table[model.Author]{
	name:    "author",
	columns: []string{"first_name", "last_name"},
	fields: specification.Fields{
		"id":        "id",
		"firstName": "first_name",
		"lastName":  "last_name",
	},
	id: func(a *model.Author) int64 { return a.ID },
	values: func(a *model.Author) []any {
		return []any{a.FirstName, a.LastName}
	},
}

// AuthorPostgres is a PostgreSQL implementation of repository.AuthorRepository.
type AuthorPostgres struct {
	*crudRepository[model.Author]
}

// NewAuthorPostgres creates a new AuthorPostgres repository.
func NewAuthorPostgres(db *sql.DB) *AuthorPostgres {
	return &AuthorPostgres{newCrudRepository(db, authorTable)}
}

var _ repository.AuthorRepository = (*AuthorPostgres)(nil)
