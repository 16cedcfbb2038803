package postgres

import (
	"database/sql"

	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
)

var clientTable = table[model.Client]{
	name:    "client",
	columns: []string{"first_name", "last_name", "email", "address", "phone"},
	fields: specification.Fields{
		"id":        "id",
		"firstName": "first_name",
		"lastName":  "last_name",
		"email":     "email",
		"address":   "address",
		"phone":     "phone",
	},
	id: func(c *model.Client) int64 { return c.ID },
	values: func(c *model.Client) []any {
		return []any{c.FirstName, c.LastName, nullable(c.Email), nullable(c.Address), nullable(c.Phone)}
	},
}

// ClientPostgres is a PostgreSQL implementation of repository.ClientRepository.
type ClientPostgres struct {
	*crudRepository[model.Client]
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{newCrudRepository(db, clientTable)}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

// nullable stores absent and empty optional strings as NULL so unique
// constraints only apply to real values.
func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
