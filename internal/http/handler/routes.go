package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"libraryapi/internal/criteria"
	"libraryapi/internal/model"
	"libraryapi/internal/service"
)

var (
	authorFields = criteria.FieldSet{
		"id":        criteria.Int,
		"firstName": criteria.String,
		"lastName":  criteria.String,
	}
	clientFields = criteria.FieldSet{
		"id":        criteria.Int,
		"firstName": criteria.String,
		"lastName":  criteria.String,
		"email":     criteria.String,
		"address":   criteria.String,
		"phone":     criteria.String,
	}
	publisherFields = criteria.FieldSet{
		"id":   criteria.Int,
		"name": criteria.String,
	}
)

// Dependencies are the services and connections the routes are built from.
type Dependencies struct {
	DB *sql.DB
	// Cache is pinged by /health when set.
	Cache      Pinger
	Authors    service.AuthorService
	Clients    service.ClientService
	Publishers service.PublisherService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	var extra []Pinger
	if deps.Cache != nil {
		extra = append(extra, deps.Cache)
	}
	app.Get("/health", HealthCheck(deps.DB, extra...))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	Register(api, Resource[model.Author, model.AuthorPatch]{
		Name:   "author",
		Path:   "/authors",
		Fields: authorFields,
		ID:     func(a *model.Author) int64 { return a.ID },
		Svc:    deps.Authors,
	})
	Register(api, Resource[model.Client, model.ClientPatch]{
		Name:   "client",
		Path:   "/clients",
		Fields: clientFields,
		ID:     func(cl *model.Client) int64 { return cl.ID },
		Svc:    deps.Clients,
	})
	Register(api, Resource[model.Publisher, model.PublisherPatch]{
		Name:   "publisher",
		Path:   "/publishers",
		Fields: publisherFields,
		ID:     func(p *model.Publisher) int64 { return p.ID },
		Svc:    deps.Publishers,
	})
}
