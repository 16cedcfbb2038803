package handler

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"libraryapi/internal/criteria"
	"libraryapi/internal/repository"
	"libraryapi/internal/service"
)

// Resource describes one entity exposed under /api.
type Resource[T any, P service.Patch[T]] struct {
	// Name is the singular entity name used in error messages, e.g. "author".
	Name string
	// Path is the collection path relative to the router, e.g. "/authors".
	Path   string
	Fields criteria.FieldSet
	ID     func(*T) int64
	Svc    service.EntityService[T, P]
}

// Register attaches the collection and item routes of res to r.
func Register[T any, P service.Patch[T]](r fiber.Router, res Resource[T, P]) {
	r.Get(res.Path, ListEntities(res))
	r.Get(res.Path+"/count", CountEntities(res))
	r.Get(res.Path+"/:id", GetEntity(res))
	r.Post(res.Path, CreateEntity(res))
	r.Put(res.Path+"/:id", UpdateEntity(res))
	r.Patch(res.Path+"/:id", PatchEntity(res))
	r.Delete(res.Path+"/:id", DeleteEntity(res))
}

// ListEntities serves one page of entities filtered by criteria parameters.
func ListEntities[T any, P service.Patch[T]](res Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := queryValues(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CRITERIA", "malformed query string")
		}

		page, err := intParam(q, "page", 0)
		if err != nil || page < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "page must be a non-negative integer")
		}
		size, err := intParam(q, "size", service.DefaultPageSize)
		if err != nil || size <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SIZE", "size must be a positive integer")
		}
		if page > math.MaxInt/min(size, service.MaxPageSize) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "page is out of range")
		}
		sort, err := criteria.ParseSort(q["sort"], res.Fields)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SORT", err.Error())
		}
		spec, err := criteria.Parse(q, res.Fields)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CRITERIA", err.Error())
		}

		out, err := res.Svc.List(c.UserContext(), spec, repository.PageQuery{Page: page, Size: size, Sort: sort})
		if err != nil {
			return writeServiceError(c, res.Name, err)
		}
		c.Set("X-Total-Count", strconv.FormatInt(out.Total, 10))
		return c.JSON(out)
	}
}

// CountEntities returns the number of entities matching the criteria parameters.
func CountEntities[T any, P service.Patch[T]](res Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := queryValues(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CRITERIA", "malformed query string")
		}
		spec, err := criteria.Parse(q, res.Fields)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CRITERIA", err.Error())
		}
		n, err := res.Svc.Count(c.UserContext(), spec)
		if err != nil {
			return writeServiceError(c, res.Name, err)
		}
		return c.JSON(n)
	}
}

func GetEntity[T any, P service.Patch[T]](res Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		e, err := res.Svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, res.Name, err)
		}
		return c.JSON(e)
	}
}

// CreateEntity stores a new entity and answers 201 with its Location.
func CreateEntity[T any, P service.Patch[T]](res Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		e, err := res.Svc.Create(c.UserContext(), &in)
		if err != nil {
			return writeServiceError(c, res.Name, err)
		}
		c.Location(strings.TrimSuffix(c.Path(), "/") + "/" + strconv.FormatInt(res.ID(e), 10))
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

func UpdateEntity[T any, P service.Patch[T]](res Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in T
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		e, err := res.Svc.Update(c.UserContext(), id, &in)
		if err != nil {
			return writeServiceError(c, res.Name, err)
		}
		return c.JSON(e)
	}
}

// PatchEntity applies the fields present in the body and leaves the rest untouched.
func PatchEntity[T any, P service.Patch[T]](res Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var patch P
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		e, err := res.Svc.PartialUpdate(c.UserContext(), id, patch)
		if err != nil {
			return writeServiceError(c, res.Name, err)
		}
		return c.JSON(e)
	}
}

// DeleteEntity answers 204 whether or not the entity existed.
func DeleteEntity[T any, P service.Patch[T]](res Resource[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := res.Svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, res.Name, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryValues keeps repeated parameters, which c.Queries would collapse.
func queryValues(c *fiber.Ctx) (url.Values, error) {
	return url.ParseQuery(string(c.Request().URI().QueryString()))
}

func intParam(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
