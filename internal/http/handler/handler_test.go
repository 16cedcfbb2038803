package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/http/middleware"
	"libraryapi/internal/model"
	"libraryapi/internal/repository"
	"libraryapi/internal/service"
	serviceMocks "libraryapi/internal/service/mocks"
	"libraryapi/internal/specification"
	"libraryapi/internal/validator"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func strPtr(s string) *string { return &s }

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newAuthorApp(svc *serviceMocks.MockAuthorService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	Register(app.Group("/api"), Resource[model.Author, model.AuthorPatch]{
		Name:   "author",
		Path:   "/authors",
		Fields: authorFields,
		ID:     func(a *model.Author) int64 { return a.ID },
		Svc:    svc,
	})
	return app
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	cacheErr := error(nil)
	app := fiber.New()
	app.Get("/health", HealthCheck(db, pingerFunc(func(context.Context) error { return cacheErr })))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("database down", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("cache down", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)
		cacheErr = errors.New("connection refused")
		defer func() { cacheErr = nil }()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListEntities(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthorService)
	app := newAuthorApp(mockSvc)

	t.Run("success with criteria, paging and sort", func(t *testing.T) {
		expectedRes := &service.ListResult[model.Author]{
			Items: []model.Author{{ID: 7, FirstName: "Iain", LastName: "Banks"}},
			Total: 11,
			Page:  1,
			Size:  5,
		}
		wantSpec := specification.And(specification.Contains("lastName", "ban"))
		wantPQ := repository.PageQuery{
			Page: 1,
			Size: 5,
			Sort: repository.Sort{{Field: "lastName", Direction: repository.Desc}},
		}
		mockSvc.On("List", mock.Anything, wantSpec, wantPQ).Return(expectedRes, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/authors?lastName.contains=ban&page=1&size=5&sort=lastName,desc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "11", resp.Header.Get("X-Total-Count"))

		var result service.ListResult[model.Author]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, int64(11), result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("defaults", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, nil, repository.PageQuery{Size: service.DefaultPageSize}).
			Return(&service.ListResult[model.Author]{Items: []model.Author{}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/authors", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "0", resp.Header.Get("X-Total-Count"))
		mockSvc.AssertExpectations(t)
	})

	badRequests := []struct {
		name  string
		query string
		code  string
	}{
		{name: "invalid page", query: "page=abc", code: "INVALID_PAGE"},
		{name: "negative page", query: "page=-1", code: "INVALID_PAGE"},
		{name: "page offset overflows", query: "page=461168601842738791", code: "INVALID_PAGE"},
		{name: "page offset overflows with capped size", query: "page=4611686018427388&size=5000", code: "INVALID_PAGE"},
		{name: "invalid size", query: "size=0", code: "INVALID_SIZE"},
		{name: "unknown sort field", query: "sort=password", code: "INVALID_SORT"},
		{name: "unknown criteria field", query: "password.equals=x", code: "INVALID_CRITERIA"},
		{name: "bad criteria value", query: "id.greaterThan=ten", code: "INVALID_CRITERIA"},
	}
	for _, tt := range badRequests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/authors?"+tt.query, nil)
			resp, _ := app.Test(req)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotEmpty(t, body.RequestID)
		})
	}

	t.Run("largest page that fits is passed on", func(t *testing.T) {
		wantPQ := repository.PageQuery{Page: 461168601842738790, Size: service.DefaultPageSize}
		mockSvc.On("List", mock.Anything, nil, wantPQ).
			Return(&service.ListResult[model.Author]{Items: []model.Author{}, Total: 3}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/authors?page=461168601842738790", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service rejects page", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, nil, mock.Anything).Return(nil, service.ErrInvalidPage).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/authors?page=3", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PAGE", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, nil, mock.Anything).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/authors", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestCountEntities(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthorService)
	app := newAuthorApp(mockSvc)

	mockSvc.On("Count", mock.Anything, specification.And(specification.In("id", int64(1), int64(2)))).
		Return(int64(2), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/authors/count?id.in=1,2", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var n int64
	json.NewDecoder(resp.Body).Decode(&n)
	assert.Equal(t, int64(2), n)
	mockSvc.AssertExpectations(t)
}

func TestGetEntity(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthorService)
	app := newAuthorApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		expected := &model.Author{ID: 3, FirstName: "Ursula", LastName: "Le Guin"}
		mockSvc.On("Get", mock.Anything, int64(3)).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/authors/3", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Author
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, *expected, result)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(4)).Return(nil, fmt.Errorf("author 4: %w", service.ErrNotFound)).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/authors/4", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "author not found", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})

	for _, id := range []string{"abc", "0", "-5"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/authors/"+id, nil)
			resp, _ := app.Test(req)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
		})
	}

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(9)).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/authors/9", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateEntity(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthorService)
	app := newAuthorApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		in := &model.Author{FirstName: "Iain", LastName: "Banks"}
		mockSvc.On("Create", mock.Anything, in).
			Return(&model.Author{ID: 12, FirstName: "Iain", LastName: "Banks"}, nil).Once()

		req := jsonRequest(http.MethodPost, "/api/authors", `{"firstName":"Iain","lastName":"Banks"}`)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/api/authors/12", resp.Header.Get("Location"))

		var result model.Author
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(12), result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/authors", `{"firstName":`)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("id not allowed", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrIDNotAllowed).Once()

		req := jsonRequest(http.MethodPost, "/api/authors", `{"id":3,"firstName":"A","lastName":"B"}`)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("validation error carries details", func(t *testing.T) {
		verrs := validator.ValidationErrors{{Field: "lastName", Message: "is required"}}
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, verrs).Once()

		req := jsonRequest(http.MethodPost, "/api/authors", `{"firstName":"A"}`)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, []validator.ValidationError(verrs), body.Error.Details)
	})

	t.Run("conflict", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: insert author", service.ErrConflict)).Once()

		req := jsonRequest(http.MethodPost, "/api/authors", `{"firstName":"A","lastName":"B"}`)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", decodeError(t, resp).Error.Code)
	})
}

func TestUpdateEntity(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthorService)
	app := newAuthorApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		in := &model.Author{ID: 2, FirstName: "A", LastName: "B"}
		mockSvc.On("Update", mock.Anything, int64(2), in).Return(in, nil).Once()

		req := jsonRequest(http.MethodPut, "/api/authors/2", `{"id":2,"firstName":"A","lastName":"B"}`)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "id required", err: service.ErrIDRequired, status: http.StatusBadRequest, code: "ID_REQUIRED"},
		{name: "id mismatch", err: service.ErrIDMismatch, status: http.StatusBadRequest, code: "ID_MISMATCH"},
		{name: "not found", err: fmt.Errorf("author 2: %w", service.ErrNotFound), status: http.StatusNotFound, code: "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.On("Update", mock.Anything, int64(2), mock.Anything).Return(nil, tt.err).Once()

			req := jsonRequest(http.MethodPut, "/api/authors/2", `{"firstName":"A","lastName":"B"}`)
			resp, _ := app.Test(req)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, resp).Error.Code)
		})
	}
}

func TestPatchEntity(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthorService)
	app := newAuthorApp(mockSvc)

	patch := model.AuthorPatch{LastName: strPtr("Le Guin")}
	mockSvc.On("PartialUpdate", mock.Anything, int64(5), patch).
		Return(&model.Author{ID: 5, FirstName: "Ursula", LastName: "Le Guin"}, nil).Once()

	req := jsonRequest(http.MethodPatch, "/api/authors/5", `{"lastName":"Le Guin"}`)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result model.Author
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Ursula", result.FirstName)
	mockSvc.AssertExpectations(t)
}

func TestDeleteEntity(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthorService)
	app := newAuthorApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(8)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/authors/8", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(8)).Return(errors.New("delete error")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/authors/8", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	clients := new(serviceMocks.MockClientService)
	publishers := new(serviceMocks.MockPublisherService)
	RegisterRoutes(app, Dependencies{
		Authors:    new(serviceMocks.MockAuthorService),
		Clients:    clients,
		Publishers: publishers,
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("clients are wired", func(t *testing.T) {
		email := "ada@example.com"
		clients.On("Get", mock.Anything, int64(1)).
			Return(&model.Client{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: &email}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/clients/1", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		clients.AssertExpectations(t)
	})

	t.Run("publisher criteria use publisher fields", func(t *testing.T) {
		publishers.On("Count", mock.Anything, specification.And(specification.Equal("name", "Tor"))).
			Return(int64(1), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/publishers/count?name.equals=Tor", nil)
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		req = httptest.NewRequest(http.MethodGet, "/api/publishers/count?lastName.equals=Tor", nil)
		resp, _ = app.Test(req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		publishers.AssertExpectations(t)
	})
}
