package book

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/database"
	"bookstore/internal/domain"
	"bookstore/internal/repository"
)

func setupBookRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.ConnectAndMigrate("file::memory:?cache=shared", &domain.Book{})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Exec("DELETE FROM books")
	})

	handler := NewHandler(NewService(repository.NewBookRepository(db)))
	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))
	return router
}

func createBook(t *testing.T, router *gin.Engine, title, isbn string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"title":   title,
		"isbn":    isbn,
		"price":   9.99,
		"pubDate": "2020-01-01",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateAndGet(t *testing.T) {
	router := setupBookRouter(t)

	w := createBook(t, router, "Dune", "978-0441172719")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool        `json:"success"`
		Data    domain.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotZero(t, body.Data.ID)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/books/%d", body.Data.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
}

func TestHandler_DuplicateISBNIs422(t *testing.T) {
	router := setupBookRouter(t)

	first := createBook(t, router, "Dune", "97")
	require.Equal(t, http.StatusOK, first.Code)

	second := createBook(t, router, "Dune Reissue", "97")
	assert.Equal(t, http.StatusUnprocessableEntity, second.Code)
	assert.Contains(t, second.Body.String(), "Duplicate entry: a book with this isbn already exists")
}

func TestHandler_GetUnknownID(t *testing.T) {
	router := setupBookRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/books/424242", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetMalformedID(t *testing.T) {
	router := setupBookRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/books/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_DeleteByISBN(t *testing.T) {
	router := setupBookRouter(t)

	w := createBook(t, router, "Neuromancer", "978-0441569595")
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/books/978-0441569595", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting the same ISBN again answers 404.
	req = httptest.NewRequest(http.MethodDelete, "/books/978-0441569595", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBooks(t *testing.T) {
	router := setupBookRouter(t)

	require.Equal(t, http.StatusOK, createBook(t, router, "Dune", "isbn-list-1").Code)
	require.Equal(t, http.StatusOK, createBook(t, router, "Neuromancer", "isbn-list-2").Code)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool          `json:"success"`
		Data    []domain.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}
