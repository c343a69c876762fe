package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/pkg/log"
)

func testLogger() log.Logger {
	return log.New("test", "clients")
}

func TestClient_UnwrapsEnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"id":1,"title":"Dune","isbn":"978-0441172719","price":12,"pubDate":"1965-08-01"}}`))
	}))
	defer server.Close()

	client := NewBookClient(server.URL, 2*time.Second, testLogger())

	book, err := client.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "978-0441172719", book.ISBN)
}

func TestClient_AcceptsBareBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":2,"title":"Neuromancer","isbn":"978-0441569595"}`))
	}))
	defer server.Close()

	client := NewBookClient(server.URL, 2*time.Second, testLogger())

	book, err := client.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Neuromancer", book.Title)
}

func TestClient_StatusErrorCarriesEnvelopeMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"error":{"code":"DUPLICATE_ENTRY","message":"Duplicate entry: a book with this isbn already exists"}}`))
	}))
	defer server.Close()

	client := NewBookClient(server.URL, 2*time.Second, testLogger())

	_, err := client.Create(context.Background(), CreateBookRequest{
		Title: "Dune", ISBN: "97", AuthorName: "Frank Herbert", Genre: "Science Fiction",
	})
	require.Error(t, err)

	ce := As(err)
	assert.Equal(t, KindStatus, ce.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, ce.StatusCode)
	assert.Equal(t, "Duplicate entry: a book with this isbn already exists", ce.Message)
	assert.True(t, IsStatus(err, http.StatusUnprocessableEntity))
}

func TestClient_StatusErrorWithoutEnvelopeFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewBookClient(server.URL, 2*time.Second, testLogger())

	_, err := client.GetByID(context.Background(), "999")
	require.Error(t, err)

	ce := As(err)
	assert.Equal(t, KindStatus, ce.Kind)
	assert.Equal(t, http.StatusNotFound, ce.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusNotFound), ce.Message)
}

func TestClient_ClosedServerIsNoResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewBookClient(server.URL, time.Second, testLogger())

	_, err := client.GetByID(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, KindNoResponse, As(err).Kind)
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_ForwardsBearerOnDelete(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"success":true,"data":{"message":"Book deleted"}}`))
	}))
	defer server.Close()

	client := NewBookClient(server.URL, 2*time.Second, testLogger())

	err := client.DeleteByISBN(context.Background(), "978-0441172719", "Bearer caller-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer caller-token", gotAuth)
}

func TestClient_MalformedPayloadIsInternal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":"not-an-object"}`))
	}))
	defer server.Close()

	client := NewBookClient(server.URL, 2*time.Second, testLogger())

	_, err := client.GetByID(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, KindInternal, As(err).Kind)
}

func TestErrorAs_WrapsForeignErrors(t *testing.T) {
	ce := As(context.DeadlineExceeded)
	assert.Equal(t, KindInternal, ce.Kind)
	assert.Contains(t, ce.Message, "deadline")
}
