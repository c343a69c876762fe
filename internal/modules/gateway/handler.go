package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/clients"
	"bookstore/internal/middleware"
	"bookstore/internal/pkg/permissions"
	"bookstore/internal/pkg/response"
)

// BookHandler is the book-facade surface. Every route sits behind bearer
// auth plus its own permission key.
type BookHandler struct {
	service *Service
}

func NewBookHandler(service *Service) *BookHandler {
	return &BookHandler{service: service}
}

// RegisterRoutes expects a group already wrapped with BearerAuth.
func (h *BookHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/books", middleware.RequirePermission(permissions.PostBook), h.CreateBook)
	protected.GET("/books", middleware.RequirePermission(permissions.ViewBook), h.ListBooks)
	protected.GET("/books/:id", middleware.RequirePermission(permissions.ViewBook), h.GetBook)
	protected.DELETE("/books/:id", middleware.RequirePermission(permissions.DeleteBook), h.DeleteBook)
}

func (h *BookHandler) CreateBook(c *gin.Context) {
	var req clients.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		response.Error(c, downstreamStatus(err), "CREATE_BOOK_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, book)
}

func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, downstreamStatus(err), "LIST_BOOKS_FAILED", fmt.Sprintf("failed to fetch books: %s", clients.As(err).Message))
		return
	}
	response.Success(c, http.StatusOK, books)
}

func (h *BookHandler) GetBook(c *gin.Context) {
	id := c.Param("id")

	details, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			response.Error(c, http.StatusNotFound, "BOOK_NOT_FOUND", fmt.Sprintf("Book with ID %s not found", id))
			return
		}
		response.Error(c, downstreamStatus(err), "GET_BOOK_FAILED", fmt.Sprintf("failed to fetch book with ID %s: %s", id, clients.As(err).Message))
		return
	}

	response.Success(c, http.StatusOK, details)
}

// DeleteBook answers 500 on any failure: by the time something breaks here
// the composite state is the interesting part, not the downstream code.
func (h *BookHandler) DeleteBook(c *gin.Context) {
	isbn := c.Param("id")

	confirmation, err := h.service.DeleteBook(c.Request.Context(), isbn, middleware.BearerFromContext(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_BOOK_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, MessageResponse{Message: confirmation})
}

// downstreamStatus maps a clients.Error to the status the facade reports:
// downstream answers keep their code, silence becomes a gateway timeout,
// anything else is internal.
func downstreamStatus(err error) int {
	switch ce := clients.As(err); ce.Kind {
	case clients.KindStatus:
		return ce.StatusCode
	case clients.KindNoResponse:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
