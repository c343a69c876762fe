package book

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/books", h.Create)
	r.GET("/books", h.List)
	r.GET("/books/:id", h.GetByID)
	r.DELETE("/books/:isbn", h.DeleteByISBN)
}

type createRequest struct {
	Title   string  `json:"title" binding:"required"`
	ISBN    string  `json:"isbn" binding:"required"`
	Price   float64 `json:"price"`
	PubDate string  `json:"pubDate"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	book := &domain.Book{
		Title:   req.Title,
		ISBN:    req.ISBN,
		Price:   req.Price,
		PubDate: req.PubDate,
	}
	if err := h.service.Create(c.Request.Context(), book); err != nil {
		if errors.Is(err, ErrDuplicateISBN) {
			response.Error(c, http.StatusUnprocessableEntity, "DUPLICATE_ENTRY", "Duplicate entry: a book with this isbn already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create book")
		return
	}

	response.Success(c, http.StatusOK, book)
}

func (h *Handler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list books")
		return
	}
	response.Success(c, http.StatusOK, books)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_ID", "Invalid book ID")
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to fetch book")
		return
	}
	response.Success(c, http.StatusOK, book)
}

func (h *Handler) DeleteByISBN(c *gin.Context) {
	isbn := c.Param("isbn")

	if err := h.service.DeleteByISBN(c.Request.Context(), isbn); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete book")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Book deleted"})
}
