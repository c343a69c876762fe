package author

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/response"
	"bookstore/internal/repository"
)

// Handler is the author service surface: create, isbn-keyed lookup, list,
// delete. No decision logic beyond validation and one repository call.
type Handler struct {
	authors *repository.AuthorRepository
}

func NewHandler(authors *repository.AuthorRepository) *Handler {
	return &Handler{authors: authors}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/authors", h.Create)
	r.GET("/authors", h.List)
	r.GET("/authors/isbn/:isbn", h.GetByISBN)
	r.DELETE("/authors/:id", h.DeleteByID)
}

type createRequest struct {
	ISBN       string `json:"isbn" binding:"required"`
	AuthorName string `json:"author_name" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	author := &domain.Author{ISBN: req.ISBN, AuthorName: req.AuthorName}
	if err := h.authors.Create(c.Request.Context(), author); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create author")
		return
	}
	response.Success(c, http.StatusOK, author)
}

func (h *Handler) List(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list authors")
		return
	}
	response.Success(c, http.StatusOK, authors)
}

func (h *Handler) GetByISBN(c *gin.Context) {
	author, err := h.authors.GetByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Author not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to fetch author")
		return
	}
	response.Success(c, http.StatusOK, author)
}

func (h *Handler) DeleteByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_ID", "Invalid author ID")
		return
	}

	if err := h.authors.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Author not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete author")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Author deleted"})
}
