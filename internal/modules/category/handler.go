package category

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

// Handler is the category service surface, the mirror image of the author
// service with genre instead of author_name.
type Handler struct {
	categories *repository.CategoryRepository
}

func NewHandler(categories *repository.CategoryRepository) *Handler {
	return &Handler{categories: categories}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/categories", h.Create)
	r.GET("/categories", h.List)
	r.GET("/categories/isbn/:isbn", h.GetByISBN)
	r.DELETE("/categories/:id", h.DeleteByID)
}

type createRequest struct {
	ISBN  string `json:"isbn" binding:"required"`
	Genre string `json:"genre" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	category := &domain.Category{ISBN: req.ISBN, Genre: req.Genre}
	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create category")
		return
	}
	response.Success(c, http.StatusOK, category)
}

func (h *Handler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) GetByISBN(c *gin.Context) {
	category, err := h.categories.GetByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to fetch category")
		return
	}
	response.Success(c, http.StatusOK, category)
}

func (h *Handler) DeleteByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_ID", "Invalid category ID")
		return
	}

	if err := h.categories.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete category")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Category deleted"})
}
