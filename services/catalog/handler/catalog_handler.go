package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog "shelfshare/internal/catalogService"
	"shelfshare/internal/lenderrors"
	"shelfshare/internal/metadata"
	model "shelfshare/internal/models"
	"shelfshare/services/catalog/helpers"
	"shelfshare/utils"
)

//go:generate mockgen -source=catalog_handler.go -destination=mock_catalog_service.go -package=handler

type CatalogServiceInterface interface {
	ListBooks(query string) []model.Book
	GetBook(bookID string) (model.Book, error)
	CreateBook(input catalog.CreateBookInput) (model.Book, error)
	CompareCondition(bookID, currentImage string) (catalog.ComparisonResult, error)
	Recommendations() []model.Book
	ExtractMetadata(text string) metadata.Metadata
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListBooksHandler handles GET /books?q=
func (h *CatalogHandler) ListBooksHandler(c *gin.Context) {
	query := c.Query("q")
	books := h.service.ListBooks(query)

	utils.JSONResponse(c, http.StatusOK, books, "books retrieved successfully")
	utils.LogSuccess("ListBooksHandler", "books retrieved successfully", map[string]any{
		"query": query,
		"count": len(books),
	})
}

// GetBookHandler handles GET /books/:id
func (h *CatalogHandler) GetBookHandler(c *gin.Context) {
	bookID := c.Param("id")
	book, err := h.service.GetBook(bookID)
	if err != nil {
		if errors.Is(err, lenderrors.ErrBookNotFound) {
			c.Status(http.StatusNotFound)
			utils.Info("GetBookHandler: book not found", map[string]any{"book_id": bookID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBookHandler: error retrieving book", map[string]any{"book_id": bookID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, book, "book retrieved successfully")
	utils.LogSuccess("GetBookHandler", "book retrieved successfully", map[string]any{"book_id": bookID})
}

// CreateBookHandler handles POST /books
func (h *CatalogHandler) CreateBookHandler(c *gin.Context) {
	var req helpers.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateBookHandler", err)
		return
	}

	book, err := h.service.CreateBook(catalog.CreateBookInput{
		Title:          req.Title,
		Author:         req.Author,
		Edition:        req.Edition,
		Publisher:      req.Publisher,
		ISBN:           req.ISBN,
		Description:    req.Description,
		Images:         req.Images,
		DailyRate:      req.DailyRate,
		Deposit:        req.Deposit,
		Condition:      req.Condition,
		ConditionScore: req.ConditionScore,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateBookHandler: failed to create book", map[string]any{
			"handler": "CreateBookHandler",
			"title":   req.Title,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, book, "book created successfully")
	utils.LogSuccess("CreateBookHandler", "book created successfully", map[string]any{
		"book_id":  book.BookID,
		"owner_id": book.OwnerID,
		"title":    book.Title,
	})
}

// CompareConditionHandler handles POST /books/:id/compare
func (h *CatalogHandler) CompareConditionHandler(c *gin.Context) {
	bookID := c.Param("id")

	var req helpers.CompareConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CompareConditionHandler", err)
		return
	}

	result, err := h.service.CompareCondition(bookID, req.CurrentImage)
	if err != nil {
		if errors.Is(err, lenderrors.ErrBookNotFound) {
			c.Status(http.StatusNotFound)
			utils.Info("CompareConditionHandler: book not found", map[string]any{"book_id": bookID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CompareConditionHandler: comparison error", map[string]any{"book_id": bookID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "comparison completed")
	utils.LogSuccess("CompareConditionHandler", "comparison completed", map[string]any{
		"book_id":    bookID,
		"similarity": result.Similarity,
	})
}

// RecommendationsHandler handles GET /recommendations
func (h *CatalogHandler) RecommendationsHandler(c *gin.Context) {
	books := h.service.Recommendations()

	utils.JSONResponse(c, http.StatusOK, books, "recommendations retrieved successfully")
	utils.LogSuccess("RecommendationsHandler", "recommendations retrieved successfully", map[string]any{
		"count": len(books),
	})
}

// ExtractMetadataHandler handles POST /books/metadata
func (h *CatalogHandler) ExtractMetadataHandler(c *gin.Context) {
	var req helpers.ExtractMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "ExtractMetadataHandler", err)
		return
	}

	meta := h.service.ExtractMetadata(req.Text)

	utils.JSONResponse(c, http.StatusOK, meta, "metadata extracted")
	utils.LogSuccess("ExtractMetadataHandler", "metadata extracted", map[string]any{
		"has_title": meta.Title != "",
		"has_isbn":  meta.ISBN != "",
	})
}
