// internal/handlers/book.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vedabooks/shop-backend/internal/i18n"
	"github.com/vedabooks/shop-backend/internal/models"
	"github.com/vedabooks/shop-backend/internal/services"
	"github.com/vedabooks/shop-backend/internal/utils"
)

type BookHandler struct {
	catalogService *services.CatalogService
	defaultLimit   int
}

func NewBookHandler(catalogService *services.CatalogService, defaultLimit int) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
		defaultLimit:   defaultLimit,
	}
}

// GET /books
func (h *BookHandler) GetBooks(c *gin.Context) {
	params := utils.GetPaginationParams(c, h.defaultLimit)
	filters := parseFilters(c)

	result, err := h.catalogService.GetBooks(c.Request.Context(), filters, params.Page, params.Limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.PaginationResult{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		Data:       result.Data,
	})
}

// GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.catalogService.GetBookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBookNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, book)
}

// GET /books/:id/similar
func (h *BookHandler) GetSimilarBooks(c *gin.Context) {
	limit := queryInt(c, "limit", 4)

	books, err := h.catalogService.GetSimilarBooks(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBookNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, books)
}

// GET /books/popular
func (h *BookHandler) GetPopularBooks(c *gin.Context) {
	books, err := h.catalogService.GetPopularBooks(c.Request.Context(), queryInt(c, "limit", 8))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, books)
}

// GET /books/new
func (h *BookHandler) GetNewBooks(c *gin.Context) {
	books, err := h.catalogService.GetNewBooks(c.Request.Context(), queryInt(c, "limit", 8))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, books)
}

// GET /books/search
func (h *BookHandler) SearchBooks(c *gin.Context) {
	books, err := h.catalogService.SearchBooks(c.Request.Context(), c.Query("q"), queryInt(c, "limit", 20))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, books)
}

// GET /categories
func (h *BookHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.Categories())
}

func parseFilters(c *gin.Context) models.FilterState {
	filters := models.FilterState{
		Search:   c.Query("search"),
		Author:   c.Query("author"),
		Language: c.DefaultQuery("language", models.LanguageAll),
		SortBy:   models.SortOption(c.Query("sort")),
	}

	if categories := c.Query("categories"); categories != "" {
		for _, raw := range strings.Split(categories, ",") {
			cat := models.Category(strings.TrimSpace(raw))
			if models.ValidCategory(cat) {
				filters.Categories = append(filters.Categories, cat)
			}
		}
	}

	if v := c.Query("min_price"); v != "" {
		if price, err := strconv.Atoi(v); err == nil {
			filters.MinPrice = &price
		}
	}
	if v := c.Query("max_price"); v != "" {
		if price, err := strconv.Atoi(v); err == nil {
			filters.MaxPrice = &price
		}
	}
	if v := c.Query("min_rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinRating = rating
		}
	}
	if v := c.Query("in_stock"); v != "" {
		if inStock, err := strconv.ParseBool(v); err == nil {
			filters.InStockOnly = inStock
		}
	}

	return filters
}

func queryInt(c *gin.Context, name string, defaultValue int) int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
