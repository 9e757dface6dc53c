// internal/handlers/review.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vedabooks/shop-backend/internal/i18n"
	"github.com/vedabooks/shop-backend/internal/models"
	"github.com/vedabooks/shop-backend/internal/services"
	"github.com/vedabooks/shop-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService  *services.ReviewService
	catalogService *services.CatalogService
}

func NewReviewHandler(reviewService *services.ReviewService, catalogService *services.CatalogService) *ReviewHandler {
	return &ReviewHandler{
		reviewService:  reviewService,
		catalogService: catalogService,
	}
}

// GET /books/:id/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	if _, err := h.catalogService.GetBookByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBookNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	sortBy := models.ReviewSort(c.DefaultQuery("sort", string(models.ReviewSortNewest)))
	utils.SuccessResponse(c, h.reviewService.GetReviewsForBook(c.Param("id"), sortBy))
}

// POST /books/:id/reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if _, err := h.catalogService.GetBookByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBookNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	var req services.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationFailed), err.Error())
		return
	}
	req.BookID = c.Param("id")

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.AddReview(c.Request.Context(), &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, review, i18n.T(lang, i18n.KeyReviewAdded))
}

// POST /books/:id/reviews/:reviewId/helpful
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	// Unknown review ids are a benign no-op, so this always succeeds.
	h.reviewService.MarkHelpful(c.Request.Context(), c.Param("id"), c.Param("reviewId"))
	utils.SuccessResponseWithMessage(c, nil, i18n.T(lang, i18n.KeyReviewHelpful))
}
