// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vedabooks/shop-backend/internal/i18n"
	"github.com/vedabooks/shop-backend/internal/services"
	"github.com/vedabooks/shop-backend/internal/utils"
)

type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
	}
}

type addCartItemRequest struct {
	BookID string `json:"book_id" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	utils.SuccessResponse(c, h.cartService.Summary(c.Request.Context(), sessionID))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationFailed), err.Error())
		return
	}

	book, err := h.catalogService.GetBookByID(c.Request.Context(), req.BookID)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBookNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	summary := h.cartService.AddItem(c.Request.Context(), sessionID, book)
	utils.SuccessResponseWithMessage(c, summary, i18n.T(lang, i18n.KeyCartItemAdded, book.Title))
}

// PUT /cart/items/:bookId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationFailed), err.Error())
		return
	}

	summary := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, c.Param("bookId"), req.Quantity)

	message := i18n.T(lang, i18n.KeyCartItemUpdated)
	if req.Quantity <= 0 {
		message = i18n.T(lang, i18n.KeyCartItemRemoved)
	}
	utils.SuccessResponseWithMessage(c, summary, message)
}

// DELETE /cart/items/:bookId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	summary := h.cartService.RemoveItem(c.Request.Context(), sessionID, c.Param("bookId"))
	utils.SuccessResponseWithMessage(c, summary, i18n.T(lang, i18n.KeyCartItemRemoved))
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	summary := h.cartService.Clear(c.Request.Context(), sessionID)
	utils.SuccessResponseWithMessage(c, summary, i18n.T(lang, i18n.KeyCartCleared))
}
