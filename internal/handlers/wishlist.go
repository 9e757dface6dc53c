// internal/handlers/wishlist.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vedabooks/shop-backend/internal/i18n"
	"github.com/vedabooks/shop-backend/internal/services"
	"github.com/vedabooks/shop-backend/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
	catalogService  *services.CatalogService
}

func NewWishlistHandler(wishlistService *services.WishlistService, catalogService *services.CatalogService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		catalogService:  catalogService,
	}
}

// GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	items := h.wishlistService.Items(c.Request.Context(), sessionID)
	utils.SuccessResponse(c, gin.H{
		"items": items,
		"count": len(items),
	})
}

// POST /wishlist/:bookId/toggle
func (h *WishlistHandler) Toggle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	added, err := h.wishlistService.Toggle(c.Request.Context(), sessionID, c.Param("bookId"))
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBookNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	message := i18n.T(lang, i18n.KeyWishlistRemoved)
	if added {
		message = i18n.T(lang, i18n.KeyWishlistAdded)
	}
	utils.SuccessResponseWithMessage(c, gin.H{
		"in_wishlist": added,
		"count":       h.wishlistService.Count(c.Request.Context(), sessionID),
	}, message)
}

// PUT /wishlist/:bookId
func (h *WishlistHandler) Add(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	book, err := h.catalogService.GetBookByID(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBookNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.wishlistService.Add(c.Request.Context(), sessionID, book)
	utils.SuccessResponseWithMessage(c, gin.H{
		"count": h.wishlistService.Count(c.Request.Context(), sessionID),
	}, i18n.T(lang, i18n.KeyWishlistAdded))
}

// DELETE /wishlist/:bookId
func (h *WishlistHandler) Remove(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	h.wishlistService.Remove(c.Request.Context(), sessionID, c.Param("bookId"))
	utils.SuccessResponseWithMessage(c, gin.H{
		"count": h.wishlistService.Count(c.Request.Context(), sessionID),
	}, i18n.T(lang, i18n.KeyWishlistRemoved))
}

// DELETE /wishlist
func (h *WishlistHandler) Clear(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, "Missing session", nil)
		return
	}

	h.wishlistService.Clear(c.Request.Context(), sessionID)
	utils.SuccessResponseWithMessage(c, gin.H{"count": 0}, i18n.T(lang, i18n.KeyWishlistCleared))
}
