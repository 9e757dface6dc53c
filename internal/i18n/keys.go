// internal/i18n/keys.go
package i18n

// Message keys
const (
	KeyCartItemAdded    = "cart.item_added"
	KeyCartItemRemoved  = "cart.item_removed"
	KeyCartItemUpdated  = "cart.item_updated"
	KeyCartCleared      = "cart.cleared"
	KeyCartEmpty        = "cart.empty"
	KeyWishlistAdded    = "wishlist.added"
	KeyWishlistRemoved  = "wishlist.removed"
	KeyWishlistCleared  = "wishlist.cleared"
	KeyReviewAdded      = "review.added"
	KeyReviewHelpful    = "review.helpful"
	KeyOrderPlaced      = "order.placed"
	KeyBookNotFound     = "book.not_found"
	KeyOrderNotFound    = "order.not_found"
	KeyValidationFailed = "validation.failed"
)

var ru = map[string]string{
	KeyCartItemAdded:    "«%s» добавлена в корзину",
	KeyCartItemRemoved:  "Книга удалена из корзины",
	KeyCartItemUpdated:  "Количество обновлено",
	KeyCartCleared:      "Корзина очищена",
	KeyCartEmpty:        "Корзина пуста",
	KeyWishlistAdded:    "Книга добавлена в избранное",
	KeyWishlistRemoved:  "Книга удалена из избранного",
	KeyWishlistCleared:  "Список избранного очищен",
	KeyReviewAdded:      "Спасибо за отзыв!",
	KeyReviewHelpful:    "Спасибо за оценку отзыва",
	KeyOrderPlaced:      "Заказ оформлен",
	KeyBookNotFound:     "Книга не найдена",
	KeyOrderNotFound:    "Заказ не найден",
	KeyValidationFailed: "Проверьте правильность заполнения полей",
}

var en = map[string]string{
	KeyCartItemAdded:    "%q added to cart",
	KeyCartItemRemoved:  "Book removed from cart",
	KeyCartItemUpdated:  "Quantity updated",
	KeyCartCleared:      "Cart cleared",
	KeyCartEmpty:        "Cart is empty",
	KeyWishlistAdded:    "Book added to wishlist",
	KeyWishlistRemoved:  "Book removed from wishlist",
	KeyWishlistCleared:  "Wishlist cleared",
	KeyReviewAdded:      "Thank you for your review!",
	KeyReviewHelpful:    "Thanks for rating this review",
	KeyOrderPlaced:      "Order placed",
	KeyBookNotFound:     "Book not found",
	KeyOrderNotFound:    "Order not found",
	KeyValidationFailed: "Please check the highlighted fields",
}
