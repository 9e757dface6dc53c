// internal/models/cart.go
package models

// CartItem pairs a book with its quantity. A cart never holds two items
// for the same book and never holds an item with quantity < 1.
type CartItem struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// CartSummary is the read model returned to clients: the items plus the
// derived totals, always recomputed from current state.
type CartSummary struct {
	Items     []CartItem `json:"items"`
	Total     int        `json:"total"`
	ItemCount int        `json:"item_count"`
}
