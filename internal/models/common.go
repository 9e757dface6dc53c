// internal/models/common.go
package models

// Enums

type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
)

// LanguageAll is the filter value that matches every language.
const LanguageAll = "all"

type Category string

const (
	CategoryPhilosophy Category = "philosophy"
	CategoryScripture  Category = "scripture"
	CategoryBiography  Category = "biography"
	CategoryChildren   Category = "children"
	CategoryCosmology  Category = "cosmology"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryPhilosophy, CategoryScripture, CategoryBiography, CategoryChildren, CategoryCosmology:
		return true
	}
	return false
}

type SortOption string

const (
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortRating    SortOption = "rating"
	SortNewest    SortOption = "newest"
	SortPopular   SortOption = "popular"
)

type ReviewSort string

const (
	ReviewSortNewest ReviewSort = "newest"
	ReviewSortOldest ReviewSort = "oldest"
	ReviewSortRating ReviewSort = "rating"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)
