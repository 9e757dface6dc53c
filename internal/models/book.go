// internal/models/book.go
package models

// Book is a single catalog item. The catalog is a fixed table loaded at
// process start; books are never mutated afterwards, so they are shared
// freely between services. Price is in whole rubles.
type Book struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Price           int      `json:"price"`
	OriginalPrice   int      `json:"original_price,omitempty"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	Image           string   `json:"image"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description,omitempty"`
	Category        Category `json:"category"`
	Language        Language `json:"language"`
	Pages           int      `json:"pages"`
	ISBN            string   `json:"isbn"`
	InStock         bool     `json:"in_stock"`
	Year            int      `json:"year"`
	Publisher       string   `json:"publisher,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	VideoURL        string   `json:"video_url,omitempty"`
}

// FilterState is the full query-pipeline parameter set. The zero value
// of every field means "predicate always true".
type FilterState struct {
	Search      string     `json:"search"`
	Categories  []Category `json:"categories"`
	MinPrice    *int       `json:"min_price"`
	MaxPrice    *int       `json:"max_price"`
	Author      string     `json:"author"`
	Language    string     `json:"language"` // "all", "ru" or "en"
	MinRating   float64    `json:"min_rating"`
	InStockOnly bool       `json:"in_stock_only"`
	SortBy      SortOption `json:"sort_by"`
}

type BookCategory struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
}
