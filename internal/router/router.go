// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedabooks/shop-backend/internal/config"
	"github.com/vedabooks/shop-backend/internal/handlers"
	"github.com/vedabooks/shop-backend/internal/middleware"
	"github.com/vedabooks/shop-backend/internal/services"
	"github.com/vedabooks/shop-backend/internal/storage"
)

func Initialize(ctx context.Context, snapshots storage.Snapshots, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(cfg.Catalog)
	cartService := services.NewCartService(snapshots)
	wishlistService := services.NewWishlistService(snapshots)
	reviewService := services.NewReviewService(ctx, snapshots)
	orderService := services.NewOrderService(ctx, snapshots, cartService)

	// The review sections open pre-populated; seeding is idempotent.
	reviewService.SeedAll(ctx)

	// Initialize handlers
	bookHandler := handlers.NewBookHandler(catalogService, cfg.Catalog.DefaultPageSize)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService, catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	if cfg.Environment != "test" {
		r.Use(middleware.GeneralRateLimit())
	}
	r.Use(middleware.Session())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.GetBooks)
			books.GET("/popular", bookHandler.GetPopularBooks)
			books.GET("/new", bookHandler.GetNewBooks)
			books.GET("/search", bookHandler.SearchBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.GET("/:id/similar", bookHandler.GetSimilarBooks)

			books.GET("/:id/reviews", reviewHandler.GetReviews)
			books.POST("/:id/reviews", middleware.ReviewRateLimit(), reviewHandler.AddReview)
			books.POST("/:id/reviews/:reviewId/helpful", reviewHandler.MarkHelpful)
		}

		v1.GET("/categories", bookHandler.GetCategories)

		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:bookId", cartHandler.UpdateQuantity)
			cart.DELETE("/items/:bookId", cartHandler.RemoveItem)
		}

		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.DELETE("", wishlistHandler.Clear)
			wishlist.POST("/:bookId/toggle", wishlistHandler.Toggle)
			wishlist.PUT("/:bookId", wishlistHandler.Add)
			wishlist.DELETE("/:bookId", wishlistHandler.Remove)
		}

		v1.POST("/checkout", orderHandler.Checkout)
		v1.GET("/orders/:id", orderHandler.GetOrder)
	}

	return r
}
