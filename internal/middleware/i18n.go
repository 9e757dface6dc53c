// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vedabooks/shop-backend/internal/i18n"
)

// I18nMiddleware picks the response language from Accept-Language.
// The storefront is Russian-first, so anything unrecognized falls back
// to ru.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.DefaultLang

		// Handle values like "en-US,en;q=0.9,ru;q=0.8"
		if header := c.GetHeader("Accept-Language"); header != "" {
			first := strings.TrimSpace(strings.Split(header, ",")[0])
			first = strings.Split(first, ";")[0]
			switch {
			case strings.HasPrefix(first, "en"):
				lang = "en"
			case strings.HasPrefix(first, "ru"):
				lang = "ru"
			}
		}

		c.Set("lang", lang)
		c.Next()
	}
}
