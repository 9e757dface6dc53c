// internal/router/router_test.go
package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/vedabooks/shop-backend/internal/config"
	"github.com/vedabooks/shop-backend/internal/storage/memory"
)

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		Catalog:     config.CatalogConfig{DelayMS: 0, DefaultPageSize: 12},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}

	suite.router = Initialize(context.Background(), memory.New(), cfg)
}

func (suite *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "test-session")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *APITestSuite) TestHealthCheck() {
	w := suite.request(http.MethodGet, "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestGetBooksFiltered() {
	w := suite.request(http.MethodGet, "/v1/books?categories=philosophy&sort=price-asc&page=1&limit=2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].([]interface{})
	suite.Require().Len(data, 2)
	first := data[0].(map[string]interface{})
	second := data[1].(map[string]interface{})
	assert.Equal(suite.T(), float64(1000), first["price"])
	assert.Equal(suite.T(), float64(1200), second["price"])

	meta := response["meta"].(map[string]interface{})["pagination"].(map[string]interface{})
	assert.Equal(suite.T(), float64(3), meta["total"])
	assert.Equal(suite.T(), float64(2), meta["total_pages"])
	assert.Equal(suite.T(), "2", w.Header().Get("X-Total-Pages"))
}

func (suite *APITestSuite) TestGetBookNotFound() {
	w := suite.request(http.MethodGet, "/v1/books/no-such-book", nil)
	suite.Require().Equal(http.StatusNotFound, w.Code)

	response := suite.decode(w)
	assert.False(suite.T(), response["success"].(bool))
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "NOT_FOUND", errObj["code"])
}

func (suite *APITestSuite) TestCartFlow() {
	// Add the same book twice.
	w := suite.request(http.MethodPost, "/v1/cart/items", map[string]string{"book_id": "bhagavad-gita"})
	suite.Require().Equal(http.StatusOK, w.Code)
	w = suite.request(http.MethodPost, "/v1/cart/items", map[string]string{"book_id": "bhagavad-gita"})
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.NotEmpty(suite.T(), response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), data["item_count"])
	assert.Equal(suite.T(), float64(1700), data["total"])

	// Set quantity back to one.
	w = suite.request(http.MethodPut, "/v1/cart/items/bhagavad-gita", map[string]int{"quantity": 1})
	suite.Require().Equal(http.StatusOK, w.Code)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(850), data["total"])

	// Clear.
	w = suite.request(http.MethodDelete, "/v1/cart", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["item_count"])
}

func (suite *APITestSuite) TestCartAddUnknownBook() {
	w := suite.request(http.MethodPost, "/v1/cart/items", map[string]string{"book_id": "ghost"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestWishlistToggle() {
	w := suite.request(http.MethodPost, "/v1/wishlist/isopanisad/toggle", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.True(suite.T(), data["in_wishlist"].(bool))
	assert.Equal(suite.T(), float64(1), data["count"])

	w = suite.request(http.MethodPost, "/v1/wishlist/isopanisad/toggle", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.False(suite.T(), data["in_wishlist"].(bool))
	assert.Equal(suite.T(), float64(0), data["count"])
}

func (suite *APITestSuite) TestSeededReviews() {
	w := suite.request(http.MethodGet, "/v1/books/bhagavad-gita/reviews", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(3), data["total_reviews"])
	assert.Greater(suite.T(), data["average_rating"].(float64), 4.0)
}

func (suite *APITestSuite) TestAddReviewValidation() {
	w := suite.request(http.MethodPost, "/v1/books/bhagavad-gita/reviews", map[string]interface{}{
		"user_name": "   ",
		"rating":    5,
		"comment":   "Отличная книга",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "VALIDATION_ERROR", errObj["code"])
}

func (suite *APITestSuite) TestCheckoutFlow() {
	// Empty cart first.
	checkout := map[string]interface{}{
		"first_name":      "Анна",
		"last_name":       "Петрова",
		"email":           "anna@example.com",
		"phone":           "+79991234567",
		"address":         "ул. Ленина, д. 10, кв. 5",
		"city":            "Москва",
		"postal_code":     "101000",
		"delivery_method": "delivery",
	}
	w := suite.request(http.MethodPost, "/v1/checkout", checkout)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	// Fill the cart and place the order.
	w = suite.request(http.MethodPost, "/v1/cart/items", map[string]string{"book_id": "krishna-book"})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodPost, "/v1/checkout", checkout)
	suite.Require().Equal(http.StatusCreated, w.Code)

	order := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), "pending", order["status"])
	assert.Equal(suite.T(), float64(1800), order["total"])

	// The order is retrievable and the cart is now empty.
	w = suite.request(http.MethodGet, "/v1/orders/"+order["id"].(string), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/v1/cart", nil)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["item_count"])
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
