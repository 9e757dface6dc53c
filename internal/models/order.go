// internal/models/order.go
package models

import "time"

// Customer holds the checkout form data attached to an order.
type Customer struct {
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Address    string         `json:"address"`
	City       string         `json:"city"`
	PostalCode string         `json:"postal_code"`
	Comment    string         `json:"comment,omitempty"`
	Delivery   DeliveryMethod `json:"delivery_method"`
}

// Order is a placed order. There is no payment processing behind it;
// orders stay pending until handled out of band.
type Order struct {
	ID                string      `json:"id"`
	Items             []CartItem  `json:"items"`
	Customer          Customer    `json:"customer"`
	Total             int         `json:"total"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
}
