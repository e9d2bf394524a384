// internal/infrastructure/commerce/orders.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
)

// Orders fetches the authenticated user's order history
func (c *Client) Orders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single order owned by the authenticated user
func (c *Client) Order(ctx context.Context, token string, orderID int) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder initiates checkout. The remote API validates stock, captures
// the cart into an order, and clears the server-side cart on success.
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderCreate) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders/", token, &req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
