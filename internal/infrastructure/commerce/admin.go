// internal/infrastructure/commerce/admin.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// AdminUsers lists every registered user (admin only)
func (c *Client) AdminUsers(ctx context.Context, token string) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminToggleUserActive flips a user's active flag (admin only)
func (c *Client) AdminToggleUserActive(ctx context.Context, token string, userID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/toggle-active", userID), token, nil, nil)
}

// AdminProducts lists all products including inactive ones (admin only)
func (c *Client) AdminProducts(ctx context.Context, token string) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/admin/products", token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AdminCreateProduct creates a catalog product (admin only)
func (c *Client) AdminCreateProduct(ctx context.Context, token string, input ProductInput) error {
	return c.do(ctx, http.MethodPost, "/api/admin/products", token, &input, nil)
}

// AdminUpdateProduct updates a catalog product (admin only)
func (c *Client) AdminUpdateProduct(ctx context.Context, token string, productID int, input ProductInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/products/%d", productID), token, &input, nil)
}

// AdminDeleteProduct deactivates a catalog product (admin only)
func (c *Client) AdminDeleteProduct(ctx context.Context, token string, productID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", productID), token, nil, nil)
}

// AdminOrders lists all orders across users (admin only)
func (c *Client) AdminOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AdminUpdateOrderStatus updates an order's fulfillment status (admin only)
func (c *Client) AdminUpdateOrderStatus(ctx context.Context, token string, orderID int, status string) error {
	params := url.Values{"status": {status}}
	path := fmt.Sprintf("/api/admin/orders/%d/status?%s", orderID, params.Encode())
	return c.do(ctx, http.MethodPut, path, token, nil, nil)
}

// AdminOverview fetches the analytics overview (admin only)
func (c *Client) AdminOverview(ctx context.Context, token string) (*Overview, error) {
	var overview Overview
	if err := c.do(ctx, http.MethodGet, "/api/admin/analytics/overview", token, nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
