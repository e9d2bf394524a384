// internal/infrastructure/commerce/cart.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
)

type addCartItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Cart fetches the authoritative cart contents for the token's user
func (c *Client) Cart(ctx context.Context, token string) ([]CartItem, error) {
	var items []CartItem
	if err := c.do(ctx, http.MethodGet, "/api/cart/", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem adds a product to the cart. Stock validation happens remotely.
func (c *Client) AddCartItem(ctx context.Context, token string, productID, quantity int) error {
	return c.do(ctx, http.MethodPost, "/api/cart/add", token, &addCartItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// UpdateCartItem sets the quantity of an existing cart line item
func (c *Client) UpdateCartItem(ctx context.Context, token string, itemID, quantity int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/%d", itemID), token, &updateCartItemRequest{
		Quantity: quantity,
	}, nil)
}

// RemoveCartItem removes a line item from the cart
func (c *Client) RemoveCartItem(ctx context.Context, token string, itemID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", itemID), token, nil, nil)
}

// ClearCart removes every item from the cart
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/", token, nil, nil)
}
