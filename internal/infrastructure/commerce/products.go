// internal/infrastructure/commerce/products.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Products fetches a paginated, filtered product listing
func (c *Client) Products(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.CategoryID > 0 {
		params.Set("category_id", strconv.Itoa(query.CategoryID))
	}
	if query.MinPrice > 0 {
		params.Set("min_price", strconv.FormatFloat(query.MinPrice, 'f', -1, 64))
	}
	if query.MaxPrice > 0 {
		params.Set("max_price", strconv.FormatFloat(query.MaxPrice, 'f', -1, 64))
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	path := "/api/products/"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page ProductPage
	if err := c.do(ctx, http.MethodGet, path, "", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Product fetches a single product by ID
func (c *Client) Product(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories fetches the active product categories
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/api/products/categories/", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
