// internal/interfaces/http/handlers/products.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
)

// ProductHandler handles the home page and product browsing
type ProductHandler struct {
	client *commerce.Client
	config *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(client *commerce.Client, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		client: client,
		config: cfg,
	}
}

// Home handles GET /
func (h *ProductHandler) Home(c *gin.Context) {
	page, err := h.client.Products(c.Request.Context(), commerce.ProductQuery{
		Page:  1,
		Limit: 8,
	})
	if err != nil {
		c.HTML(http.StatusOK, "home.tmpl", pageData(c, "Welcome", gin.H{
			"LoadError": true,
		}))
		return
	}

	c.HTML(http.StatusOK, "home.tmpl", pageData(c, "Welcome", gin.H{
		"Featured": page.Items,
	}))
}

// List handles GET /products with search, filter, and pagination
func (h *ProductHandler) List(c *gin.Context) {
	query := commerce.ProductQuery{
		Search: c.Query("search"),
		Page:   1,
		Limit:  20,
	}
	if v, err := strconv.Atoi(c.Query("category_id")); err == nil && v > 0 {
		query.CategoryID = v
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil && v > 0 {
		query.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil && v > 0 {
		query.MaxPrice = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		query.Page = v
	}

	page, err := h.client.Products(c.Request.Context(), query)
	if err != nil {
		c.HTML(http.StatusBadGateway, "products.tmpl", pageData(c, "Products", gin.H{
			"LoadError": true,
			"Query":     query,
			"Search":    query.Search,
		}))
		return
	}

	categories, err := h.client.Categories(c.Request.Context())
	if err != nil {
		// Filtering degrades gracefully without categories
		categories = nil
	}

	c.HTML(http.StatusOK, "products.tmpl", pageData(c, "Products", gin.H{
		"Page":       page,
		"Categories": categories,
		"Query":      query,
		"Search":     query.Search,
		"PrevPage":   query.Page - 1,
		"NextPage":   query.Page + 1,
		"HasPrev":    query.Page > 1,
		"HasNext":    query.Page < page.Pages,
	}))
}

// Detail handles GET /products/:id
func (h *ProductHandler) Detail(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
		return
	}

	product, err := h.client.Product(c.Request.Context(), productID)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
		return
	}

	c.HTML(http.StatusOK, "product_detail.tmpl", pageData(c, product.Name, gin.H{
		"Product": product,
	}))
}
