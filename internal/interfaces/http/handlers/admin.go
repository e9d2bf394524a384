// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
	"github.com/your-org/storefront-web/internal/interfaces/http/middleware"
)

// AdminHandler handles the lightweight admin console. Every operation is a
// pass-through to the remote admin API; authorization is enforced both here
// (RequireAdmin) and remotely (admin-scoped token).
type AdminHandler struct {
	client *commerce.Client
	config *config.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(client *commerce.Client, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		client: client,
		config: cfg,
	}
}

type productForm struct {
	Name          string  `form:"name" binding:"required"`
	Description   string  `form:"description"`
	Price         float64 `form:"price" binding:"required,gt=0"`
	ImageURL      string  `form:"image_url"`
	StockQuantity int     `form:"stock_quantity" binding:"min=0"`
	CategoryID    int     `form:"category_id"`
	IsActive      bool    `form:"is_active"`
}

func (f *productForm) toInput() commerce.ProductInput {
	input := commerce.ProductInput{
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.Price,
		ImageURL:      f.ImageURL,
		StockQuantity: f.StockQuantity,
		IsActive:      &f.IsActive,
	}
	if f.CategoryID > 0 {
		input.CategoryID = &f.CategoryID
	}
	return input
}

func adminToken(c *gin.Context) string {
	sessionStore, ok := middleware.GetSessionFromContext(c)
	if !ok {
		return ""
	}
	return sessionStore.Token()
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(c *gin.Context) {
	overview, err := h.client.AdminOverview(c.Request.Context(), adminToken(c))
	if err != nil {
		c.HTML(http.StatusBadGateway, "admin_dashboard.tmpl", pageData(c, "Admin", gin.H{
			"LoadError": true,
		}))
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.tmpl", pageData(c, "Admin", gin.H{
		"Overview": overview,
	}))
}

// Products handles GET /admin/products
func (h *AdminHandler) Products(c *gin.Context) {
	products, err := h.client.AdminProducts(c.Request.Context(), adminToken(c))
	if err != nil {
		c.HTML(http.StatusBadGateway, "admin_products.tmpl", pageData(c, "Manage Products", gin.H{
			"LoadError": true,
		}))
		return
	}

	categories, err := h.client.Categories(c.Request.Context())
	if err != nil {
		categories = nil
	}

	c.HTML(http.StatusOK, "admin_products.tmpl", pageData(c, "Manage Products", gin.H{
		"Products":   products,
		"Categories": categories,
	}))
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		setFlashError(c, "Name and a positive price are required")
		c.Redirect(http.StatusSeeOther, "/admin/products")
		return
	}

	if err := h.client.AdminCreateProduct(c.Request.Context(), adminToken(c), form.toInput()); err != nil {
		setFlashError(c, "Failed to create product: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/admin/products")
		return
	}

	setFlash(c, "Product created")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// EditProduct handles GET /admin/products/:id/edit
func (h *AdminHandler) EditProduct(c *gin.Context) {
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

	categories, err := h.client.Categories(c.Request.Context())
	if err != nil {
		categories = nil
	}

	c.HTML(http.StatusOK, "admin_product_edit.tmpl", pageData(c, "Edit Product", gin.H{
		"Product":    product,
		"Categories": categories,
	}))
}

// UpdateProduct handles POST /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
		return
	}

	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		setFlashError(c, "Name and a positive price are required")
		c.Redirect(http.StatusSeeOther, "/admin/products/"+strconv.Itoa(productID)+"/edit")
		return
	}

	if err := h.client.AdminUpdateProduct(c.Request.Context(), adminToken(c), productID, form.toInput()); err != nil {
		setFlashError(c, "Failed to update product: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/admin/products/"+strconv.Itoa(productID)+"/edit")
		return
	}

	setFlash(c, "Product updated")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// DeleteProduct handles POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
		return
	}

	if err := h.client.AdminDeleteProduct(c.Request.Context(), adminToken(c), productID); err != nil {
		setFlashError(c, "Failed to delete product: "+err.Error())
	} else {
		setFlash(c, "Product deleted")
	}
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// Orders handles GET /admin/orders
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.client.AdminOrders(c.Request.Context(), adminToken(c))
	if err != nil {
		c.HTML(http.StatusBadGateway, "admin_orders.tmpl", pageData(c, "Manage Orders", gin.H{
			"LoadError": true,
		}))
		return
	}

	c.HTML(http.StatusOK, "admin_orders.tmpl", pageData(c, "Manage Orders", gin.H{
		"Orders":   orders,
		"Statuses": []string{"pending", "processing", "shipped", "delivered", "cancelled"},
	}))
}

// UpdateOrderStatus handles POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
		return
	}

	status := c.PostForm("status")
	if status == "" {
		setFlashError(c, "A status is required")
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	if err := h.client.AdminUpdateOrderStatus(c.Request.Context(), adminToken(c), orderID, status); err != nil {
		setFlashError(c, "Failed to update order: "+err.Error())
	} else {
		setFlash(c, "Order status updated")
	}
	c.Redirect(http.StatusSeeOther, "/admin/orders")
}

// Users handles GET /admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.client.AdminUsers(c.Request.Context(), adminToken(c))
	if err != nil {
		c.HTML(http.StatusBadGateway, "admin_users.tmpl", pageData(c, "Manage Users", gin.H{
			"LoadError": true,
		}))
		return
	}

	c.HTML(http.StatusOK, "admin_users.tmpl", pageData(c, "Manage Users", gin.H{
		"Users": users,
	}))
}

// ToggleUserActive handles POST /admin/users/:id/toggle
func (h *AdminHandler) ToggleUserActive(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
		return
	}

	if err := h.client.AdminToggleUserActive(c.Request.Context(), adminToken(c), userID); err != nil {
		setFlashError(c, "Failed to update user: "+err.Error())
	} else {
		setFlash(c, "User updated")
	}
	c.Redirect(http.StatusSeeOther, "/admin/users")
}
