// internal/interfaces/http/handlers/orders.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
	"github.com/your-org/storefront-web/internal/interfaces/http/middleware"
)

// OrderHandler handles order history and checkout initiation
type OrderHandler struct {
	client *commerce.Client
	config *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(client *commerce.Client, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		client: client,
		config: cfg,
	}
}

type checkoutForm struct {
	ShippingAddress string `form:"shipping_address" binding:"required"`
	BillingAddress  string `form:"billing_address"`
	SameAsShipping  bool   `form:"same_as_shipping"`
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	sessionStore, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	orders, err := h.client.Orders(c.Request.Context(), sessionStore.Token())
	if err != nil {
		c.HTML(http.StatusBadGateway, "orders.tmpl", pageData(c, "My Orders", gin.H{
			"LoadError": true,
		}))
		return
	}

	c.HTML(http.StatusOK, "orders.tmpl", pageData(c, "My Orders", gin.H{
		"Orders": orders,
	}))
}

// Detail handles GET /orders/:id
func (h *OrderHandler) Detail(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
		return
	}

	sessionStore, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	order, err := h.client.Order(c.Request.Context(), sessionStore.Token(), orderID)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
		return
	}

	c.HTML(http.StatusOK, "order_detail.tmpl", pageData(c, "Order Details", gin.H{
		"Order": order,
	}))
}

// ShowCheckout handles GET /checkout
func (h *OrderHandler) ShowCheckout(c *gin.Context) {
	cartStore, ok := middleware.GetCartFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if len(cartStore.Items()) == 0 {
		setFlashError(c, "Your cart is empty")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	c.HTML(http.StatusOK, "checkout.tmpl", pageData(c, "Checkout", gin.H{
		"Items":  cartStore.Items(),
		"Totals": cartStore.Totals(),
	}))
}

// Checkout handles POST /checkout. The remote API captures the cart into an
// order, validates stock, and clears the server-side cart on success.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var form checkoutForm
	if err := c.ShouldBind(&form); err != nil {
		setFlashError(c, "A shipping address is required")
		c.Redirect(http.StatusSeeOther, "/checkout")
		return
	}

	billing := form.BillingAddress
	if form.SameAsShipping || billing == "" {
		billing = form.ShippingAddress
	}

	sessionStore, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	cartStore, ok := middleware.GetCartFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	items := cartStore.Items()
	if len(items) == 0 {
		setFlashError(c, "Your cart is empty")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	orderItems := make([]commerce.OrderCreateItem, len(items))
	for i, item := range items {
		orderItems[i] = commerce.OrderCreateItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		}
	}

	order, err := h.client.CreateOrder(c.Request.Context(), sessionStore.Token(), commerce.OrderCreate{
		ShippingAddress: form.ShippingAddress,
		BillingAddress:  billing,
		OrderItems:      orderItems,
	})
	if err != nil {
		setFlashError(c, "Checkout failed: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/checkout")
		return
	}

	setFlash(c, "Order placed successfully")
	c.Redirect(http.StatusSeeOther, "/orders/"+strconv.Itoa(order.ID))
}
