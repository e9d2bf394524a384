// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/interfaces/http/middleware"
)

// CartHandler handles the cart page and cart mutations
type CartHandler struct {
	config *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cfg *config.Config) *CartHandler {
	return &CartHandler{
		config: cfg,
	}
}

type addToCartForm struct {
	ProductID int `form:"product_id" binding:"required"`
	Quantity  int `form:"quantity" binding:"required,min=1"`
}

type updateQuantityForm struct {
	Quantity int `form:"quantity"`
}

// ShowCart handles GET /cart
func (h *CartHandler) ShowCart(c *gin.Context) {
	cartStore, ok := middleware.GetCartFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "cart.tmpl", pageData(c, "Shopping Cart", gin.H{
		"Items":  cartStore.Items(),
		"Totals": cartStore.Totals(),
	}))
}

// AddToCart handles POST /cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	var form addToCartForm
	if err := c.ShouldBind(&form); err != nil {
		setFlashError(c, "Invalid product or quantity")
		c.Redirect(http.StatusSeeOther, backTo(c, "/products"))
		return
	}

	cartStore, ok := middleware.GetCartFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := cartStore.AddToCart(c.Request.Context(), form.ProductID, form.Quantity); err != nil {
		setFlashError(c, err.Error())
		c.Redirect(http.StatusSeeOther, backTo(c, "/products"))
		return
	}

	setFlash(c, "Added to cart")
	c.Redirect(http.StatusSeeOther, backTo(c, "/cart"))
}

// UpdateQuantity handles POST /cart/items/:id. A target quantity of zero or
// less is rerouted to a removal; the store itself does not enforce this.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		setFlashError(c, "Invalid cart item")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	var form updateQuantityForm
	if err := c.ShouldBind(&form); err != nil {
		setFlashError(c, "Invalid quantity")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	cartStore, ok := middleware.GetCartFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if form.Quantity <= 0 {
		if err := cartStore.RemoveFromCart(c.Request.Context(), itemID); err != nil {
			setFlashError(c, err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	if err := cartStore.UpdateQuantity(c.Request.Context(), itemID, form.Quantity); err != nil {
		setFlashError(c, err.Error())
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveFromCart handles POST /cart/items/:id/remove
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		setFlashError(c, "Invalid cart item")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	cartStore, ok := middleware.GetCartFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := cartStore.RemoveFromCart(c.Request.Context(), itemID); err != nil {
		setFlashError(c, err.Error())
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// ClearCart handles POST /cart/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartStore, ok := middleware.GetCartFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := cartStore.ClearCart(c.Request.Context()); err != nil {
		setFlashError(c, err.Error())
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// Count handles GET /cart/count, the JSON endpoint behind the navbar badge
func (h *CartHandler) Count(c *gin.Context) {
	cartStore, ok := middleware.GetCartFromContext(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": cartStore.TotalItems(),
	})
}

// backTo returns the referring storefront page, or a fallback when the
// referer is missing or off-site.
func backTo(c *gin.Context, fallback string) string {
	ref := c.Request.Referer()
	if ref == "" {
		return fallback
	}
	parsed, err := url.Parse(ref)
	if err != nil || !strings.HasPrefix(parsed.Path, "/") {
		return fallback
	}
	if parsed.RawQuery != "" {
		return parsed.Path + "?" + parsed.RawQuery
	}
	return parsed.Path
}
