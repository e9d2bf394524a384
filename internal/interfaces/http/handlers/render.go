// internal/interfaces/http/handlers/render.go
package handlers

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-web/internal/interfaces/http/middleware"
)

// Flash cookie names. A flash survives exactly one redirect.
const (
	flashCookie      = "flash"
	flashErrorCookie = "flash_error"
)

// setFlash stores a one-shot notice shown on the next rendered page
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// setFlashError stores a one-shot error message shown on the next rendered page
func setFlashError(c *gin.Context, message string) {
	c.SetCookie(flashErrorCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// popFlash reads and clears a flash cookie
func popFlash(c *gin.Context, name string) string {
	value, err := c.Cookie(name)
	if err != nil || value == "" {
		return ""
	}
	c.SetCookie(name, "", -1, "/", "", false, true)
	if decoded, err := url.QueryUnescape(value); err == nil {
		return decoded
	}
	return ""
}

// pageData assembles the template payload common to every page: the session
// user, the cart badge count, and any pending flash messages. Page-specific
// fields are merged on top.
func pageData(c *gin.Context, title string, fields gin.H) gin.H {
	data := gin.H{
		"Title": title,
	}

	if sessionStore, ok := middleware.GetSessionFromContext(c); ok {
		data["User"] = sessionStore.User()
	}
	if cartStore, ok := middleware.GetCartFromContext(c); ok {
		data["CartCount"] = cartStore.TotalItems()
	}

	if msg := popFlash(c, flashCookie); msg != "" {
		data["Flash"] = msg
	}
	if msg := popFlash(c, flashErrorCookie); msg != "" {
		data["FlashError"] = msg
	}

	for key, value := range fields {
		data[key] = value
	}

	return data
}
