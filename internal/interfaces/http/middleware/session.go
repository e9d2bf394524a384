// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/domain/cart"
	"github.com/your-org/storefront-web/internal/domain/session"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
	"github.com/your-org/storefront-web/internal/pkg/auth"
)

// Context keys for the per-request stores
const (
	sessionStoreKey = "session_store"
	cartStoreKey    = "cart_store"
)

// Session resolves the signed session cookie into a browser session ID,
// builds the Session and Cart stores for that session, and hydrates them.
// Visitors without a valid cookie get a fresh session ID. The stores live
// for the duration of the request; durable state is the token in Redis.
func Session(cfg *config.Config, cookies *auth.CookieManager, tokens session.TokenStore, client *commerce.Client, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if raw, err := c.Cookie(cfg.Session.CookieName); err == nil {
			if id, err := cookies.Validate(raw); err == nil {
				sessionID = id
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			signed, err := cookies.Sign(sessionID)
			if err != nil {
				logger.WithError(err).Error("Failed to sign session cookie")
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetCookie(cfg.Session.CookieName, signed, int(cfg.Session.TTL.Seconds()), "/", "", cfg.Session.CookieSecure, true)
		}

		sessionStore := session.NewStore(sessionID, tokens, client, logger)
		cartStore := cart.NewStore(sessionStore, client, logger)

		// Hydration runs before any handler reads the stores; the cart store
		// reacts to the user transition and fetches itself when logged in.
		sessionStore.Hydrate(c.Request.Context())

		c.Set(sessionStoreKey, sessionStore)
		c.Set(cartStoreKey, cartStore)

		c.Next()
	}
}

// GetSessionFromContext extracts the session store from gin context
func GetSessionFromContext(c *gin.Context) (*session.Store, bool) {
	value, exists := c.Get(sessionStoreKey)
	if !exists {
		return nil, false
	}
	store, ok := value.(*session.Store)
	return store, ok
}

// GetCartFromContext extracts the cart store from gin context
func GetCartFromContext(c *gin.Context) (*cart.Store, bool) {
	value, exists := c.Get(cartStoreKey)
	if !exists {
		return nil, false
	}
	store, ok := value.(*cart.Store)
	return store, ok
}

// RequireUser redirects unauthenticated visitors to the login page,
// preserving the requested path for the post-login redirect.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionStore, ok := GetSessionFromContext(c)
		if !ok || sessionStore.User() == nil {
			c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin sends non-admin visitors back to the storefront home page
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionStore, ok := GetSessionFromContext(c)
		if !ok || sessionStore.User() == nil {
			c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		if !sessionStore.User().IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
