// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
	"github.com/your-org/storefront-web/internal/interfaces/http/middleware"
)

// AuthHandler handles login, registration, logout, and profile pages
type AuthHandler struct {
	config *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		config: cfg,
	}
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

type registerForm struct {
	Username        string `form:"username" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
	FirstName       string `form:"first_name" binding:"required"`
	LastName        string `form:"last_name" binding:"required"`
}

type profileForm struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if sessionStore, ok := middleware.GetSessionFromContext(c); ok && sessionStore.User() != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "login.tmpl", pageData(c, "Sign In", gin.H{
		"Next": sanitizeNext(c.Query("next")),
	}))
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", pageData(c, "Sign In", gin.H{
			"Error": "Username and password are required",
			"Next":  sanitizeNext(form.Next),
		}))
		return
	}

	sessionStore, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := sessionStore.Login(c.Request.Context(), form.Username, form.Password); err != nil {
		c.HTML(http.StatusUnauthorized, "login.tmpl", pageData(c, "Sign In", gin.H{
			"Error":    "Invalid username or password",
			"Username": form.Username,
			"Next":     sanitizeNext(form.Next),
		}))
		return
	}

	c.Redirect(http.StatusSeeOther, sanitizeNext(form.Next))
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if sessionStore, ok := middleware.GetSessionFromContext(c); ok && sessionStore.User() != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "register.tmpl", pageData(c, "Create Account", nil))
}

// Register handles POST /register. Registration does not authenticate; on
// success the visitor is sent to the login page.
func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.tmpl", pageData(c, "Create Account", gin.H{
			"Error": "All fields are required; passwords must be at least 8 characters",
			"Form":  form,
		}))
		return
	}

	if form.Password != form.ConfirmPassword {
		c.HTML(http.StatusBadRequest, "register.tmpl", pageData(c, "Create Account", gin.H{
			"Error": "Passwords do not match",
			"Form":  form,
		}))
		return
	}

	sessionStore, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	err := sessionStore.Register(c.Request.Context(), commerce.RegisterRequest{
		Username:  form.Username,
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		c.HTML(http.StatusBadRequest, "register.tmpl", pageData(c, "Create Account", gin.H{
			"Error": err.Error(),
			"Form":  form,
		}))
		return
	}

	setFlash(c, "Account created. Please sign in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionStore, ok := middleware.GetSessionFromContext(c); ok {
		sessionStore.Logout(c.Request.Context())
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ShowProfile handles GET /profile
func (h *AuthHandler) ShowProfile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.tmpl", pageData(c, "My Profile", nil))
}

// UpdateProfile handles POST /profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		setFlashError(c, "First name, last name, and a valid email are required")
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	sessionStore, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	err := sessionStore.UpdateUser(c.Request.Context(), commerce.UserUpdate{
		FirstName: &form.FirstName,
		LastName:  &form.LastName,
		Email:     &form.Email,
	})
	if err != nil {
		setFlashError(c, "Failed to update profile: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	setFlash(c, "Profile updated")
	c.Redirect(http.StatusSeeOther, "/profile")
}

// sanitizeNext keeps post-login redirects on-site
func sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
