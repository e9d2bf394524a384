package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/domain/cart"
	"github.com/your-org/storefront-web/internal/domain/session"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
	"github.com/your-org/storefront-web/internal/interfaces/http/handlers"
)

// memoryTokenStore is an in-memory TokenStore for tests
type memoryTokenStore struct {
	tokens map[string]string
}

func (m *memoryTokenStore) Get(ctx context.Context, sessionID string) (string, error) {
	return m.tokens[sessionID], nil
}

func (m *memoryTokenStore) Save(ctx context.Context, sessionID, token string) error {
	m.tokens[sessionID] = token
	return nil
}

func (m *memoryTokenStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.tokens, sessionID)
	return nil
}

// fakeAuthAPI accepts any credentials and returns a fixed user
type fakeAuthAPI struct{}

func (fakeAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	return "tok-1", nil
}

func (fakeAuthAPI) Register(ctx context.Context, req commerce.RegisterRequest) error {
	return nil
}

func (fakeAuthAPI) CurrentUser(ctx context.Context, token string) (*commerce.User, error) {
	return &commerce.User{ID: 1, Username: "jdoe", Role: commerce.RoleCustomer}, nil
}

func (fakeAuthAPI) UpdateCurrentUser(ctx context.Context, token string, update commerce.UserUpdate) (*commerce.User, error) {
	return &commerce.User{ID: 1, Username: "jdoe", Role: commerce.RoleCustomer}, nil
}

// recordingCartAPI records which cart operation each request became
type recordingCartAPI struct {
	updated [][2]int // itemID, quantity pairs
	removed []int
}

func (f *recordingCartAPI) Cart(ctx context.Context, token string) ([]commerce.CartItem, error) {
	return nil, nil
}

func (f *recordingCartAPI) AddCartItem(ctx context.Context, token string, productID, quantity int) error {
	return nil
}

func (f *recordingCartAPI) UpdateCartItem(ctx context.Context, token string, itemID, quantity int) error {
	f.updated = append(f.updated, [2]int{itemID, quantity})
	return nil
}

func (f *recordingCartAPI) RemoveCartItem(ctx context.Context, token string, itemID int) error {
	f.removed = append(f.removed, itemID)
	return nil
}

func (f *recordingCartAPI) ClearCart(ctx context.Context, token string) error {
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newCartRouter builds a router with the per-request stores pre-injected,
// the way the session middleware does for real requests.
func newCartRouter(t *testing.T, api *recordingCartAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sess := session.NewStore("sess-1", &memoryTokenStore{tokens: map[string]string{}}, fakeAuthAPI{}, testLogger())
	cartStore := cart.NewStore(sess, api, testLogger())
	handler := handlers.NewCartHandler(&config.Config{})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("session_store", sess)
		c.Set("cart_store", cartStore)
		c.Next()
	})
	router.POST("/cart/items/:id", handler.UpdateQuantity)
	router.POST("/cart/items/:id/remove", handler.RemoveFromCart)
	return router
}

func postForm(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateQuantity_ZeroBecomesRemoval(t *testing.T) {
	api := &recordingCartAPI{}
	router := newCartRouter(t, api)

	w := postForm(router, "/cart/items/5", "quantity=0")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
	require.Equal(t, []int{5}, api.removed, "a zero quantity must become a removal")
	assert.Empty(t, api.updated, "no set-quantity call may be issued")
}

func TestUpdateQuantity_NegativeBecomesRemoval(t *testing.T) {
	api := &recordingCartAPI{}
	router := newCartRouter(t, api)

	w := postForm(router, "/cart/items/5", "quantity=-2")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, []int{5}, api.removed)
	assert.Empty(t, api.updated)
}

func TestUpdateQuantity_PositivePassesThrough(t *testing.T) {
	api := &recordingCartAPI{}
	router := newCartRouter(t, api)

	w := postForm(router, "/cart/items/5", "quantity=3")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, [][2]int{{5, 3}}, api.updated)
	assert.Empty(t, api.removed)
}

func TestRemoveFromCart_CallsRemove(t *testing.T) {
	api := &recordingCartAPI{}
	router := newCartRouter(t, api)

	w := postForm(router, "/cart/items/8/remove", "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, []int{8}, api.removed)
}
