package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-web/internal/domain/session"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
	"github.com/your-org/storefront-web/internal/interfaces/http/middleware"
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

// fakeAuthAPI returns a fixed user for any valid-looking token
type fakeAuthAPI struct {
	user *commerce.User
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	return "tok-1", nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, req commerce.RegisterRequest) error {
	return nil
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context, token string) (*commerce.User, error) {
	if f.user == nil {
		return nil, &commerce.APIError{StatusCode: 401, Detail: "Could not validate credentials"}
	}
	return f.user, nil
}

func (f *fakeAuthAPI) UpdateCurrentUser(ctx context.Context, token string, update commerce.UserUpdate) (*commerce.User, error) {
	return f.user, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newGuardRouter builds a router whose context carries a session store for
// the given user (nil for a signed-out visitor), then mounts the guard in
// front of a trivial 200 handler.
func newGuardRouter(t *testing.T, user *commerce.User, guard gin.HandlerFunc, path string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sess := session.NewStore("sess-1", &memoryTokenStore{tokens: map[string]string{}}, &fakeAuthAPI{user: user}, testLogger())
	sess.Hydrate(context.Background())
	if user != nil {
		require.NoError(t, sess.Login(context.Background(), user.Username, "secret"))
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("session_store", sess)
		c.Next()
	})
	router.GET(path, guard, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireUser_RedirectsSignedOutVisitorToLogin(t *testing.T) {
	router := newGuardRouter(t, nil, middleware.RequireUser(), "/orders")

	w := get(router, "/orders")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?next=%2Forders", w.Header().Get("Location"))
}

func TestRequireUser_PassesAuthenticatedUser(t *testing.T) {
	user := &commerce.User{ID: 1, Username: "jdoe", Role: commerce.RoleCustomer}
	router := newGuardRouter(t, user, middleware.RequireUser(), "/orders")

	w := get(router, "/orders")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_SendsCustomerHome(t *testing.T) {
	user := &commerce.User{ID: 1, Username: "jdoe", Role: commerce.RoleCustomer}
	router := newGuardRouter(t, user, middleware.RequireAdmin(), "/admin")

	w := get(router, "/admin")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireAdmin_RedirectsSignedOutVisitorToLogin(t *testing.T) {
	router := newGuardRouter(t, nil, middleware.RequireAdmin(), "/admin")

	w := get(router, "/admin")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?next=%2Fadmin", w.Header().Get("Location"))
}

func TestRequireAdmin_PassesAdmin(t *testing.T) {
	user := &commerce.User{ID: 2, Username: "root", Role: commerce.RoleAdmin}
	router := newGuardRouter(t, user, middleware.RequireAdmin(), "/admin")

	w := get(router, "/admin")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeout_SetsRequestDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Timeout(time.Minute))

	var deadlineSet bool
	router.GET("/", func(c *gin.Context) {
		_, deadlineSet = c.Request.Context().Deadline()
		c.String(http.StatusOK, "ok")
	})

	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deadlineSet, "downstream calls must see a deadline")
}
