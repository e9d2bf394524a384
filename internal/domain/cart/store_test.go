package cart_test

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-web/internal/domain/cart"
	"github.com/your-org/storefront-web/internal/domain/session"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
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
type fakeAuthAPI struct {
	token string
	user  *commerce.User
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	return f.token, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, req commerce.RegisterRequest) error {
	return nil
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context, token string) (*commerce.User, error) {
	if token != f.token {
		return nil, &commerce.APIError{StatusCode: 401, Detail: "Could not validate credentials"}
	}
	return f.user, nil
}

func (f *fakeAuthAPI) UpdateCurrentUser(ctx context.Context, token string, update commerce.UserUpdate) (*commerce.User, error) {
	return f.user, nil
}

// fakeCartAPI keeps the authoritative cart server-side, the way the real
// commerce API does. Mutations change remote state; Cart returns a copy.
type fakeCartAPI struct {
	token     string
	remote    []commerce.CartItem
	nextID    int
	cartCalls int
	addErr    error
}

func (f *fakeCartAPI) Cart(ctx context.Context, token string) ([]commerce.CartItem, error) {
	f.cartCalls++
	if token != f.token {
		return nil, &commerce.APIError{StatusCode: 401, Detail: "Could not validate credentials"}
	}
	items := make([]commerce.CartItem, len(f.remote))
	copy(items, f.remote)
	return items, nil
}

func (f *fakeCartAPI) AddCartItem(ctx context.Context, token string, productID, quantity int) error {
	if f.addErr != nil {
		return f.addErr
	}
	for i := range f.remote {
		if f.remote[i].ProductID == productID {
			f.remote[i].Quantity += quantity
			return nil
		}
	}
	f.nextID++
	f.remote = append(f.remote, commerce.CartItem{
		ID:        f.nextID,
		ProductID: productID,
		Quantity:  quantity,
		Product:   commerce.Product{ID: productID, Name: "Product", Price: 19.99, StockQuantity: 50},
	})
	return nil
}

func (f *fakeCartAPI) UpdateCartItem(ctx context.Context, token string, itemID, quantity int) error {
	for i := range f.remote {
		if f.remote[i].ID == itemID {
			f.remote[i].Quantity = quantity
			return nil
		}
	}
	return &commerce.APIError{StatusCode: 404, Detail: "Cart item not found"}
}

func (f *fakeCartAPI) RemoveCartItem(ctx context.Context, token string, itemID int) error {
	for i := range f.remote {
		if f.remote[i].ID == itemID {
			f.remote = append(f.remote[:i], f.remote[i+1:]...)
			return nil
		}
	}
	return &commerce.APIError{StatusCode: 404, Detail: "Cart item not found"}
}

func (f *fakeCartAPI) ClearCart(ctx context.Context, token string) error {
	f.remote = nil
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestStores wires a session and cart store pair around the fakes and
// signs the user in, mirroring the per-request construction order.
func newTestStores(t *testing.T, api *fakeCartAPI) (*session.Store, *cart.Store) {
	t.Helper()

	auth := &fakeAuthAPI{
		token: api.token,
		user:  &commerce.User{ID: 7, Username: "jdoe", Role: commerce.RoleCustomer, IsActive: true},
	}
	sess := session.NewStore("sess-1", &memoryTokenStore{tokens: map[string]string{}}, auth, testLogger())
	cartStore := cart.NewStore(sess, api, testLogger())
	sess.Hydrate(context.Background())

	require.NoError(t, sess.Login(context.Background(), "jdoe", "secret"))
	return sess, cartStore
}

func TestLogin_FetchesCartOnce(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	_, cartStore := newTestStores(t, api)

	assert.Equal(t, 1, api.cartCalls, "login is one identity transition and one cart fetch")
	assert.Empty(t, cartStore.Items())
}

func TestAddToCart_RefetchesRemoteState(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	_, cartStore := newTestStores(t, api)

	err := cartStore.AddToCart(context.Background(), 7, 2)

	require.NoError(t, err)
	require.Len(t, cartStore.Items(), 1)
	assert.Equal(t, 7, cartStore.Items()[0].ProductID)
	assert.Equal(t, 2, cartStore.Items()[0].Quantity)
	assert.Equal(t, 2, cartStore.TotalItems())
	assert.Equal(t, api.remote, cartStore.Items(), "local items mirror the authoritative remote cart")
}

func TestAddToCart_RemoteErrorPropagates(t *testing.T) {
	api := &fakeCartAPI{
		token:  "tok-1",
		addErr: &commerce.APIError{StatusCode: 400, Detail: "Not enough stock"},
	}
	_, cartStore := newTestStores(t, api)

	err := cartStore.AddToCart(context.Background(), 7, 99)

	require.Error(t, err)
	assert.Empty(t, cartStore.Items(), "a failed mutation must not change local state")
}

func TestUpdateQuantity(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	_, cartStore := newTestStores(t, api)
	require.NoError(t, cartStore.AddToCart(context.Background(), 7, 2))
	itemID := cartStore.Items()[0].ID

	err := cartStore.UpdateQuantity(context.Background(), itemID, 5)

	require.NoError(t, err)
	assert.Equal(t, 5, cartStore.Items()[0].Quantity)
	assert.Equal(t, 5, cartStore.TotalItems())
}

func TestRemoveFromCart(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	_, cartStore := newTestStores(t, api)
	require.NoError(t, cartStore.AddToCart(context.Background(), 7, 2))
	require.NoError(t, cartStore.AddToCart(context.Background(), 9, 1))
	itemID := cartStore.Items()[0].ID

	err := cartStore.RemoveFromCart(context.Background(), itemID)

	require.NoError(t, err)
	require.Len(t, cartStore.Items(), 1)
	assert.Equal(t, 9, cartStore.Items()[0].ProductID)
}

func TestClearCart_EmptiesLocallyWithoutRefetch(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	_, cartStore := newTestStores(t, api)
	require.NoError(t, cartStore.AddToCart(context.Background(), 7, 2))
	callsBefore := api.cartCalls

	err := cartStore.ClearCart(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cartStore.Items())
	assert.Empty(t, api.remote)
	assert.Equal(t, callsBefore, api.cartCalls, "the post-clear state is known, no refetch needed")
}

func TestLogout_ClearsItemsWithoutRemoteCall(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	sess, cartStore := newTestStores(t, api)
	require.NoError(t, cartStore.AddToCart(context.Background(), 7, 2))
	callsBefore := api.cartCalls

	sess.Logout(context.Background())

	assert.Empty(t, cartStore.Items())
	assert.Equal(t, callsBefore, api.cartCalls, "logout must not hit the cart endpoint")
	assert.Len(t, api.remote, 1, "the server-side cart is untouched by a local logout")
}

func TestTotals(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	_, cartStore := newTestStores(t, api)
	require.NoError(t, cartStore.AddToCart(context.Background(), 7, 3))

	totals := cartStore.Totals()

	assert.Equal(t, 1, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.True(t, decimal.NewFromFloat(59.97).Equal(totals.Subtotal),
		"19.99 x 3 must total exactly 59.97")
	assert.True(t, decimal.NewFromFloat(59.97).Equal(cartStore.TotalPrice()))
}

func TestItems_ReturnsCopy(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	_, cartStore := newTestStores(t, api)
	require.NoError(t, cartStore.AddToCart(context.Background(), 7, 2))

	leaked := cartStore.Items()
	leaked[0].Quantity = 99

	assert.Equal(t, 2, cartStore.Items()[0].Quantity, "callers must not be able to mutate store state")
	assert.Equal(t, 2, cartStore.TotalItems())
}

func TestTotals_EmptyCart(t *testing.T) {
	api := &fakeCartAPI{token: "tok-1"}
	_, cartStore := newTestStores(t, api)

	assert.Zero(t, cartStore.TotalItems())
	assert.True(t, decimal.Zero.Equal(cartStore.TotalPrice()))
}
