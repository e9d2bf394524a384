package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/pkg/auth"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Storefront"
	cfg.Session.CookieSecret = secret
	cfg.Session.TTL = time.Hour
	return cfg
}

func TestSignAndValidate_RoundTrip(t *testing.T) {
	manager := auth.NewCookieManager(testConfig("test-secret-key-that-is-long-enough-123"))

	value, err := manager.Sign("sess-abc")
	require.NoError(t, err)
	require.NotEmpty(t, value)

	sessionID, err := manager.Validate(value)
	require.NoError(t, err)
	assert.Equal(t, "sess-abc", sessionID)
}

func TestValidate_RejectsTamperedValue(t *testing.T) {
	manager := auth.NewCookieManager(testConfig("test-secret-key-that-is-long-enough-123"))

	value, err := manager.Sign("sess-abc")
	require.NoError(t, err)

	_, err = manager.Validate(value + "x")
	assert.Error(t, err)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	signer := auth.NewCookieManager(testConfig("test-secret-key-that-is-long-enough-123"))
	verifier := auth.NewCookieManager(testConfig("a-completely-different-secret-key-456"))

	value, err := signer.Sign("sess-abc")
	require.NoError(t, err)

	_, err = verifier.Validate(value)
	assert.Error(t, err)
}

func TestValidate_RejectsExpiredCookie(t *testing.T) {
	cfg := testConfig("test-secret-key-that-is-long-enough-123")
	cfg.Session.TTL = -time.Minute
	manager := auth.NewCookieManager(cfg)

	value, err := manager.Sign("sess-abc")
	require.NoError(t, err)

	_, err = manager.Validate(value)
	assert.Error(t, err)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	manager := auth.NewCookieManager(testConfig("test-secret-key-that-is-long-enough-123"))

	_, err := manager.Validate("not-a-signed-cookie")
	assert.Error(t, err)
}
