package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testCredentials(t *testing.T) AdminCredentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return AdminCredentials{User: "admin", PasswordHash: hash}
}

func TestAdminCredentialsCheck(t *testing.T) {
	creds := testCredentials(t)

	assert.True(t, creds.Check("admin", "secret"))
	assert.False(t, creds.Check("admin", "wrong"))
	assert.False(t, creds.Check("root", "secret"))
	assert.False(t, AdminCredentials{User: "admin"}.Check("admin", ""))
}

func TestRequireAdmin(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", RequireAdmin(testCredentials(t)), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderWWWAuthenticate), AdminRealm)

	req = httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "wrong")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
