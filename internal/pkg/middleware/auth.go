package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradsite/modteam/internal/pkg/env"
)

// AdminRealm is announced in the WWW-Authenticate challenge.
const AdminRealm = "Administration"

// AdminCredentials is the single operator account of the back office.
type AdminCredentials struct {
	User         string
	PasswordHash []byte
}

// LoadAdminCredentials reads ADMIN_USER and ADMIN_PASSWORD_HASH (a bcrypt hash).
func LoadAdminCredentials() AdminCredentials {
	creds := AdminCredentials{
		User:         env.GetEnv("ADMIN_USER", "admin"),
		PasswordHash: []byte(env.GetEnv("ADMIN_PASSWORD_HASH", "")),
	}
	if len(creds.PasswordHash) == 0 {
		log.Warn("[Auth] ADMIN_PASSWORD_HASH is not set, the admin area is locked")
	}
	return creds
}

// Check reports whether user and password match. Without a configured hash every
// attempt fails.
func (a AdminCredentials) Check(user, password string) bool {
	if len(a.PasswordHash) == 0 {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.User)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) == nil
	return userOK && passOK
}

// RequireAdmin guards the admin routes with HTTP basic auth.
func RequireAdmin(creds AdminCredentials) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm:      AdminRealm,
		Authorizer: creds.Check,
		Unauthorized: func(c *fiber.Ctx) error {
			log.Warnf("[Auth] Rejected admin access from %s", c.IP())
			c.Set(fiber.HeaderWWWAuthenticate, `basic realm="`+AdminRealm+`"`)
			return c.SendStatus(fiber.StatusUnauthorized)
		},
	})
}
