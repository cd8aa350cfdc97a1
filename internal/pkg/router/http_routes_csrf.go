package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/gradsite/modteam/app/controllers"
	"github.com/gradsite/modteam/internal/pkg/env"
	"github.com/gradsite/modteam/internal/pkg/kvstore"
)

// csrfMiddleware protects the admin forms. Tokens live in Redis when it is
// configured so that every instance accepts them.
func (h HttpRouter) csrfMiddleware() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     controllers.CSRFContextKey,
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Storage:        kvstore.New(h.deps.Redis, kvstore.CSRFDatabase),
	})
}
