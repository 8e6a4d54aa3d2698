package guard

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/papecode/nfc-card-demo/internal/identity"
	"github.com/papecode/nfc-card-demo/internal/session"
)

// Middleware applies guard decisions to HTTP navigations. required may be
// empty, in which case any authenticated viewer passes.
//
// Loading maps to 503 with Retry-After so clients wait out session
// restoration instead of being bounced to login. Redirects are plain 302s;
// they are normal access-control flow, not errors.
func Middleware(store *session.Store, required identity.Role, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := Evaluate(store.Snapshot(), required, c.Request.URL.Path)

		switch decision.Kind {
		case Loading:
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			c.Abort()
		case RedirectLogin:
			log.Debug().Str("path", decision.From).Msg("Viewer not authenticated, redirecting to login")
			c.Redirect(http.StatusFound, decision.Target+"?from="+url.QueryEscape(decision.From))
			c.Abort()
		case RedirectHome:
			log.Debug().Str("target", decision.Target).Msg("Role mismatch, redirecting to role home")
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
		default:
			c.Next()
		}
	}
}
