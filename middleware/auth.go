package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// SessionKey is the gin context key holding the caller's session.
const SessionKey = "session"

// RequireSession loads the persisted session for the client and rejects the
// request when it is absent or expired. Expiry destroys the session before
// rejecting, so stale tokens never reach a handler.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := GetClientID(c)
		if err != nil {
			abortUnauthorized(c, "Please log in to continue.")
			return
		}

		sess, err := sessions.Fresh(c.Request.Context(), clientID, time.Now())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		if sess == nil {
			abortUnauthorized(c, "Please log in to continue.")
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// RequireCapability gates a route group on the centralized capability check.
// Must run after RequireSession.
func RequireCapability(cap session.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := GetSession(c)
		if err != nil {
			abortUnauthorized(c, "Please log in to continue.")
			return
		}
		if !session.Can(sess.Role, cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied.", "redirect": "/"})
			return
		}
		c.Next()
	}
}

// GetSession extracts the session placed by RequireSession.
func GetSession(c *gin.Context) (*models.Session, error) {
	val, exists := c.Get(SessionKey)
	if !exists {
		return nil, errNoSession
	}
	sess, ok := val.(*models.Session)
	if !ok || sess == nil {
		return nil, errNoSession
	}
	return sess, nil
}

var errNoSession = &sessionError{"session not found in context"}

type sessionError struct{ msg string }

func (e *sessionError) Error() string { return e.msg }
