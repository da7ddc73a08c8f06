// Package controllers exposes the storefront screens as thin HTTP endpoints:
// form state in, backend calls and store mutations out.
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/bctDaGithub/orchid-storefront/clients"
	apperrors "github.com/bctDaGithub/orchid-storefront/errors"
	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// respondUpstream maps a backend call failure to the user-facing taxonomy:
// 401/403 destroys the session and redirects to login with a distinct
// message; anything else is a generic retryable error.
func respondUpstream(c *gin.Context, sessions *session.Manager, err error) {
	if clients.IsUnauthorized(err) {
		if clientID, idErr := middleware.GetClientID(c); idErr == nil {
			_ = sessions.Clear(c.Request.Context(), clientID)
		}
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrSessionRejected, err))
		return
	}
	apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUpstream, err))
}
