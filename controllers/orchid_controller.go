package controllers

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// CatalogAPI is the slice of the backend client the catalog screens use.
type CatalogAPI interface {
	Orchids(ctx context.Context, token string) ([]models.Orchid, error)
	Orchid(ctx context.Context, token string, id int64) (*models.Orchid, error)
}

type OrchidController struct {
	api      CatalogAPI
	sessions *session.Manager
}

func NewOrchidController(api CatalogAPI, sessions *session.Manager) *OrchidController {
	return &OrchidController{api: api, sessions: sessions}
}

// token returns the caller's access token when a fresh session exists;
// browsing works anonymously too.
func (oc *OrchidController) token(c *gin.Context) string {
	clientID, err := middleware.GetClientID(c)
	if err != nil {
		return ""
	}
	sess, err := oc.sessions.Fresh(c.Request.Context(), clientID, time.Now())
	if err != nil || sess == nil {
		return ""
	}
	return sess.AccessToken
}

// List returns the catalog sorted by orchid name.
func (oc *OrchidController) List(c *gin.Context) {
	orchids, err := oc.api.Orchids(c.Request.Context(), oc.token(c))
	if err != nil {
		respondUpstream(c, oc.sessions, err)
		return
	}

	sort.Slice(orchids, func(i, j int) bool {
		return orchids[i].OrchidName < orchids[j].OrchidName
	})
	c.JSON(http.StatusOK, orchids)
}

// Detail returns a single orchid.
func (oc *OrchidController) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orchid ID."})
		return
	}

	orchid, err := oc.api.Orchid(c.Request.Context(), oc.token(c), id)
	if err != nil {
		respondUpstream(c, oc.sessions, err)
		return
	}
	c.JSON(http.StatusOK, orchid)
}
