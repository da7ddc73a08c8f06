package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientIDKey is the gin context key for the client's state namespace.
const ClientIDKey = "clientID"

const clientCookie = "sid"

// ClientID assigns every caller a stable client ID via cookie, the namespace
// for its persisted session and cart slots. One client per namespace is
// assumed; concurrent callers sharing a cookie race last-writer-wins.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(clientCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(clientCookie, id, 90*24*3600, "/", "", false, true)
		}
		c.Set(ClientIDKey, id)
		c.Next()
	}
}

// GetClientID extracts the client ID from the gin context.
func GetClientID(c *gin.Context) (string, error) {
	val, exists := c.Get(ClientIDKey)
	if !exists {
		return "", errors.New("client ID not found in context")
	}
	id, ok := val.(string)
	if !ok || id == "" {
		return "", errors.New("client ID has invalid type in context")
	}
	return id, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message, "redirect": "/login"})
}
