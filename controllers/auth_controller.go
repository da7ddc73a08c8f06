package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/clients"
	apperrors "github.com/bctDaGithub/orchid-storefront/errors"
	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// AccountAPI is the slice of the backend client the auth screens use.
type AccountAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.TokenPair, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	UpdateAccount(ctx context.Context, token string, req models.UpdateAccountRequest) error
	Account(ctx context.Context, token string, id int64) (*models.Account, error)
}

type AuthController struct {
	sessions *session.Manager
	api      AccountAPI
	log      *zap.Logger
}

func NewAuthController(sessions *session.Manager, api AccountAPI, log *zap.Logger) *AuthController {
	return &AuthController{sessions: sessions, api: api, log: log}
}

// Login exchanges credentials for tokens and persists the session. The
// stored identity comes only from decoding the access token.
func (a *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	clientID, err := middleware.GetClientID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	pair, err := a.api.Login(c.Request.Context(), req)
	if err != nil {
		if clients.IsUnauthorized(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUpstream, err))
		return
	}

	sess, err := a.sessions.Set(c.Request.Context(), clientID, *pair)
	if err != nil {
		if errors.Is(err, session.ErrMalformedToken) {
			a.log.Warn("Login returned an undecodable token", zap.Error(err))
			apperrors.Respond(c, apperrors.ErrInvalidToken)
			return
		}
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	a.log.Info("Logged in", zap.Int64("user_id", sess.UserID), zap.String("role", string(sess.Role)))
	c.JSON(http.StatusOK, gin.H{"user": sess.Identity, "redirect": "/"})
}

// Register creates the account but does not mint a session: a fresh
// registrant logs in like anyone else, so role and identity always come from
// a decoded login token.
func (a *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and a password of at least 8 characters are required."})
		return
	}
	req.IsAvailable = true

	if err := a.api.Register(c.Request.Context(), req); err != nil {
		if !clients.IsUnauthorized(err) {
			var apiErr *clients.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
				c.JSON(http.StatusConflict, gin.H{"error": "Failed to register. Email may already exist."})
				return
			}
		}
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUpstream, err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created. Please log in.", "redirect": "/login"})
}

// Logout destroys the session. The cart slot is untouched.
func (a *AuthController) Logout(c *gin.Context) {
	clientID, err := middleware.GetClientID(c)
	if err == nil {
		_ = a.sessions.Clear(c.Request.Context(), clientID)
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

// Profile returns the logged-in account from the backend.
func (a *AuthController) Profile(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	account, err := a.api.Account(c.Request.Context(), sess.AccessToken, sess.UserID)
	if err != nil {
		respondUpstream(c, a.sessions, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

type updateProfileRequest struct {
	UserName        string `json:"userName" binding:"required,min=2"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfile submits the account command for the logged-in user only; the
// account ID comes from the session, never the form.
func (a *AuthController) UpdateProfile(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and current password are required."})
		return
	}

	payload := models.UpdateAccountRequest{
		ID:              sess.UserID,
		UserName:        req.UserName,
		Email:           sess.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		IsAvailable:     true,
	}
	if err := a.api.UpdateAccount(c.Request.Context(), sess.AccessToken, payload); err != nil {
		respondUpstream(c, a.sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated."})
}
