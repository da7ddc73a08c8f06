package controllers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/clients"
	"github.com/bctDaGithub/orchid-storefront/controllers"
	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// ---- mock account API ----

type mockAccountAPI struct {
	loginPair   *models.TokenPair
	loginErr    error
	registerErr error
	registered  *models.RegisterRequest
	account     *models.Account
	accountErr  error
	updateErr   error
	updatedWith *models.UpdateAccountRequest
}

func (m *mockAccountAPI) Login(_ context.Context, _ models.LoginRequest) (*models.TokenPair, error) {
	return m.loginPair, m.loginErr
}

func (m *mockAccountAPI) Register(_ context.Context, req models.RegisterRequest) error {
	m.registered = &req
	return m.registerErr
}

func (m *mockAccountAPI) UpdateAccount(_ context.Context, _ string, req models.UpdateAccountRequest) error {
	m.updatedWith = &req
	return m.updateErr
}

func (m *mockAccountAPI) Account(_ context.Context, _ string, _ int64) (*models.Account, error) {
	return m.account, m.accountErr
}

// ---- helpers ----

func signedCustomerToken(t *testing.T, userID int64, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  "buyer@example.com",
		"role":   "CUSTOMER",
		"exp":    exp.Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return s
}

func authRouter(api *mockAccountAPI) (*gin.Engine, *session.Manager) {
	sessions := session.NewManager(newMemKV(), zap.NewNop())
	ac := controllers.NewAuthController(sessions, api, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ClientIDKey, "c1")
		c.Next()
	})
	r.POST("/auth/login", ac.Login)
	r.POST("/auth/register", ac.Register)
	r.POST("/auth/logout", ac.Logout)
	return r, sessions
}

// ---- tests ----

func TestLogin_PersistsDecodedSession(t *testing.T) {
	api := &mockAccountAPI{loginPair: &models.TokenPair{
		AccessToken:  signedCustomerToken(t, 42, time.Now().Add(time.Hour)),
		RefreshToken: "refresh-1",
	}}
	r, sessions := authRouter(api)

	w := doJSON(r, http.MethodPost, "/auth/login", gin.H{"email": "buyer@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)

	sess, err := sessions.Get(context.Background(), "c1")
	assert.NoError(t, err)
	assert.NotNil(t, sess)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, models.RoleCustomer, sess.Role)
	assert.Equal(t, "refresh-1", sess.RefreshToken)
}

func TestLogin_BadCredentials(t *testing.T) {
	api := &mockAccountAPI{loginErr: &clients.APIError{Status: http.StatusUnauthorized, Body: "bad creds"}}
	r, sessions := authRouter(api)

	w := doJSON(r, http.MethodPost, "/auth/login", gin.H{"email": "buyer@example.com", "password": "wrong-pass"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	sess, _ := sessions.Get(context.Background(), "c1")
	assert.Nil(t, sess)
}

func TestLogin_UndecodableTokenCreatesNoSession(t *testing.T) {
	api := &mockAccountAPI{loginPair: &models.TokenPair{AccessToken: "garbage"}}
	r, sessions := authRouter(api)

	w := doJSON(r, http.MethodPost, "/auth/login", gin.H{"email": "buyer@example.com", "password": "secret123"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	sess, _ := sessions.Get(context.Background(), "c1")
	assert.Nil(t, sess, "a token that fails to decode must not produce a session")
}

func TestRegister_CreatesNoSession(t *testing.T) {
	api := &mockAccountAPI{}
	r, sessions := authRouter(api)

	w := doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"userName":        "New Buyer",
		"email":           "new@example.com",
		"currentPassword": "longenough",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotNil(t, api.registered)
	assert.True(t, api.registered.IsAvailable)

	sess, _ := sessions.Get(context.Background(), "c1")
	assert.Nil(t, sess, "registration must not mint a session; identity comes only from login")
}

func TestRegister_ShortPasswordNeverReachesBackend(t *testing.T) {
	api := &mockAccountAPI{}
	r, _ := authRouter(api)

	w := doJSON(r, http.MethodPost, "/auth/register", gin.H{
		"userName":        "New Buyer",
		"email":           "new@example.com",
		"currentPassword": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, api.registered)
}

func TestLogout_DestroysSession(t *testing.T) {
	api := &mockAccountAPI{loginPair: &models.TokenPair{
		AccessToken: signedCustomerToken(t, 42, time.Now().Add(time.Hour)),
	}}
	r, sessions := authRouter(api)

	doJSON(r, http.MethodPost, "/auth/login", gin.H{"email": "buyer@example.com", "password": "secret123"})
	w := doJSON(r, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	sess, _ := sessions.Get(context.Background(), "c1")
	assert.Nil(t, sess)
}
