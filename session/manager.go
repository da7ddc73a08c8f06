// Package session holds the authenticated session: the token pair returned by
// login plus the identity decoded from the access token. The persisted slot
// is the source of truth; screens re-read it instead of sharing references.
package session

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/store"
)

type Manager struct {
	kv  store.KV
	log *zap.Logger
}

func NewManager(kv store.KV, log *zap.Logger) *Manager {
	return &Manager{kv: kv, log: log}
}

// Set decodes the access token and persists the token pair together with the
// reduced identity projection. A token that does not decode is rejected; no
// session is created from it.
func (m *Manager) Set(ctx context.Context, clientID string, pair models.TokenPair) (*models.Session, error) {
	claims, err := DecodeAccessToken(pair.AccessToken)
	if err != nil {
		return nil, err
	}

	sess := &models.Session{
		Identity: models.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		},
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    claims.ExpiresAt,
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := m.kv.Set(ctx, store.SessionKey(clientID), data); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads the persisted session. Absent or corrupt state yields (nil, nil):
// a session that cannot be decoded is treated as no session at all.
func (m *Manager) Get(ctx context.Context, clientID string) (*models.Session, error) {
	data, err := m.kv.Get(ctx, store.SessionKey(clientID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		m.log.Warn("Discarding corrupt session state", zap.String("client_id", clientID), zap.Error(err))
		_ = m.kv.Delete(ctx, store.SessionKey(clientID))
		return nil, nil
	}
	if sess.AccessToken == "" || sess.Role == "" {
		return nil, nil
	}
	return &sess, nil
}

// Clear destroys the session. The cart is left intact; logging out does not
// empty a cart.
func (m *Manager) Clear(ctx context.Context, clientID string) error {
	return m.kv.Delete(ctx, store.SessionKey(clientID))
}

// Fresh returns the session only if it exists and has not expired. An expired
// session is destroyed before returning, so stale tokens are never reused for
// a mutating call.
func (m *Manager) Fresh(ctx context.Context, clientID string, now time.Time) (*models.Session, error) {
	sess, err := m.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if sess.Expired(now) {
		m.log.Info("Session expired", zap.String("client_id", clientID), zap.Int64("user_id", sess.UserID))
		_ = m.Clear(ctx, clientID)
		return nil, nil
	}
	return sess, nil
}
