// Package auth implements the admin gate: password check, server-side
// sessions and the signed token carried by the session cookie.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid session token")
)

type Manager struct {
	password   string
	signingKey []byte
	ttl        time.Duration
	store      Store
	now        func() time.Time
}

// NewManager creates a Manager. password is a plain secret or an Argon2id hash,
// signingKey signs session tokens.
func NewManager(password, signingKey string, ttl time.Duration, store Store) *Manager {
	return &Manager{
		password:   password,
		signingKey: []byte(signingKey),
		ttl:        ttl,
		store:      store,
		now:        time.Now,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Login checks the password and opens a session. It returns the signed token
// for the session cookie.
func (m *Manager) Login(ctx context.Context, password string) (string, error) {
	ok, err := CheckPassword(password, m.password)
	if err != nil {
		return "", fmt.Errorf("check password: %w", err)
	} else if !ok {
		return "", ErrInvalidPassword
	}

	now := m.now()
	session := Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, session); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	token, err := m.sign(session)
	if err != nil {
		return "", err
	}

	return token, nil
}

// Authenticated reports whether token belongs to a live session.
func (m *Manager) Authenticated(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	sessionID, err := m.parse(token)
	if errors.Is(err, ErrInvalidToken) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	session, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}

	return session != nil && m.now().Before(session.ExpiresAt), nil
}

// Logout closes the session of token. Unknown or invalid tokens are ignored.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionID, err := m.parse(token)
	if errors.Is(err, ErrInvalidToken) {
		return nil
	} else if err != nil {
		return err
	}

	if err := m.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (m *Manager) sign(session Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

// parse returns the session id of a valid token.
func (m *Manager) parse(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ID == "" {
		return "", ErrInvalidToken
	}

	return claims.ID, nil
}
