// Package session holds the admin's client-side login state: a bearer
// token and username persisted under the same keys the web client used.
package session

import (
	"context"
	"encoding/json"
)

const (
	tokenKey = "admin_token"
	userKey  = "admin_user"
)

// LoginAPI is the slice of the resource service the session flow needs.
type LoginAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type storedUser struct {
	Username string `json:"username"`
}

type Manager struct {
	api   LoginAPI
	store Store
}

func NewManager(api LoginAPI, store Store) *Manager {
	return &Manager{api: api, store: store}
}

// LogIn authenticates against the backend and persists the session on
// success. A failed login leaves the store untouched.
func (m *Manager) LogIn(ctx context.Context, username, password string) error {
	token, err := m.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := m.store.Set(tokenKey, token); err != nil {
		return err
	}
	raw, err := json.Marshal(storedUser{Username: username})
	if err != nil {
		return err
	}
	return m.store.Set(userKey, string(raw))
}

func (m *Manager) LogOut() error {
	if err := m.store.Delete(tokenKey); err != nil {
		return err
	}
	return m.store.Delete(userKey)
}

// Token implements client.TokenSource; it re-reads the store on every
// call so mutating requests always carry the current session token.
func (m *Manager) Token() string {
	token, _ := m.store.Get(tokenKey)
	return token
}

func (m *Manager) Username() string {
	raw, ok := m.store.Get(userKey)
	if !ok {
		return ""
	}
	var u storedUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return ""
	}
	return u.Username
}

func (m *Manager) LoggedIn() bool {
	return m.Token() != ""
}

// Gate decides whether a view renders. It only checks token presence;
// actual enforcement is the backend's bearer middleware, so the gate is
// a navigation convenience, nothing more.
type Gate struct {
	sessions *Manager
}

func NewGate(sessions *Manager) *Gate {
	return &Gate{sessions: sessions}
}

// Allow reports whether a view may render: public views always, protected
// views only with a session token present.
func (g *Gate) Allow(protected bool) bool {
	if !protected {
		return true
	}
	return g.sessions.LoggedIn()
}
