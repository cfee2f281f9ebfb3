package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"crmviewer/domain"
	"crmviewer/helpers"
	"crmviewer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// currentSessionKey is the store key of the single session of this screen.
const currentSessionKey = "current"

// SessionManager implements interfaces.SessionManager. The session handed over
// by the host is written to the session store, so it survives a restart, and
// turned into a client through the factory.
type SessionManager struct {
	store   interfaces.Cache[domain.Session]
	holder  *ClientHolder
	factory interfaces.ClientFactory
	ttl     time.Duration
	logger  log.Logger
}

// NewSessionManager creates a SessionManager. Panics on nil store, holder, factory or logger.
func NewSessionManager(
	store interfaces.Cache[domain.Session],
	holder *ClientHolder,
	factory interfaces.ClientFactory,
	ttl time.Duration,
	logger log.Logger,
) *SessionManager {
	return &SessionManager{
		store:   helpers.NilPanic(store, "service.session.go: session store is required"),
		holder:  helpers.NilPanic(holder, "service.session.go: client holder is required"),
		factory: helpers.NilPanic(factory, "service.session.go: client factory is required"),
		ttl:     ttl,
		logger:  log.WithPrefix(helpers.NilPanic(logger, "service.session.go: logger is required"), "component", "SessionManager"),
	}
}

// Login implements interfaces.SessionManager.
// Returns bad_parameter for a session without access token or with an instance URL that is not absolute http(s).
func (m *SessionManager) Login(ctx context.Context, session domain.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}

	client, err := m.factory(session)
	if err != nil {
		return NewBadParameterError("can't create a client for the session", err)
	}
	if err := m.store.WriteValue(ctx, currentSessionKey, session, int(m.ttl.Milliseconds())); err != nil {
		return fmt.Errorf("login failed to store session, err: %w", err)
	}
	m.holder.SetClientUntil(client, m.deadline())

	level.Info(m.logger).Log("msg", "Session started", "instance_url", session.InstanceURL, "user_id", session.UserID)
	return nil
}

// Logout implements interfaces.SessionManager. The client is dropped even when the store fails.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.holder.ClearClient()
	if err := m.store.DeleteValue(ctx, currentSessionKey); err != nil {
		return fmt.Errorf("logout failed to delete session, err: %w", err)
	}

	level.Info(m.logger).Log("msg", "Session ended")
	return nil
}

// Current implements interfaces.SessionManager.
// A session that has expired in the store also drops the client.
func (m *SessionManager) Current(ctx context.Context) (domain.Session, error) {
	if _, ok := m.holder.Client(); !ok {
		return domain.Session{}, NewEntityNotFoundError("no active session", nil)
	}
	session, err := m.store.ReadValue(ctx, currentSessionKey)
	if IsEntityNotFoundError(err) {
		m.holder.ClearClient()
		level.Info(m.logger).Log("msg", "Session expired")
	}
	return session, err
}

// Restore rebuilds the client from the stored session, if any.
//
// Returns: (true, nil) when a session was restored; (false, nil) when none is stored;
// (false, error) when the store fails or the stored session is unusable.
//
// Called from cmd/main at startup.
func (m *SessionManager) Restore(ctx context.Context) (bool, error) {
	session, err := m.store.ReadValue(ctx, currentSessionKey)
	if IsEntityNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("restore failed to read session, err: %w", err)
	}

	if err := validateSession(session); err != nil {
		return false, fmt.Errorf("restore found an invalid session, err: %w", err)
	}
	client, err := m.factory(session)
	if err != nil {
		return false, fmt.Errorf("restore failed to create a client, err: %w", err)
	}
	m.holder.SetClientUntil(client, m.deadline())

	level.Info(m.logger).Log("msg", "Session restored", "instance_url", session.InstanceURL, "user_id", session.UserID)
	return true, nil
}

// deadline is the moment the client expires, matching the store TTL. A non-positive ttl never expires.
func (m *SessionManager) deadline() time.Time {
	if m.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(m.ttl)
}

func validateSession(session domain.Session) error {
	if session.AccessToken == "" {
		return NewBadParameterError("access_token is required", nil)
	}
	u, err := url.Parse(session.InstanceURL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return NewBadParameterError(fmt.Sprintf("instance_url %q is not an absolute http(s) URL", session.InstanceURL), err)
	}
	return nil
}
