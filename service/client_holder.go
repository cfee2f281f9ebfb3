package service

import (
	"sync"
	"time"

	"crmviewer/interfaces"
)

// ClientHolder implements interfaces.ClientProvider. It keeps the authenticated
// client handed over by the host; the client is swapped on login and dropped on
// logout or once its deadline has passed.
type ClientHolder struct {
	mu        sync.RWMutex
	client    interfaces.RestClient
	expiresAt time.Time
	now       func() time.Time
}

// NewClientHolder creates an empty ClientHolder.
func NewClientHolder() *ClientHolder {
	return &ClientHolder{now: time.Now}
}

// Client implements interfaces.ClientProvider. An expired client is reported as absent.
func (h *ClientHolder) Client() (interfaces.RestClient, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.client == nil || h.expired() {
		return nil, false
	}
	return h.client, true
}

// SetClient replaces the current client, without deadline.
func (h *ClientHolder) SetClient(client interfaces.RestClient) {
	h.SetClientUntil(client, time.Time{})
}

// SetClientUntil replaces the current client; it is dropped after expiresAt. A zero expiresAt never expires.
func (h *ClientHolder) SetClientUntil(client interfaces.RestClient, expiresAt time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.client = client
	h.expiresAt = expiresAt
}

// ClearClient drops the current client.
func (h *ClientHolder) ClearClient() {
	h.SetClient(nil)
}

func (h *ClientHolder) expired() bool {
	return !h.expiresAt.IsZero() && !h.now().Before(h.expiresAt)
}
