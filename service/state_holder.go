package service

import (
	"context"
	"slices"
	"sync"

	"crmviewer/domain"
	"crmviewer/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Loader produces the list shown on screen, e.g. Repository.ContactNames.
type Loader func(ctx context.Context) ([]string, error)

// StateHolder holds the UI state of the screen. Every transition replaces the
// state as a whole. Fields: logger, inFlight (running loaders); under mu: state.
//
// Concurrent fetches are not deduplicated: the loader that settles last
// overwrites the state, whichever fetch was started last.
type StateHolder struct {
	logger   log.Logger
	inFlight sync.WaitGroup

	mu    sync.RWMutex
	state domain.UIState
}

// NewStateHolder creates a StateHolder in the empty state. Panics on nil logger.
//
// Called from cmd/main once per process; the HTTP handlers share it.
func NewStateHolder(logger log.Logger) *StateHolder {
	return &StateHolder{
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.state_holder.go: logger is required"), "component", "StateHolder"),
	}
}

// Fetch sets the state to loading, then runs load on a new goroutine and replaces the state
// with its data or its error message. load gets a context that keeps ctx values but is never
// cancelled, so the fetch outlives the request that started it.
//
// Returns a channel that is closed once the state has been replaced.
//
// Called from handlers for the contacts, accounts, objects and query fetch endpoints.
func (h *StateHolder) Fetch(ctx context.Context, load Loader) <-chan struct{} {
	h.replace(domain.UIState{Loading: true})

	done := make(chan struct{})
	h.inFlight.Add(1)
	go func() {
		defer h.inFlight.Done()
		defer close(done)

		data, err := load(context.WithoutCancel(ctx))
		if err != nil {
			level.Warn(h.logger).Log("msg", "Fetch failed", "err", err)
			h.replace(domain.UIState{Error: UserMessage(err)})
			return
		}
		if data == nil {
			data = []string{}
		}
		h.replace(domain.UIState{Data: data})
	}()
	return done
}

// Clear resets the state to empty. In-flight fetches are not cancelled and still replace the state when they settle.
func (h *StateHolder) Clear() {
	h.replace(domain.UIState{})
}

// State returns a copy of the current state.
func (h *StateHolder) State() domain.UIState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	state := h.state
	state.Data = slices.Clone(state.Data)
	return state
}

// Wait blocks until every started fetch has settled. Called from cmd/main on shutdown.
func (h *StateHolder) Wait() {
	h.inFlight.Wait()
}

func (h *StateHolder) replace(state domain.UIState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = state
}
