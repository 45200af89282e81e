// Package focus implements the focus-transition protocol: every time the
// active window changes, the previously adjusted process is restored and
// the newly focused one is adjusted, with a single-slot record in between.
package focus

import (
	"sync"
	"time"

	"github.com/focusnice/focusnice/internal/config"
	"github.com/focusnice/focusnice/internal/logger"
	"github.com/focusnice/focusnice/internal/priority"
)

// Resolver resolves the focused window and its owning process id. The X11
// client implements it; tests substitute a fake.
type Resolver interface {
	// ActiveWindow returns the focused window id, or false when no
	// window holds focus.
	ActiveWindow() (uint32, bool)
	// WindowPID returns the pid owning win, or 0 when unknown.
	WindowPID(win uint32) int
}

// Transition describes one completed (or attempted) priority adjustment.
type Transition struct {
	Window uint32    `json:"window"`
	PID    int       `json:"pid"`
	From   int       `json:"from"`
	To     int       `json:"to"`
	At     time.Time `json:"at"`
}

// Handler drives the restore-before-acquire protocol. It is invoked once
// per qualifying focus-change event, strictly sequentially, from the event
// loop. The mutex only guards the published snapshot and subscriber list
// read by the status API.
type Handler struct {
	res   Resolver
	store *priority.Store
	ctl   priority.Controller
	prio  config.Priority

	mu        sync.RWMutex
	last      *Transition
	listeners []chan Transition
}

// NewHandler wires a handler over a resolver, the single-slot store, and
// the priority controller.
func NewHandler(res Resolver, store *priority.Store, ctl priority.Controller, prio config.Priority) *Handler {
	return &Handler{
		res:   res,
		store: store,
		ctl:   ctl,
		prio:  prio,
	}
}

// HandleFocusChange runs one focus transition:
//
//  1. restore the previous process unconditionally (no-op when idle),
//  2. resolve the active window, then its pid,
//  3. record the process's current niceness,
//  4. apply the configured adjustment.
//
// Any failure before the record is established leaves the store empty, so
// the next Restore — from here, or from the signal path — never targets a
// process whose priority was not actually read.
func (h *Handler) HandleFocusChange() {
	h.store.Restore()

	win, ok := h.res.ActiveWindow()
	if !ok {
		return
	}

	pid := h.res.WindowPID(win)
	if pid == 0 {
		return
	}

	orig, err := h.store.Acquire(pid)
	if err != nil {
		return
	}

	target := h.prio.Target(orig)

	log := logger.WithComponent("focus")
	log.Info().
		Int("pid", pid).
		Int("from", orig).
		Int("to", target).
		Msg("setting priority")

	if err := h.ctl.Set(pid, target); err != nil {
		// The record stays active with the original value, so a later
		// restore still reverts correctly.
		log.Error().Err(err).Int("pid", pid).Msg("failed to set priority")
	}

	h.publish(Transition{
		Window: win,
		PID:    pid,
		From:   orig,
		To:     target,
		At:     time.Now(),
	})
}

// Last returns the most recent transition, if any.
func (h *Handler) Last() (Transition, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.last == nil {
		return Transition{}, false
	}
	return *h.last, true
}

// Subscribe returns a channel receiving future transitions.
func (h *Handler) Subscribe() chan Transition {
	ch := make(chan Transition, 8)

	h.mu.Lock()
	h.listeners = append(h.listeners, ch)
	h.mu.Unlock()

	return ch
}

// Unsubscribe removes a channel registered with Subscribe.
func (h *Handler) Unsubscribe(ch chan Transition) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, l := range h.listeners {
		if l == ch {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			close(ch)
			return
		}
	}
}

func (h *Handler) publish(t Transition) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = &t
	for _, l := range h.listeners {
		select {
		case l <- t:
		default:
			// Slow subscriber; drop rather than stall the event loop.
		}
	}
}
