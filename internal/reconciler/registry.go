package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/lucaspalermo/defesapix/internal/metrics"
	"github.com/lucaspalermo/defesapix/internal/models"
)

// Registry keeps at most one Reconciler per charge and forgets it once its
// loops have exited.
type Registry struct {
	poller    StatusPoller
	finalizer Finalizer
	opts      []Option

	mu       sync.Mutex
	sessions map[string]*Reconciler
}

func NewRegistry(poller StatusPoller, finalizer Finalizer, opts ...Option) *Registry {
	return &Registry{
		poller:    poller,
		finalizer: finalizer,
		opts:      opts,
		sessions:  make(map[string]*Reconciler),
	}
}

// Start begins reconciling a charge. Starting a charge that already has a
// session is a no-op.
func (g *Registry) Start(chargeID string, expiresAt time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sessions[chargeID]; ok {
		return
	}

	r := New(chargeID, expiresAt, g.poller, g.finalizer, g.opts...)
	g.sessions[chargeID] = r
	metrics.ActiveSessions.Inc()
	r.Start(context.Background())

	go func() {
		r.Wait()
		g.mu.Lock()
		if g.sessions[chargeID] == r {
			delete(g.sessions, chargeID)
			metrics.ActiveSessions.Dec()
		}
		g.mu.Unlock()
	}()
}

// Confirm forwards an already persisted push to the local session, if any.
func (g *Registry) Confirm(ctx context.Context, chargeID string) bool {
	r, ok := g.get(chargeID)
	if !ok {
		return false
	}
	return r.Confirm(ctx, models.SourcePush)
}

func (g *Registry) Get(chargeID string) (*Reconciler, bool) {
	return g.get(chargeID)
}

func (g *Registry) Stop(chargeID string) bool {
	r, ok := g.get(chargeID)
	if !ok {
		return false
	}
	r.Stop()
	return true
}

// StopAll stops every session and waits for their loops to exit.
func (g *Registry) StopAll() {
	g.mu.Lock()
	sessions := make([]*Reconciler, 0, len(g.sessions))
	for _, r := range g.sessions {
		sessions = append(sessions, r)
	}
	g.mu.Unlock()

	for _, r := range sessions {
		r.Stop()
	}
	for _, r := range sessions {
		r.Wait()
	}
}

func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}

func (g *Registry) get(chargeID string) (*Reconciler, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.sessions[chargeID]
	return r, ok
}
