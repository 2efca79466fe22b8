// Package reconciler drives one pending charge to PAID or EXPIRED.
//
// Two signals may confirm a charge: the poll loop asking the gateway every few
// seconds, and a push notification delivered through Confirm. Whichever arrives
// first wins; the other is a no-op. A countdown loop expires the charge when its
// window closes while still PENDING.
package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/facebookgo/clock"
	"github.com/lucaspalermo/defesapix/internal/metrics"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPollInterval = 3 * time.Second
	countdownTick       = time.Second
)

type StatusPoller interface {
	GetChargeStatus(ctx context.Context, chargeID string) (models.GatewayStatus, error)
}

// Finalizer persists terminal transitions. Both writes must be no-ops when the
// durable record is already terminal.
type Finalizer interface {
	MarkPaid(ctx context.Context, chargeID string, source models.ConfirmationSource, at time.Time) (models.MarkPaidResult, error)
	MarkExpired(ctx context.Context, chargeID string, at time.Time) (models.ChargeStatus, bool, error)
}

type Option func(*Reconciler)

func WithClock(c clock.Clock) Option {
	return func(r *Reconciler) { r.clock = c }
}

func WithPollInterval(d time.Duration) Option {
	return func(r *Reconciler) { r.pollInterval = d }
}

// OnPaid is called once, from whichever goroutine made the transition.
func OnPaid(fn func(chargeID string, source models.ConfirmationSource)) Option {
	return func(r *Reconciler) { r.onPaid = fn }
}

func OnExpired(fn func(chargeID string)) Option {
	return func(r *Reconciler) { r.onExpired = fn }
}

type Reconciler struct {
	chargeID  string
	expiresAt time.Time
	poller    StatusPoller
	finalizer Finalizer

	clock        clock.Clock
	pollInterval time.Duration
	onPaid       func(string, models.ConfirmationSource)
	onExpired    func(string)

	// final serializes terminal decisions together with their durable write.
	final sync.Mutex
	mu    sync.RWMutex
	state models.ChargeStatus

	done     chan struct{}
	doneOnce sync.Once
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func New(chargeID string, expiresAt time.Time, poller StatusPoller, finalizer Finalizer, opts ...Option) *Reconciler {
	r := &Reconciler{
		chargeID:     chargeID,
		expiresAt:    expiresAt,
		poller:       poller,
		finalizer:    finalizer,
		clock:        clock.New(),
		pollInterval: DefaultPollInterval,
		state:        models.ChargeStatusPending,
		done:         make(chan struct{}),
		cancel:       func() {},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Start launches the poll and countdown loops. Tickers are created before
// Start returns so a mock clock advanced right after it is observed.
func (r *Reconciler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	poll := r.clock.Ticker(r.pollInterval)
	countdown := r.clock.Ticker(countdownTick)

	r.wg.Add(2)
	go r.pollLoop(ctx, poll)
	go r.countdownLoop(ctx, countdown)
}

// Stop ends the local loops. The charge itself is left untouched and later
// pushes are still recorded by the durable store.
func (r *Reconciler) Stop() {
	r.mu.RLock()
	cancel := r.cancel
	r.mu.RUnlock()
	cancel()
}

func (r *Reconciler) Wait() {
	r.wg.Wait()
}

// Done is closed once the charge reaches a terminal state.
func (r *Reconciler) Done() <-chan struct{} {
	return r.done
}

func (r *Reconciler) ChargeID() string {
	return r.chargeID
}

func (r *Reconciler) State() models.ChargeStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *Reconciler) RemainingSeconds() int {
	if r.State() != models.ChargeStatusPending {
		return 0
	}
	return models.RemainingSeconds(r.expiresAt, r.clock.Now())
}

// Confirm applies a confirming signal. It returns false when the charge had
// already left PENDING. Push confirmations are expected to be persisted by the
// caller; poll confirmations are persisted here, and a failed write leaves the
// charge PENDING for the next poll.
func (r *Reconciler) Confirm(ctx context.Context, source models.ConfirmationSource) bool {
	r.final.Lock()
	if r.State() != models.ChargeStatusPending {
		r.final.Unlock()
		metrics.ReconciliationNoopsTotal.WithLabelValues(string(source)).Inc()
		logrus.WithFields(logrus.Fields{"charge_id": r.chargeID, "source": source}).
			Debug("confirmation after terminal state ignored")
		return false
	}

	to := models.ChargeStatusPaid
	if source == models.SourcePoll && r.finalizer != nil {
		res, err := r.finalizer.MarkPaid(context.WithoutCancel(ctx), r.chargeID, source, r.clock.Now())
		if err != nil {
			// stay PENDING; the next poll retries the write
			r.final.Unlock()
			pollErr := &TransientPollError{ChargeID: r.chargeID, Err: err}
			metrics.GatewayPollErrorsTotal.Inc()
			logrus.WithFields(logrus.Fields{"charge_id": r.chargeID, "source": source}).
				Errorf("error persisting paid charge: %s", pollErr.Error())
			return false
		}
		if res.Status == models.ChargeStatusExpired {
			to = models.ChargeStatusExpired
		}
	}
	r.setState(to)
	r.final.Unlock()

	r.finish(to, source)
	return to == models.ChargeStatusPaid
}

func (r *Reconciler) expire(ctx context.Context) {
	r.final.Lock()
	if r.State() != models.ChargeStatusPending {
		r.final.Unlock()
		return
	}

	to := models.ChargeStatusExpired
	if r.finalizer != nil {
		status, _, err := r.finalizer.MarkExpired(context.WithoutCancel(ctx), r.chargeID, r.clock.Now())
		switch {
		case err != nil:
			logrus.WithField("charge_id", r.chargeID).Errorf("error persisting expired charge: %s", err.Error())
		case status == models.ChargeStatusPaid:
			// a push landed durably before its local confirmation
			to = models.ChargeStatusPaid
		}
	}
	r.setState(to)
	r.final.Unlock()

	r.finish(to, models.SourcePush)
}

func (r *Reconciler) setState(s models.ChargeStatus) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

func (r *Reconciler) finish(to models.ChargeStatus, source models.ConfirmationSource) {
	r.doneOnce.Do(func() {
		close(r.done)
		r.Stop()
	})

	log := logrus.WithFields(logrus.Fields{"charge_id": r.chargeID, "status": to})
	switch to {
	case models.ChargeStatusPaid:
		log.WithField("source", source).Info("charge paid")
		if r.onPaid != nil {
			r.onPaid(r.chargeID, source)
		}
	case models.ChargeStatusExpired:
		log.Info("charge expired")
		if r.onExpired != nil {
			r.onExpired(r.chargeID)
		}
	}
}

func (r *Reconciler) pollLoop(ctx context.Context, ticker *clock.Ticker) {
	defer r.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.C:
			r.poll(ctx)
		}
	}
}

func (r *Reconciler) poll(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, r.pollInterval)
	defer cancel()

	status, err := r.poller.GetChargeStatus(pctx, r.chargeID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		pollErr := &TransientPollError{ChargeID: r.chargeID, Err: err}
		metrics.GatewayPollErrorsTotal.Inc()
		logrus.WithField("charge_id", r.chargeID).Warn(pollErr.Error())
		return
	}

	if status.IsPaid() {
		r.Confirm(ctx, models.SourcePoll)
	}
}

func (r *Reconciler) countdownLoop(ctx context.Context, ticker *clock.Ticker) {
	defer r.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.C:
			if !r.clock.Now().Before(r.expiresAt) {
				r.expire(ctx)
				return
			}
		}
	}
}
