// Package persist writes whole catalog collections to the key-value store in
// the background. Writes to the same key are ordered and coalesced: only the
// latest pending value of a key is written.
package persist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"mydahanu/directory/internal/domain"
	"mydahanu/directory/internal/kv"
	"mydahanu/directory/internal/metrics"
)

var ErrClosed = errors.New("persister closed")

type pendingWrite struct {
	value   string
	waiters []chan error
}

type Persister struct {
	store        kv.Store
	limiter      ratelimit.Limiter
	writeTimeout time.Duration

	mu      sync.Mutex
	pending map[string]*pendingWrite
	order   []string // keys in first-enqueued order
	busy    bool
	closed  bool
	idle    []chan struct{}

	wake      chan struct{}
	stop      chan struct{}
	done      chan struct{}
	startOnce sync.Once
}

type Option func(*Persister)

// WithMaxWritesPerSecond throttles store writes. n <= 0 means unlimited.
func WithMaxWritesPerSecond(n int) Option {
	return func(p *Persister) {
		if n > 0 {
			p.limiter = ratelimit.New(n)
		}
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(p *Persister) {
		if d > 0 {
			p.writeTimeout = d
		}
	}
}

func New(store kv.Store, opts ...Option) *Persister {
	p := &Persister{
		store:        store,
		limiter:      ratelimit.NewUnlimited(),
		writeTimeout: 10 * time.Second,
		pending:      make(map[string]*pendingWrite),
		wake:         make(chan struct{}, 1),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the background writer. Calling it more than once is a no-op.
func (p *Persister) Start() {
	p.startOnce.Do(func() {
		go p.run()
	})
}

// Enqueue schedules rec to be written and returns immediately. The value is
// serialized before returning, so later changes to rec are not observed.
// Failures are logged and otherwise dropped.
func (p *Persister) Enqueue(rec domain.Record) {
	key := rec.RecordKey()
	value, err := rec.RecordValue()
	if err != nil {
		log.Errorf("❌ Failed to serialize %s: %v", key, err)
		metrics.PersistWrites.WithLabelValues(key, metrics.ResultError).Inc()
		return
	}

	if !p.enqueue(key, string(value), nil) {
		log.Warnf("⚠️ Dropped write of %s: persister closed", key)
	}
}

// Save schedules rec and waits until it has been written.
func (p *Persister) Save(ctx context.Context, rec domain.Record) error {
	key := rec.RecordKey()
	value, err := rec.RecordValue()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	done := make(chan error, 1)
	if !p.enqueue(key, string(value), done) {
		return ErrClosed
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Flush waits until every write enqueued so far has been attempted.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	if len(p.pending) == 0 && !p.busy {
		p.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	p.idle = append(p.idle, ch)
	p.mu.Unlock()

	p.signal()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains pending writes and stops the writer. Later writes are refused.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.Start()
	close(p.stop)

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Persister) enqueue(key, value string, done chan error) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}

	w, ok := p.pending[key]
	if !ok {
		w = &pendingWrite{}
		p.pending[key] = w
		p.order = append(p.order, key)
	}
	w.value = value
	if done != nil {
		w.waiters = append(w.waiters, done)
	}
	metrics.PersistPending.Set(float64(len(p.pending)))
	p.mu.Unlock()

	p.signal()
	return true
}

func (p *Persister) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Persister) run() {
	defer close(p.done)

	for {
		p.drain()

		select {
		case <-p.wake:
		case <-p.stop:
			p.drain()
			return
		}
	}
}

func (p *Persister) drain() {
	for {
		key, w, ok := p.next()
		if !ok {
			return
		}
		p.write(key, w)
	}
}

func (p *Persister) next() (string, *pendingWrite, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.order) == 0 {
		p.busy = false
		for _, ch := range p.idle {
			close(ch)
		}
		p.idle = nil
		return "", nil, false
	}

	key := p.order[0]
	p.order = p.order[1:]
	w := p.pending[key]
	delete(p.pending, key)
	p.busy = true
	metrics.PersistPending.Set(float64(len(p.pending)))

	return key, w, true
}

func (p *Persister) write(key string, w *pendingWrite) {
	p.limiter.Take()

	ctx, cancel := context.WithTimeout(context.Background(), p.writeTimeout)
	defer cancel()

	start := time.Now()
	err := p.store.Set(ctx, key, w.value)
	metrics.PersistDuration.WithLabelValues(key).Observe(time.Since(start).Seconds())

	if err != nil {
		log.Errorf("❌ Failed to persist %s: %v", key, err)
		metrics.PersistWrites.WithLabelValues(key, metrics.ResultError).Inc()
	} else {
		log.Debugf("💾 Persisted %s (%d bytes)", key, len(w.value))
		metrics.PersistWrites.WithLabelValues(key, metrics.ResultOK).Inc()
	}

	for _, ch := range w.waiters {
		ch <- err
	}
}
