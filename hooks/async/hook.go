// Package asynchook decouples hook observers from the parse hot path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DroppedEvery: 10, // sample logs: ~every 10th dropped cookie
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	codec, _ := cookiewire.New(cookiewire.Options{
//	    Keys:  cookiewire.NewKeyring(secret),
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/cookiewire"
)

type Hooks struct {
	inner cookiewire.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ cookiewire.Hooks = (*Hooks)(nil)

func New(inner cookiewire.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CookieDropped(name, reason string) {
	h.try(func() { h.inner.CookieDropped(name, reason) })
}
func (h *Hooks) ValueTooLong(name string, encodedLen int) {
	h.try(func() { h.inner.ValueTooLong(name, encodedLen) })
}
