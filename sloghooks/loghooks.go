// Package sloghooks implements cookiewire.Hooks on top of log/slog, with
// optional sampling so a flood of tampered cookies cannot flood the logs.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/cookiewire"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DroppedEvery uint64
	// Optional cookie-name redactor. Defaults to a SHA-256 prefix, since
	// names themselves can identify users in some deployments.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	droppedCtr atomic.Uint64
}

var _ cookiewire.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(name string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(name)
	}
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CookieDropped(name, reason string) {
	if h.l == nil || !sample(h.opts.DroppedEvery, &h.droppedCtr) {
		return
	}
	h.l.Debug("cookiewire.cookie_dropped",
		"name", h.redact(name),
		"reason", reason)
}

func (h *Hooks) ValueTooLong(name string, encodedLen int) {
	if h.l == nil {
		return
	}
	h.l.Warn("cookiewire.value_too_long",
		"name", h.redact(name),
		"encoded_len", encodedLen)
}
