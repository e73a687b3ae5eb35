package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const DedupKeyPrefix = "dedup:"

// Deduplicator rejects a repeat of the same request signature inside ttl.
// It replaces a process-local map so replays are caught across instances.
type Deduplicator struct {
	store Store
	ttl   time.Duration
}

func NewDeduplicator(store Store, ttl time.Duration) *Deduplicator {
	return &Deduplicator{store: store, ttl: ttl}
}

// Signature hashes the parts into a fixed-length key
func Signature(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Claim reports whether signature is new. A repeat inside the TTL returns false.
func (d *Deduplicator) Claim(ctx context.Context, signature string) (bool, error) {
	return d.store.SetNX(ctx, DedupKeyPrefix+signature, d.ttl)
}

func (d *Deduplicator) TTL() time.Duration {
	return d.ttl
}
