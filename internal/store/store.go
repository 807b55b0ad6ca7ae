// Package store records completed question/reply exchanges for the site
// owner. The archive is a server-side operational log, not a conversation
// resume mechanism: the visitor-facing conversation stays in memory on the
// client and is never restored from here.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Exchange sources.
const (
	SourceRemote  = "remote"  // reply came from the completion provider
	SourceApology = "apology" // provider returned no content
)

// Exchange is one completed question/reply round-trip.
type Exchange struct {
	ID        string `json:"id"` // UUID
	Question  string `json:"question"`
	Reply     string `json:"reply"`
	Source    string `json:"source"`
	Timestamp int64  `json:"ts"` // Unix ms
}

// Archive stores exchanges. Writes are best-effort from the caller's point
// of view: a failed write must never fail the chat request that produced it.
type Archive interface {
	Close() error
	Ping(ctx context.Context) error

	AddExchange(ctx context.Context, ex *Exchange) error
	RecentExchanges(ctx context.Context, limit int) ([]Exchange, error)
	CountExchanges(ctx context.Context) (int64, error)
	CountBySource(ctx context.Context, source string) (int64, error)
	LastActivity(ctx context.Context) (*time.Time, error)
}

// memoryCap bounds the in-memory archive; the oldest exchanges are dropped
// past it.
const memoryCap = 1000

// MemoryArchive is the default Archive backend: bounded, in-process, gone on
// restart.
type MemoryArchive struct {
	mu        sync.Mutex
	exchanges []Exchange
}

// NewMemoryArchive creates an empty in-memory archive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{}
}

// Close is a no-op.
func (a *MemoryArchive) Close() error { return nil }

// Ping is a no-op.
func (a *MemoryArchive) Ping(ctx context.Context) error { return nil }

// AddExchange appends an exchange, assigning id and timestamp if unset.
func (a *MemoryArchive) AddExchange(ctx context.Context, ex *Exchange) error {
	stampExchange(ex)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.exchanges = append(a.exchanges, *ex)
	if len(a.exchanges) > memoryCap {
		a.exchanges = a.exchanges[len(a.exchanges)-memoryCap:]
	}
	return nil
}

// RecentExchanges returns up to limit exchanges, newest first.
func (a *MemoryArchive) RecentExchanges(ctx context.Context, limit int) ([]Exchange, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.exchanges)
	if limit > n {
		limit = n
	}
	out := make([]Exchange, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, a.exchanges[i])
	}
	return out, nil
}

// CountExchanges returns the number of stored exchanges.
func (a *MemoryArchive) CountExchanges(ctx context.Context) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int64(len(a.exchanges)), nil
}

// CountBySource returns the number of stored exchanges with the given source.
func (a *MemoryArchive) CountBySource(ctx context.Context, source string) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var count int64
	for _, ex := range a.exchanges {
		if ex.Source == source {
			count++
		}
	}
	return count, nil
}

// LastActivity returns the timestamp of the newest exchange, or nil when the
// archive is empty.
func (a *MemoryArchive) LastActivity(ctx context.Context) (*time.Time, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.exchanges) == 0 {
		return nil, nil
	}
	t := time.UnixMilli(a.exchanges[len(a.exchanges)-1].Timestamp)
	return &t, nil
}

// stampExchange fills in id and timestamp when the caller left them unset.
func stampExchange(ex *Exchange) {
	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	if ex.Timestamp == 0 {
		ex.Timestamp = time.Now().UnixMilli()
	}
}
