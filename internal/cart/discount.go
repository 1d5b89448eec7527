package cart

import (
	"context"
	"errors"
	"sync/atomic"

	"foodrepublic/internal/domain"
)

// ErrStaleLookup marks a membership lookup that resolved after a newer
// one was issued. Its quote must be discarded.
var ErrStaleLookup = errors.New("stale membership lookup")

// Quote is the ephemeral result of a membership lookup.
type Quote struct {
	Percent  int64
	Resolved bool
}

// Apply computes the absolute discount for a total. Unresolved quotes
// yield zero.
func Apply(total int64, q Quote) int64 {
	if !q.Resolved {
		return 0
	}
	return total * q.Percent / 100
}

// LookupFunc fetches the discount percent for a member phone number.
// domain.ErrNotFound means no membership exists.
type LookupFunc func(ctx context.Context, phone string) (int64, error)

// Resolver turns membership lookups into Quotes. Each call gets a
// monotonically increasing sequence number; a lookup that finishes
// after a newer call started is reported stale so the caller drops it.
type Resolver struct {
	lookup LookupFunc
	seq    atomic.Uint64
}

func NewResolver(lookup LookupFunc) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve fetches a quote for the given phone number. Missing
// memberships and lookup failures both degrade to an unresolved quote;
// the error distinguishes the causes for user notification.
func (r *Resolver) Resolve(ctx context.Context, phone string) (Quote, error) {
	token := r.seq.Add(1)

	percent, err := r.lookup(ctx, phone)
	if r.seq.Load() != token {
		return Quote{}, ErrStaleLookup
	}
	if errors.Is(err, domain.ErrNotFound) {
		return Quote{}, err
	}
	if err != nil {
		return Quote{}, err
	}
	if percent < 0 || percent > 100 {
		return Quote{}, domain.Validation("discount percent out of range")
	}
	return Quote{Percent: percent, Resolved: true}, nil
}
