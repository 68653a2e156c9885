package term

import (
	"sync"

	"github.com/hibou-project/hibou/internal/signature"
)

// predicateCache memoizes AvoidsEmpty and InvolvesLifeline by term digest.
// Both predicates are pure and referentially transparent (spec.md §4.1), so
// caching by structural identity is safe even across distinct Term values
// that happen to share a shape (design notes, §9 "Sharing of sub-terms").
type predicateCache struct {
	mu            sync.Mutex
	avoidsEmpty   map[uint64]bool
	involvesLife  map[involvesKey]bool
}

type involvesKey struct {
	digest   uint64
	lifeline signature.ID
}

var cache = &predicateCache{
	avoidsEmpty:  make(map[uint64]bool),
	involvesLife: make(map[involvesKey]bool),
}

// AvoidsEmpty reports whether t has an execution equal to the empty trace
// (spec.md §4.1).
func AvoidsEmpty(t *Term) bool {
	cache.mu.Lock()
	if v, ok := cache.avoidsEmpty[t.digest]; ok {
		cache.mu.Unlock()
		return v
	}
	cache.mu.Unlock()

	v := computeAvoidsEmpty(t)

	cache.mu.Lock()
	cache.avoidsEmpty[t.digest] = v
	cache.mu.Unlock()
	return v
}

func computeAvoidsEmpty(t *Term) bool {
	switch t.kind {
	case KindEmpty:
		return true
	case KindAction, KindBroadcast:
		return false
	case KindScheduled:
		return AvoidsEmpty(t.left) && AvoidsEmpty(t.right)
	case KindAlt:
		return AvoidsEmpty(t.left) || AvoidsEmpty(t.right)
	case KindLoop:
		return true
	default:
		panic("term: AvoidsEmpty: unhandled kind")
	}
}

// InvolvesLifeline reports whether some leaf action of t has lifeline l
// (spec.md §4.1).
func InvolvesLifeline(t *Term, l signature.ID) bool {
	key := involvesKey{digest: t.digest, lifeline: l}

	cache.mu.Lock()
	if v, ok := cache.involvesLife[key]; ok {
		cache.mu.Unlock()
		return v
	}
	cache.mu.Unlock()

	v := computeInvolvesLifeline(t, l)

	cache.mu.Lock()
	cache.involvesLife[key] = v
	cache.mu.Unlock()
	return v
}

func computeInvolvesLifeline(t *Term, l signature.ID) bool {
	switch t.kind {
	case KindEmpty:
		return false
	case KindAction:
		return t.action.Lifeline == l
	case KindBroadcast:
		if t.sender == l {
			return true
		}
		for _, r := range t.receivers {
			if r == l {
				return true
			}
		}
		return false
	case KindScheduled, KindAlt:
		return InvolvesLifeline(t.left, l) || InvolvesLifeline(t.right, l)
	case KindLoop:
		return InvolvesLifeline(t.left, l)
	default:
		panic("term: InvolvesLifeline: unhandled kind")
	}
}
