package term

import (
	"encoding/binary"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/minio/highwayhash"
)

// hashKey is a fixed 32-byte HighwayHash key. Digests only need to be
// stable within a process lifetime (they key an in-memory cache, never a
// persisted format), so a constant key is fine — this mirrors
// viant/linager/inspector/graph.Hash, which uses the same fixed-key
// pattern for its own node-identity hashing.
var hashKey = []byte("HIBOU-TERM-DIGEST-KEY-0123456789")

// digestEmpty, digestAction, digestBroadcast and digestBinary compute a
// Term's structural digest bottom-up at construction time: every
// constructor in term.go folds its children's already-computed digests in,
// so two structurally-equal terms always hash identically regardless of
// how much sub-term sharing happened to build them.

func sum(parts ...[]byte) uint64 {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		// hashKey is a fixed 32-byte constant; New64 only fails on bad key
		// length, which would be a programming error caught instantly by
		// any test run.
		panic(err)
	}
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum64()
}

func u64(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

func digestEmpty() uint64 {
	return sum([]byte{byte(KindEmpty)})
}

func digestAction(a Action) uint64 {
	return sum([]byte{byte(KindAction), byte(a.Kind)}, u64(uint64(a.Lifeline)), u64(uint64(a.Message)))
}

func digestBroadcast(sender, message signature.ID, receivers []signature.ID) uint64 {
	parts := [][]byte{{byte(KindBroadcast)}, u64(uint64(sender)), u64(uint64(message))}
	for _, r := range receivers {
		parts = append(parts, u64(uint64(r)))
	}
	return sum(parts...)
}

func digestBinary(kind Kind, op uint64, left, right uint64) uint64 {
	return sum([]byte{byte(kind)}, u64(op), u64(left), u64(right))
}
