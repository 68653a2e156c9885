package engine

import (
	"github.com/hibou-project/hibou/internal/mtrace"
	"github.com/hibou-project/hibou/internal/term"
)

// searchNode is (term, remaining multi-trace, depth, cumulative
// loop-unfold count) of spec.md §3 "Search node", plus the bookkeeping
// needed to emit it to a step event sink: a stable ID, its parent's ID,
// and the action that led to it. Remaining is nil for exploration runs,
// which have no multi-trace to guide them.
type searchNode struct {
	id          int
	term        *term.Term
	remaining   *mtrace.MultiTrace
	depth       int
	loopUnfolds int

	parentID       int
	hasParent      bool
	incomingAction term.Action
}
