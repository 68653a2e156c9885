package engine

import "github.com/hibou-project/hibou/internal/engine/strategy"

// nodeQueue is the open-set abstraction of design notes §9 ("Strategy
// plug-in... model as an ordered-queue abstraction parameterized by
// insertion policy. No global state."). pushChildren receives an
// expanded node's children together, in canonical Frontier order, so
// strategies that care about "first child vs. later siblings" (HCS) can
// tell them apart without inspecting engine internals.
type nodeQueue interface {
	pushChildren(children []*searchNode)
	pop() (*searchNode, bool)
	len() int
}

func newQueue(s strategy.Strategy) nodeQueue {
	switch s {
	case strategy.DFS:
		return &dfsQueue{}
	case strategy.HCS:
		return &hcsQueue{}
	default:
		return &bfsQueue{}
	}
}

// bfsQueue is a plain FIFO: children are visited in the order their
// parents were visited, breadth layer by breadth layer.
type bfsQueue struct {
	items []*searchNode
	head  int
}

func (q *bfsQueue) pushChildren(children []*searchNode) {
	q.items = append(q.items, children...)
}

func (q *bfsQueue) pop() (*searchNode, bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	return n, true
}

func (q *bfsQueue) len() int { return len(q.items) - q.head }

// dfsQueue is a plain LIFO stack. Children are pushed in reverse order
// so that popping from the end visits them in their original (canonical
// Frontier) order before backtracking to siblings pushed earlier.
type dfsQueue struct {
	items []*searchNode
}

func (q *dfsQueue) pushChildren(children []*searchNode) {
	for i := len(children) - 1; i >= 0; i-- {
		q.items = append(q.items, children[i])
	}
}

func (q *dfsQueue) pop() (*searchNode, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	n := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return n, true
}

func (q *dfsQueue) len() int { return len(q.items) }

// hcsQueue implements the hybrid strategy: depth-first along the
// current branch (a LIFO stack) until that branch is exhausted, then
// breadth-first over whatever remains (a FIFO backlog). Of each batch of
// children pushed together, the first continues the active branch on
// the stack; the rest join the backlog, preserving their relative order
// for when the stack eventually drains.
type hcsQueue struct {
	stack   []*searchNode
	backlog []*searchNode
	bHead   int
}

func (q *hcsQueue) pushChildren(children []*searchNode) {
	if len(children) == 0 {
		return
	}
	q.stack = append(q.stack, children[0])
	q.backlog = append(q.backlog, children[1:]...)
}

func (q *hcsQueue) pop() (*searchNode, bool) {
	if len(q.stack) > 0 {
		n := q.stack[len(q.stack)-1]
		q.stack = q.stack[:len(q.stack)-1]
		return n, true
	}
	if q.bHead < len(q.backlog) {
		n := q.backlog[q.bHead]
		q.backlog[q.bHead] = nil
		q.bHead++
		return n, true
	}
	return nil, false
}

func (q *hcsQueue) len() int {
	return len(q.stack) + len(q.backlog) - q.bHead
}
