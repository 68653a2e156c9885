package frontier

import (
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
)

// Prune returns the term whose language is the subset of t's executions
// that do not involve lifeline l, per spec.md §4.3. An action on a
// lifeline other than l survives unchanged — only an action *on* l is
// undefined. The second return value is false when no such execution
// exists ("undefined" modeled as an explicit absence rather than an
// error or panic, per design notes §9 "Undefined prune").
func Prune(t *term.Term, l signature.ID) (*term.Term, bool) {
	switch t.Kind() {
	case term.KindEmpty:
		return term.Empty, true

	case term.KindAction:
		a := t.Action()
		if a.Lifeline != l {
			return t, true
		}
		return nil, false

	case term.KindBroadcast:
		sender, _, receivers := t.Broadcast()
		if sender == l {
			return nil, false
		}
		for _, r := range receivers {
			if r == l {
				return nil, false
			}
		}
		return t, true

	case term.KindAlt:
		left, right := t.Children()
		pl, okL := Prune(left, l)
		pr, okR := Prune(right, l)
		switch {
		case okL && okR:
			return term.NewAlt(pl, pr), true
		case okL:
			return pl, true
		case okR:
			return pr, true
		default:
			return nil, false
		}

	case term.KindScheduled:
		left, right := t.Children()
		pl, okL := Prune(left, l)
		if !okL {
			return nil, false
		}
		pr, okR := Prune(right, l)
		if !okR {
			return nil, false
		}
		return term.NewScheduled(t.Op(), pl, pr), true

	case term.KindLoop:
		return term.Empty, true

	default:
		panic("frontier: Prune: unhandled term kind")
	}
}
