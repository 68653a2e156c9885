package term

import (
	"fmt"

	"github.com/hibou-project/hibou/internal/signature"
)

// ActionKind distinguishes emission from reception (spec.md §3).
type ActionKind uint8

const (
	Emission ActionKind = iota
	Reception
)

func (k ActionKind) String() string {
	if k == Emission {
		return "!"
	}
	return "?"
}

// Action is a single observable event lifeline!message or lifeline?message.
type Action struct {
	Kind     ActionKind
	Lifeline signature.ID
	Message  signature.ID
}

// Render writes the action in a!m / a?m form using sig to resolve names.
func (a Action) Render(sig *signature.Signature) string {
	return fmt.Sprintf("%s%s%s", sig.Lifeline(a.Lifeline), a.Kind, sig.Message(a.Message))
}

// Equal is plain value equality; Action has no pointer fields.
func (a Action) Equal(b Action) bool {
	return a.Kind == b.Kind && a.Lifeline == b.Lifeline && a.Message == b.Message
}
