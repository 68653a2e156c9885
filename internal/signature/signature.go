// Package signature interns lifeline and message identifiers for a single
// interaction model and hands out stable, densely-packed IDs in interning
// order. Everything downstream (Term, Frontier, MultiTrace) refers to
// lifelines and messages only by these IDs.
package signature

import "fmt"

// ID is a stable identifier assigned at interning time. Lifeline IDs and
// Message IDs live in separate namespaces; an ID is only meaningful paired
// with the namespace it came from.
type ID int

// Signature is built once per model and is immutable from the engine's
// point of view after the parser finishes populating it.
type Signature struct {
	lifelines  []string
	lifelineIx map[string]ID
	messages   []string
	messageIx  map[string]ID
}

// New returns an empty Signature ready for interning.
func New() *Signature {
	return &Signature{
		lifelineIx: make(map[string]ID),
		messageIx:  make(map[string]ID),
	}
}

// InternLifeline returns the stable ID for name, assigning a fresh one the
// first time name is seen.
func (s *Signature) InternLifeline(name string) ID {
	if id, ok := s.lifelineIx[name]; ok {
		return id
	}
	id := ID(len(s.lifelines))
	s.lifelines = append(s.lifelines, name)
	s.lifelineIx[name] = id
	return id
}

// InternMessage returns the stable ID for name, assigning a fresh one the
// first time name is seen.
func (s *Signature) InternMessage(name string) ID {
	if id, ok := s.messageIx[name]; ok {
		return id
	}
	id := ID(len(s.messages))
	s.messages = append(s.messages, name)
	s.messageIx[name] = id
	return id
}

// LookupLifeline returns the ID already interned for name, if any.
func (s *Signature) LookupLifeline(name string) (ID, bool) {
	id, ok := s.lifelineIx[name]
	return id, ok
}

// LookupMessage returns the ID already interned for name, if any.
func (s *Signature) LookupMessage(name string) (ID, bool) {
	id, ok := s.messageIx[name]
	return id, ok
}

// Lifeline renders id back to its source name. Panics on an out-of-range ID
// since that can only happen from a programming error upstream (the parser
// or test fixture handed out an ID it never interned).
func (s *Signature) Lifeline(id ID) string {
	if int(id) < 0 || int(id) >= len(s.lifelines) {
		panic(fmt.Sprintf("signature: lifeline id %d out of range", id))
	}
	return s.lifelines[id]
}

// Message renders id back to its source name.
func (s *Signature) Message(id ID) string {
	if int(id) < 0 || int(id) >= len(s.messages) {
		panic(fmt.Sprintf("signature: message id %d out of range", id))
	}
	return s.messages[id]
}

// NumLifelines reports how many distinct lifelines have been interned.
func (s *Signature) NumLifelines() int { return len(s.lifelines) }

// NumMessages reports how many distinct messages have been interned.
func (s *Signature) NumMessages() int { return len(s.messages) }

// AllLifelines returns every lifeline ID in interning order.
func (s *Signature) AllLifelines() []ID {
	ids := make([]ID, len(s.lifelines))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
