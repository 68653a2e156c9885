// Package strategy defines the open-set discipline used by the
// analysis and exploration engines (spec.md §4.4, design notes §9
// "Strategy plug-in"). Split out from internal/engine so that
// internal/model's Options can name a Strategy without importing the
// engine package itself.
package strategy

import "fmt"

// Strategy selects the search engine's node-expansion order. Strategies
// affect only expansion order, never the verdict of a terminating
// search (spec.md §4.4).
type Strategy uint8

const (
	BFS Strategy = iota
	DFS
	HCS
)

func (s Strategy) String() string {
	switch s {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case HCS:
		return "HCS"
	default:
		return "unknown"
	}
}

// MarshalYAML and MarshalJSON render the strategy as its name rather
// than its numeric tag, so options records round-trip in the form a
// human would write them (matching spec.md §6.1's literal "BFS"/"DFS"/
// "HCS" vocabulary).
func (s Strategy) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s Strategy) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Strategy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s *Strategy) UnmarshalJSON(data []byte) error {
	name := string(data)
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		name = name[1 : len(name)-1]
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Parse resolves a strategy by name, defaulting to BFS on an empty
// string (spec.md §6.1: "default BFS").
func Parse(name string) (Strategy, error) {
	switch name {
	case "", "BFS":
		return BFS, nil
	case "DFS":
		return DFS, nil
	case "HCS":
		return HCS, nil
	default:
		return BFS, fmt.Errorf("strategy: unknown strategy %q", name)
	}
}
