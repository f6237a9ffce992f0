package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownKey means a key outside the closed set, or one the catalog has no entry for,
	// reached a lookup. It signals a data/config mismatch, never a user error.
	ErrUnknownKey = errors.New("unknown catalog key")
	// ErrEmptyEntry means a catalog entry has no candidate responses.
	ErrEmptyEntry = errors.New("catalog entry has no responses")
)

func unknownKey(k Key) error {
	return fmt.Errorf("%w: %q", ErrUnknownKey, string(k))
}

// Catalog maps each key to its candidate responses. It is read-only after construction.
type Catalog struct {
	responses map[Key][]string
	scenarios []Scenario
	actions   []Action
}

// New builds a catalog, copying the supplied data.
func New(responses map[Key][]string, scenarios []Scenario, actions []Action) *Catalog {
	copied := make(map[Key][]string, len(responses))
	for k, lines := range responses {
		copied[k] = append([]string(nil), lines...)
	}
	return &Catalog{
		responses: copied,
		scenarios: cloneScenarios(scenarios),
		actions:   append([]Action(nil), actions...),
	}
}

// Get returns a copy of the candidate responses for key.
func (c *Catalog) Get(key Key) ([]string, error) {
	if !key.Valid() {
		return nil, unknownKey(key)
	}
	lines, ok := c.responses[key]
	if !ok {
		return nil, unknownKey(key)
	}
	return append([]string(nil), lines...), nil
}

// Keys lists the keys that have an entry, sorted for stable output.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c.responses))
	for k := range c.responses {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Scenarios returns the scenario definitions in display order.
func (c *Catalog) Scenarios() []Scenario {
	return cloneScenarios(c.scenarios)
}

// FindScenario looks up a scenario by key.
func (c *Catalog) FindScenario(key Key) (Scenario, bool) {
	for _, sc := range c.scenarios {
		if sc.Key == key {
			return sc.clone(), true
		}
	}
	return Scenario{}, false
}

// Actions returns the fixed menu actions in display order.
func (c *Catalog) Actions() []Action {
	return append([]Action(nil), c.actions...)
}

// Validate checks that every key a trigger can reference resolves to a non-empty list,
// and that no entry uses a key outside the closed set.
func (c *Catalog) Validate() error {
	var errs []error
	for k, lines := range c.responses {
		if !k.Valid() {
			errs = append(errs, unknownKey(k))
			continue
		}
		if len(lines) == 0 {
			errs = append(errs, fmt.Errorf("%w: %q", ErrEmptyEntry, string(k)))
		}
	}

	referenced := make([]Key, 0, len(c.actions)+len(c.scenarios))
	for _, a := range c.actions {
		referenced = append(referenced, a.Category)
	}
	for _, sc := range c.scenarios {
		referenced = append(referenced, sc.Key)
		if sc.Intro == "" || len(sc.Prompts) == 0 {
			errs = append(errs, fmt.Errorf("scenario %q needs an intro and at least one prompt", string(sc.Key)))
		}
	}
	for _, k := range referenced {
		lines, ok := c.responses[k]
		if !k.Valid() || !ok {
			errs = append(errs, unknownKey(k))
			continue
		}
		if len(lines) == 0 {
			errs = append(errs, fmt.Errorf("%w: %q", ErrEmptyEntry, string(k)))
		}
	}

	return errors.Join(errs...)
}
