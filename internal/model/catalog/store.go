package catalog

// Store exposes catalog reads to services and HTTP handlers.
type Store interface {
	Get(key Key) ([]string, error)
	Scenarios() []Scenario
	FindScenario(key Key) (Scenario, bool)
	Actions() []Action
}

var _ Store = (*Catalog)(nil)
