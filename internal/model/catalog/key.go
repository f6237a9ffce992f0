package catalog

// Key identifies a response category. The set is closed: every valid key is declared here
// and listed in AllKeys.
type Key string

// Menu categories, triggered by the fixed action buttons.
const (
	NotGoingHome Key = "notGoingHome"
	Scold        Key = "scold"
	Encourage    Key = "encourage"
	Advice       Key = "advice"
	WorstGift    Key = "worstGift"
	Surprise     Key = "surprise"
	Dramatic     Key = "dramatic"
	Goodbye      Key = "goodbye"
)

// Scenario keys, selected on the home screen.
const (
	Homesick Key = "homesick"
	Lonely   Key = "lonely"
	Stressed Key = "stressed"
	Grateful Key = "grateful"
	Confused Key = "confused"
)

var menuKeys = []Key{NotGoingHome, Scold, Encourage, Advice, WorstGift, Surprise, Dramatic, Goodbye}

var scenarioKeys = []Key{Homesick, Lonely, Stressed, Grateful, Confused}

// MenuKeys returns the keys reachable from the fixed action menu.
func MenuKeys() []Key {
	return append([]Key(nil), menuKeys...)
}

// ScenarioKeys returns the keys that name a scenario.
func ScenarioKeys() []Key {
	return append([]Key(nil), scenarioKeys...)
}

// AllKeys returns the full closed set.
func AllKeys() []Key {
	keys := make([]Key, 0, len(menuKeys)+len(scenarioKeys))
	keys = append(keys, menuKeys...)
	return append(keys, scenarioKeys...)
}

// Valid reports whether k belongs to the closed set.
func (k Key) Valid() bool {
	return k.IsMenu() || k.IsScenario()
}

// IsMenu reports whether k is a menu category.
func (k Key) IsMenu() bool {
	return contains(menuKeys, k)
}

// IsScenario reports whether k names a scenario.
func (k Key) IsScenario() bool {
	return contains(scenarioKeys, k)
}

func (k Key) String() string { return string(k) }

// ParseKey validates raw input from a presentation boundary.
func ParseKey(raw string) (Key, error) {
	k := Key(raw)
	if !k.Valid() {
		return "", unknownKey(k)
	}
	return k, nil
}

func contains(keys []Key, k Key) bool {
	for _, candidate := range keys {
		if candidate == k {
			return true
		}
	}
	return false
}
