package catalog

// Scenario describes one entry on the home screen.
type Scenario struct {
	Key     Key      `json:"key" yaml:"key"`
	Title   string   `json:"title" yaml:"title"`
	Icon    string   `json:"icon" yaml:"icon"`
	Color   string   `json:"color,omitempty" yaml:"color"`
	Intro   string   `json:"santaIntro" yaml:"intro"`
	Prompts []string `json:"prompts" yaml:"prompts"`
}

// Opening returns the lines Santa sends when the scenario starts.
func (s Scenario) Opening() []string {
	lines := []string{s.Intro}
	if len(s.Prompts) > 0 {
		lines = append(lines, s.Prompts[0])
	}
	return lines
}

func (s Scenario) clone() Scenario {
	s.Prompts = append([]string(nil), s.Prompts...)
	return s
}

func cloneScenarios(in []Scenario) []Scenario {
	out := make([]Scenario, len(in))
	for i, sc := range in {
		out[i] = sc.clone()
	}
	return out
}

// Action is one button on the fixed menu.
type Action struct {
	Label    string `json:"label" yaml:"label"`
	Text     string `json:"text" yaml:"text"`
	Category Key    `json:"category" yaml:"category"`
	Variant  string `json:"variant,omitempty" yaml:"variant"`
}

// BootSequence is the transcript a menu session opens with.
func BootSequence() []string {
	return []string{
		"SANTA.EXE INITIALIZED...",
		"SCANNING FOR EMOTIONAL VULNERABILITY...",
		"SUBJECT IDENTIFIED: LONELY STUDENT.",
	}
}
