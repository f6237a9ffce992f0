package catalog

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML layout of a catalog override.
type File struct {
	Responses map[Key][]string `yaml:"responses"`
	Scenarios []Scenario       `yaml:"scenarios"`
	Actions   []Action         `yaml:"actions"`
}

// LoadFile reads a YAML override from path and layers it over base.
// Response entries replace the base entry for the same key; scenarios replace by key;
// a non-empty actions list replaces the whole menu. The result is validated.
func LoadFile(path string, base *Catalog) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}
	return Parse(data, base)
}

// Parse decodes a YAML override and layers it over base.
func Parse(data []byte, base *Catalog) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse catalog")
	}

	if base == nil {
		base = New(nil, nil, nil)
	}

	responses := make(map[Key][]string, len(base.responses)+len(f.Responses))
	for k, lines := range base.responses {
		responses[k] = lines
	}
	for k, lines := range f.Responses {
		if !k.Valid() {
			return nil, errors.Wrap(unknownKey(k), "parse catalog")
		}
		responses[k] = lines
	}

	scenarios := base.Scenarios()
	for _, override := range f.Scenarios {
		if !override.Key.IsScenario() {
			return nil, errors.Wrapf(unknownKey(override.Key), "parse catalog scenario %q", override.Title)
		}
		replaced := false
		for i := range scenarios {
			if scenarios[i].Key == override.Key {
				scenarios[i] = override
				replaced = true
				break
			}
		}
		if !replaced {
			scenarios = append(scenarios, override)
		}
	}

	actions := base.Actions()
	if len(f.Actions) > 0 {
		actions = f.Actions
	}

	merged := New(responses, scenarios, actions)
	if err := merged.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate catalog")
	}
	return merged, nil
}

// Export returns the catalog in its on-disk layout.
func (c *Catalog) Export() File {
	responses := make(map[Key][]string, len(c.responses))
	for _, k := range c.Keys() {
		lines, _ := c.Get(k)
		responses[k] = lines
	}
	return File{
		Responses: responses,
		Scenarios: c.Scenarios(),
		Actions:   c.Actions(),
	}
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c.Export())
	if err != nil {
		return nil, errors.Wrap(err, "marshal catalog")
	}
	return data, nil
}
