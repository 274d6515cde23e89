package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/overworld/component"
)

// Document is the parsed declarative entity document: the templates,
// the extra component kind declarations, and per-system configuration.
type Document struct {
	Entities EntitiesSpec `yaml:"entities"`
}

type EntitiesSpec struct {
	Components map[string]any          `yaml:"components"`
	Systems    map[string]SystemConfig `yaml:"systems"`
	Templates  map[string]TemplateSpec `yaml:"templates"`
}

// TemplateSpec is one authored entity template: an optional parent to
// inherit from plus per-kind component values.
type TemplateSpec struct {
	Parent     string                    `yaml:"parent"`
	Components map[string]ComponentValue `yaml:"components"`
}

// ComponentValue is one template entry for a component kind. A null
// value means "present with all-default values"; a mapping carries
// field overrides. A kind absent from the map is inherited verbatim.
type ComponentValue struct {
	Raw any
}

// IsDefault reports whether the entry was authored as null.
func (v ComponentValue) IsDefault() bool {
	return v.Raw == nil
}

func (v *ComponentValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		v.Raw = nil
		return nil
	}
	return value.Decode(&v.Raw)
}

// SystemConfig holds one system's tunables as loosely typed keys.
type SystemConfig map[string]any

// Float returns the named tunable, or def when absent.
func (c SystemConfig) Float(key string, def float64) float64 {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return def
	}
}

// Int returns the named tunable, or def when absent.
func (c SystemConfig) Int(key string, def int) int {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return def
	}
}

// String returns the named tunable, or def when absent.
func (c SystemConfig) String(key, def string) string {
	if s, ok := c[key].(string); ok {
		return s
	}
	return def
}

// ParseDocument decodes and validates an entity document. Every kind
// named by a template or declared under entities.components must be
// registered in the component schema.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal document: %w", err)
	}
	for name := range doc.Entities.Components {
		if !component.IsKind(name) {
			return nil, fmt.Errorf("prefabs: %w: %q", component.ErrUnknownKind, name)
		}
	}
	for tmplName, tmpl := range doc.Entities.Templates {
		for kind := range tmpl.Components {
			if !component.IsKind(kind) {
				return nil, fmt.Errorf("prefabs: template %s: %w: %q", tmplName, component.ErrUnknownKind, kind)
			}
		}
	}
	return &doc, nil
}

// LoadDocument reads and parses an entity document, preferring a disk
// copy over the embedded one.
func LoadDocument(filename string) (*Document, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: parse %s: %w", filename, err)
	}
	return doc, nil
}
