package prefabs

import (
	"sort"

	"github.com/milk9111/overworld/component"
)

// Store holds the authored templates of one document, immutable after
// construction, plus the memoized resolution results.
type Store struct {
	templates map[string]TemplateSpec
	sheets    component.SheetLookup
	resolved  map[string]*Resolved
}

// NewStore builds a template store over a parsed document. sheets is
// consulted when compiling sprite animations during resolution.
func NewStore(doc *Document, sheets component.SheetLookup) *Store {
	templates := map[string]TemplateSpec{}
	if doc != nil {
		for name, tmpl := range doc.Entities.Templates {
			templates[name] = tmpl
		}
	}
	return &Store{
		templates: templates,
		sheets:    sheets,
		resolved:  map[string]*Resolved{},
	}
}

// Template returns the authored template spec for name.
func (s *Store) Template(name string) (TemplateSpec, bool) {
	if s == nil {
		return TemplateSpec{}, false
	}
	t, ok := s.templates[name]
	return t, ok
}

// Names returns all template names, sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.templates))
	for name := range s.templates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ResolveAll eagerly resolves every template so authoring errors
// surface at load time rather than at first spawn.
func (s *Store) ResolveAll() error {
	if s == nil {
		return nil
	}
	for _, name := range s.Names() {
		if _, err := s.Resolve(name); err != nil {
			return err
		}
	}
	return nil
}
