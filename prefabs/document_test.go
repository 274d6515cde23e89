package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/overworld/component"
)

func TestParseDocument(t *testing.T) {
	const src = `
entities:
  components:
    input: {}

  systems:
    movement: {}
    mana_gathering:
      default_gather_amount: 1
      default_gather_radius: 100
      label: arcane

  templates:
    villager:
      components:
        position: ~
        character:
          name: Villager
`
	doc := mustParse(t, src)

	tmpl, ok := doc.Entities.Templates["villager"]
	if !ok {
		t.Fatalf("expected villager template")
	}
	if !tmpl.Components["position"].IsDefault() {
		t.Fatalf("null component value should read as default")
	}
	if tmpl.Components["character"].IsDefault() {
		t.Fatalf("mapping component value should not read as default")
	}

	cfg, ok := doc.Entities.Systems["mana_gathering"]
	if !ok {
		t.Fatalf("expected mana_gathering system config")
	}
	if got := cfg.Float("default_gather_amount", 0); got != 1 {
		t.Fatalf("expected gather amount 1, got %v", got)
	}
	if got := cfg.Int("default_gather_radius", 0); got != 100 {
		t.Fatalf("expected gather radius 100, got %v", got)
	}
	if got := cfg.String("label", ""); got != "arcane" {
		t.Fatalf("expected label %q, got %q", "arcane", got)
	}
	if got := cfg.Float("label", 7); got != 7 {
		t.Fatalf("expected non-numeric tunable to fall back, got %v", got)
	}
	if got := cfg.Float("absent", 2.5); got != 2.5 {
		t.Fatalf("expected absent tunable to fall back, got %v", got)
	}

	if _, ok := doc.Entities.Systems["render"]; ok {
		t.Fatalf("unconfigured system should be absent")
	}
}

func TestParseDocumentRejectsUnknownKinds(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			"template_kind",
			`
entities:
  templates:
    broken:
      components:
        teleporter: ~
`,
		},
		{
			"declared_kind",
			`
entities:
  components:
    teleporter: {}
  templates: {}
`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseDocument([]byte(c.src)); !errors.Is(err, component.ErrUnknownKind) {
				t.Fatalf("expected unknown kind error, got %v", err)
			}
		})
	}
}

func TestLoadDocumentMissing(t *testing.T) {
	if _, err := LoadDocument("no_such_file.yaml"); err == nil {
		t.Fatalf("expected an error for a missing document")
	}
}
