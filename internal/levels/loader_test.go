package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "id: beta\nplatforms:\n  - {x: 1, y: 2}\n")
	writeFile(t, dir, "nested/a.toml", "id = \"alpha\"\n")
	writeFile(t, dir, "broken.yml", "id: [\n")
	writeFile(t, dir, "notes.txt", "not a level")

	loader := NewLoader(dir)
	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[0].ID != "alpha" || lvls[1].ID != "beta" {
		t.Errorf("levels not sorted by id: %s, %s", lvls[0].ID, lvls[1].ID)
	}
	if lvls[0].FilePath != filepath.Join(dir, "nested", "a.toml") {
		t.Errorf("file path = %q", lvls[0].FilePath)
	}

	_, bad, err := loader.LoadAllStrict()
	if err != nil {
		t.Fatal(err)
	}
	if len(bad) != 1 {
		t.Errorf("expected the broken file to be reported, got %v", bad)
	}

	ids, err := loader.ListIDs()
	if err != nil || len(ids) != 2 {
		t.Errorf("ListIDs = %v, %v", ids, err)
	}

	if _, err := loader.LoadByID("gamma"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "one.toml", "id = \"one\"\nscheme = \"fixed\"\n")

	lvl, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.ID != "one" || lvl.Scheme != platformer.FixedCamera || lvl.FilePath != p {
		t.Errorf("unexpected level %+v", lvl)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuiltinLevels(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	byID := make(map[string]Level)
	for _, l := range lvls {
		byID[l.ID] = l
	}

	tests := []struct {
		id          string
		scheme      platformer.ControlScheme
		platforms   int
		checkpoints int
		color       string
	}{
		{"classic", platformer.FixedCamera, 5, 0, ""},
		{"scroll", platformer.ScrollCamera, 12, 0, ""},
		{"checkpoints", platformer.ScrollCamera, 12, 3, ""},
		{"sunset", platformer.ScrollCamera, 12, 3, platformer.ColorSunset},
	}

	for _, tc := range tests {
		l, ok := byID[tc.id]
		if !ok {
			t.Errorf("builtin %q missing", tc.id)
			continue
		}
		if l.Scheme != tc.scheme || len(l.Platforms) != tc.platforms || len(l.Checkpoints) != tc.checkpoints || l.PlatformColor != tc.color {
			t.Errorf("builtin %q = scheme %v, %d platforms, %d checkpoints, color %q",
				tc.id, l.Scheme, len(l.Platforms), len(l.Checkpoints), l.PlatformColor)
		}
		if !registry.Exists(tc.id) {
			t.Errorf("builtin %q not registered", tc.id)
		}
	}

	if !registry.Exists(DefaultLevelID) {
		t.Errorf("default level %q not registered", DefaultLevelID)
	}
}

func TestRegisteredDefinitionsAreIndependent(t *testing.T) {
	a, err := registry.Definition("checkpoints")
	if err != nil {
		t.Fatal(err)
	}
	a.Platforms[0].X = -1

	b, err := registry.Definition("checkpoints")
	if err != nil {
		t.Fatal(err)
	}
	if b.Platforms[0].X == -1 {
		t.Error("registry returned shared platform data")
	}
}
