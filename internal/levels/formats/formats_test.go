package formats

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

const yamlLevel = `
id: demo
name: Demo
scheme: fixed
platform_color: "#ffcc99"
spawn:
  x: 20
  y: 300
platforms:
  - {x: 500, y: 450}
  - {x: 700, y: 400, w: 120, h: 30}
checkpoints:
  - {x: 1170, y: 80, order: 1}
  - {x: 2900, y: 330, order: 2, message: "Almost there"}
`

const tomlLevel = `
id = "demo"
name = "Demo"
scheme = "fixed"
platform_color = "#ffcc99"

[spawn]
x = 20
y = 300

[[platforms]]
x = 500
y = 450

[[platforms]]
x = 700
y = 400
w = 120
h = 30

[[checkpoints]]
x = 1170
y = 80
order = 1

[[checkpoints]]
x = 2900
y = 330
order = 2
message = "Almost there"
`

func checkDemo(t *testing.T, def platformer.LevelDefinition) {
	t.Helper()
	if def.ID != "demo" || def.Name != "Demo" {
		t.Errorf("unexpected id/name %q/%q", def.ID, def.Name)
	}
	if def.Scheme != platformer.FixedCamera {
		t.Errorf("scheme = %v, expected fixed", def.Scheme)
	}
	if def.PlatformColor != platformer.ColorSunset {
		t.Errorf("platform color = %q", def.PlatformColor)
	}
	if def.Spawn.X != 20 || def.Spawn.Y != 300 {
		t.Errorf("spawn = %+v", def.Spawn)
	}
	if len(def.Platforms) != 2 {
		t.Fatalf("expected 2 platforms, got %d", len(def.Platforms))
	}
	if p := def.Platforms[1]; p.X != 700 || p.W != 120 || p.H != 30 {
		t.Errorf("platform 1 = %+v", p)
	}
	if len(def.Checkpoints) != 2 {
		t.Fatalf("expected 2 checkpoints, got %d", len(def.Checkpoints))
	}
	if c := def.Checkpoints[1]; c.Order != 2 || c.Message != "Almost there" {
		t.Errorf("checkpoint 1 = %+v", c)
	}
}

func TestParseYAML(t *testing.T) {
	def, err := ParseYAML([]byte(yamlLevel))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	checkDemo(t, def)
}

func TestParseTOML(t *testing.T) {
	def, err := ParseTOML([]byte(tomlLevel))
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	checkDemo(t, def)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := ParseYAML([]byte("id: x\ngravity: 3\n")); err == nil {
		t.Error("YAML: expected error for unknown key")
	}
	if _, err := ParseTOML([]byte("id = \"x\"\ngravity = 3\n")); err == nil {
		t.Error("TOML: expected error for unknown key")
	}
}

func TestParseValidates(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
		code string
	}{
		{"yaml duplicate order", "id: x\ncheckpoints:\n  - {x: 1, y: 1, order: 1}\n  - {x: 2, y: 1, order: 1}\n", ".yaml", "DUPLICATE_ORDER"},
		{"yaml nan spawn", "id: x\nspawn: {x: .nan, y: 400}\n", ".yaml", "INVALID_NUMBER"},
		{"yaml inf platform", "id: x\nplatforms:\n  - {x: .inf, y: 1}\n", ".yaml", "INVALID_NUMBER"},
		{"toml nan checkpoint", "id = \"x\"\n[[checkpoints]]\nx = nan\ny = 1\norder = 1\n", ".toml", "INVALID_NUMBER"},
		{"yaml scheme", "id: x\nscheme: orbit\n", ".yml", "INVALID_SCHEME"},
		{"toml missing id", "name = \"x\"\n", ".toml", "MISSING_ID"},
		{"toml negative width", "id = \"x\"\n[[platforms]]\nx = 1\ny = 1\nw = -4\n", ".toml", "INVALID_SIZE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.ext)
			var ve *platformer.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Code != tc.code {
				t.Errorf("code = %s, expected %s", ve.Code, tc.code)
			}
		})
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	if _, err := Parse([]byte("{}"), ".json"); err == nil {
		t.Error("expected error for .json")
	}
}

func TestEncodeYAMLReadsBack(t *testing.T) {
	def, err := ParseTOML([]byte(tomlLevel))
	if err != nil {
		t.Fatal(err)
	}

	data, err := EncodeYAML(def)
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("re-parsing encoded level failed: %v\n%s", err, data)
	}
	checkDemo(t, back)
}
