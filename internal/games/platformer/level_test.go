package platformer

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		level LevelDefinition
		code  string
	}{
		{"valid", LevelDefinition{ID: "ok", Platforms: []PlatformSpec{{X: 1, Y: 2}}}, ""},
		{"missing id", LevelDefinition{ID: "  "}, "MISSING_ID"},
		{"unknown scheme", LevelDefinition{ID: "x", Scheme: ControlScheme(7)}, "INVALID_SCHEME"},
		{"bad color", LevelDefinition{ID: "x", PlatformColor: "green"}, "INVALID_COLOR"},
		{"negative actor", LevelDefinition{ID: "x", Spawn: SpawnSpec{Size: -1}}, "INVALID_SIZE"},
		{"negative platform", LevelDefinition{ID: "x", Platforms: []PlatformSpec{{H: -1}}}, "INVALID_SIZE"},
		{"negative checkpoint", LevelDefinition{ID: "x", Checkpoints: []CheckpointSpec{{W: -1, Order: 1}}}, "INVALID_SIZE"},
		{"nan spawn", LevelDefinition{ID: "x", Spawn: SpawnSpec{X: math.NaN()}}, "INVALID_NUMBER"},
		{"inf actor size", LevelDefinition{ID: "x", Spawn: SpawnSpec{Size: math.Inf(1)}}, "INVALID_NUMBER"},
		{"inf platform x", LevelDefinition{ID: "x", Platforms: []PlatformSpec{{X: math.Inf(1), Y: 1}}}, "INVALID_NUMBER"},
		{"nan platform width", LevelDefinition{ID: "x", Platforms: []PlatformSpec{{X: 1, Y: 1, W: math.NaN()}}}, "INVALID_NUMBER"},
		{"nan checkpoint height", LevelDefinition{ID: "x", Checkpoints: []CheckpointSpec{{H: math.NaN(), Order: 1}}}, "INVALID_NUMBER"},
		{"checkpoint shorter than actor", LevelDefinition{ID: "x", Checkpoints: []CheckpointSpec{{H: 30, Order: 1}}}, "INVALID_SIZE"},
		{"checkpoint shorter than large actor", LevelDefinition{ID: "x", Spawn: SpawnSpec{Size: 80}, Checkpoints: []CheckpointSpec{{Order: 1}}}, "INVALID_SIZE"},
		{"checkpoint as tall as actor", LevelDefinition{ID: "x", Checkpoints: []CheckpointSpec{{H: 40, Order: 1}}}, ""},
		{"zero order", LevelDefinition{ID: "x", Checkpoints: []CheckpointSpec{{Order: 0}}}, "INVALID_ORDER"},
		{"order gap", LevelDefinition{ID: "x", Checkpoints: []CheckpointSpec{{Order: 1}, {Order: 3}}}, "INVALID_ORDER"},
		{"duplicate order", LevelDefinition{ID: "x", Checkpoints: []CheckpointSpec{{Order: 1}, {Order: 1}}}, "DUPLICATE_ORDER"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.level.Validate()
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Code != tc.code {
				t.Errorf("code = %s, expected %s", ve.Code, tc.code)
			}
		})
	}
}

func TestParseControlScheme(t *testing.T) {
	tests := []struct {
		in       string
		expected ControlScheme
		wantErr  bool
	}{
		{"", ScrollCamera, false},
		{"scroll", ScrollCamera, false},
		{" Fixed ", FixedCamera, false},
		{"orbit", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseControlScheme(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseControlScheme(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseControlScheme(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
		if !tc.wantErr && got.String() == "unknown" {
			t.Errorf("%v has no name", got)
		}
	}
}

func TestProportionalSize(t *testing.T) {
	tests := []struct {
		size, viewportH float64
		expected        float64
	}{
		{40, 720, 40},
		{40, 500, 40},
		{450, 250, 225},
		{10, 499, 10},
		{40, 330, 27},
	}

	for _, tc := range tests {
		if got := ProportionalSize(tc.size, tc.viewportH, 500); got != tc.expected {
			t.Errorf("ProportionalSize(%v, %v) = %v, expected %v", tc.size, tc.viewportH, got, tc.expected)
		}
	}
}

func TestSortedCheckpointsDoesNotMutateLevel(t *testing.T) {
	l := LevelDefinition{Checkpoints: []CheckpointSpec{{Order: 3}, {Order: 1}, {Order: 2}}}
	sorted := l.sortedCheckpoints()

	for i, c := range sorted {
		if c.Order != i+1 {
			t.Errorf("sorted[%d].Order = %d", i, c.Order)
		}
	}
	if l.Checkpoints[0].Order != 3 {
		t.Error("sortedCheckpoints reordered the level data")
	}
}

func TestDefaultMessages(t *testing.T) {
	l := LevelDefinition{ID: "m", Checkpoints: []CheckpointSpec{{Order: 2}, {Order: 1, Message: "custom"}, {Order: 3}}}
	w := buildWorld(l, hd, 500)

	want := []string{"custom", MessageCheckpoint, MessageFinalCheckpoint}
	for i, c := range w.Checkpoints {
		if c.Message != want[i] {
			t.Errorf("checkpoint %d message = %q, expected %q", i, c.Message, want[i])
		}
	}
}
