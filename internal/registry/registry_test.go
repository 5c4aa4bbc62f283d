package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

func testLevel(id string) Factory {
	return func() platformer.LevelDefinition {
		return platformer.LevelDefinition{
			ID:          id,
			Name:        "Level " + id,
			Scheme:      platformer.FixedCamera,
			Checkpoints: []platformer.CheckpointSpec{{X: 100, Y: 80, Order: 1}},
		}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", testLevel("zz-test"))
	Register("aa-test", testLevel("aa-test"))

	if !Exists("zz-test") || Exists("missing") {
		t.Fatal("Exists reports wrong membership")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("levels not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "aa-test" {
			found = true
			if info.Title != "Level aa-test" || info.Scheme != platformer.FixedCamera || info.Checkpoints != 1 {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if !found {
		t.Error("registered level missing from List")
	}

	g, err := Create("aa-test", platformer.DefaultParams())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "aa-test" {
		t.Errorf("created game id = %q", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", platformer.DefaultParams()); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", testLevel("dup-test"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-test", testLevel("dup-test"))
}
