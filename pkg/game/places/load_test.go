package places

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPlaces = `
places:
  - name: Ragni
    category: town
    x: -870
    z: -1580
  - name: Decrepit Sewers
    category: cave
    x: -880
    z: -1540
`

func TestParsePlaces(t *testing.T) {
	got, err := ParsePlaces([]byte(testPlaces))
	if err != nil {
		t.Fatalf("ParsePlaces: %v", err)
	}

	want := []Place{
		{"Ragni", CategoryTown, -870, -1580},
		{"Decrepit Sewers", CategoryCave, -880, -1540},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("place %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParsePlaces_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown category", "places:\n  - name: X\n    category: castle\n", `unknown category "castle"`},
		{"missing name", "places:\n  - category: town\n", "no name"},
		{"bad yaml", "places: [", "parse places"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlaces([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParsePlaces() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadPlaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.yaml")
	if err := os.WriteFile(path, []byte(testPlaces), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadPlaces(path)
	if err != nil {
		t.Fatalf("LoadPlaces: %v", err)
	}
	if len(got) != 2 || got[1].Category != CategoryCave {
		t.Errorf("LoadPlaces = %+v", got)
	}

	if _, err := LoadPlaces(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPlaces on a missing file succeeded")
	}
}

func TestCategory_String(t *testing.T) {
	if got := CategoryShrine.String(); got != "shrine" {
		t.Errorf("CategoryShrine.String() = %q, want shrine", got)
	}
}

func TestLoadPlaces_ShippedAtlasMatchesBuiltin(t *testing.T) {
	got, err := LoadPlaces(filepath.Join("..", "..", "..", "data", "places.yaml"))
	if err != nil {
		t.Fatalf("LoadPlaces: %v", err)
	}
	if len(got) != len(Builtin) {
		t.Fatalf("shipped atlas has %d places, Builtin %d", len(got), len(Builtin))
	}
	for i := range Builtin {
		if got[i] != Builtin[i] {
			t.Errorf("place %d = %+v, want %+v", i, got[i], Builtin[i])
		}
	}
}
