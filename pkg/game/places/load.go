package places

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var categoryNames = map[string]Category{
	"town":   CategoryTown,
	"quest":  CategoryQuest,
	"cave":   CategoryCave,
	"shrine": CategoryShrine,
}

// String returns the category name used in place files
func (c Category) String() string {
	for name, cat := range categoryNames {
		if cat == c {
			return name
		}
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// UnmarshalYAML reads a category from its name
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	cat, ok := categoryNames[name]
	if !ok {
		return fmt.Errorf("line %d: unknown category %q", value.Line, name)
	}
	*c = cat
	return nil
}

type placeRecord struct {
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	X        float64  `yaml:"x"`
	Z        float64  `yaml:"z"`
}

// ParsePlaces decodes a place list from YAML. Order is kept, since later
// places win hover ties.
func ParsePlaces(data []byte) ([]Place, error) {
	var file struct {
		Places []placeRecord `yaml:"places"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse places: %w", err)
	}

	out := make([]Place, 0, len(file.Places))
	for i, r := range file.Places {
		if r.Name == "" {
			return nil, fmt.Errorf("place %d has no name", i)
		}
		out = append(out, Place{Name: r.Name, Category: r.Category, X: r.X, Z: r.Z})
	}
	return out, nil
}

// LoadPlaces reads a place list from a YAML file.
func LoadPlaces(path string) ([]Place, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read places: %w", err)
	}
	return ParsePlaces(data)
}
