// Package catalog holds the static workout, study and tip tables and the
// selectors that pick content from them for a profile.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var embeddedTables []byte

// Catalog is the full set of lookup tables.
type Catalog struct {
	Workouts          []WorkoutTemplate `yaml:"workouts"`
	DefaultWorkout    WorkoutTemplate   `yaml:"default_workout"`
	Study             []StudyTemplate   `yaml:"study"`
	Tips              []TipTemplate     `yaml:"tips"`
	SportTipsCategory string            `yaml:"sport_tips_category"`
	SportTips         []SportTips       `yaml:"sport_tips"`
}

// WorkoutTemplate is the ordered set of exercise blocks for a sport and
// training level. The default template leaves Sport and Level empty.
type WorkoutTemplate struct {
	Sport  string         `yaml:"sport"`
	Level  string         `yaml:"level"`
	Blocks []WorkoutBlock `yaml:"blocks"`
}

type WorkoutBlock struct {
	Name      string   `yaml:"name"`
	Exercises []string `yaml:"exercises"`
}

// StudyTemplate lists strategy categories for one academic level.
type StudyTemplate struct {
	Level      string          `yaml:"level"`
	Categories []StudyCategory `yaml:"categories"`
}

type StudyCategory struct {
	Name string   `yaml:"name"`
	Tips []string `yaml:"tips"`
}

// TipTemplate is the tip list shown for one focus area under its display category.
type TipTemplate struct {
	Area     string   `yaml:"area"`
	Category string   `yaml:"category"`
	Tips     []string `yaml:"tips"`
}

type SportTips struct {
	Sport string   `yaml:"sport"`
	Tips  []string `yaml:"tips"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded tables. The embedded document is validated by
// tests, so a decode failure here is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedTables)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded tables: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes and validates a replacement table document.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if errs := Validate(c); len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}
	return c, nil
}

// LoadFile reads a replacement table document from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a table document without validating it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return &c, nil
}
