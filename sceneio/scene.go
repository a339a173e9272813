// Package sceneio reads and writes region scenes: YAML documents describing
// a set of named rectangles and a pipeline of set operations to combine
// them, the format regioncli scaffolds and replays.
package sceneio

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/arl/goregion/box"
)

// Shape is a single named rectangle in a Scene.
type Shape struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
}

// Rectangle converts s to a box.Rectangle.
func (s Shape) Rectangle() box.Rectangle {
	return box.NewRectangle(s.X, s.Y, s.W, s.H)
}

// Step is one stage of a Scene's pipeline: combine the running result with
// the named shape using Op.
type Step struct {
	Op    string `yaml:"op"`
	Shape string `yaml:"shape"`
}

// Scene is the on-disk YAML representation of a region build: a palette of
// named rectangles, plus an ordered pipeline describing how to combine them
// into a single region starting from an empty one.
type Scene struct {
	Shapes   []Shape `yaml:"shapes"`
	Pipeline []Step  `yaml:"pipeline"`
}

// LoadError wraps a failure to load or validate a scene file, naming the
// file and (when known) the offending pipeline step.
type LoadError struct {
	Path  string
	Step  int // -1 when the error isn't attributable to a specific step
	Cause error
}

func (e *LoadError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("sceneio: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("sceneio: %s: pipeline step %d: %v", e.Path, e.Step, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Load reads and validates the scene at path.
func Load(path string) (*Scene, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Step: -1, Cause: err}
	}
	var sc Scene
	if err := yaml.Unmarshal(buf, &sc); err != nil {
		return nil, &LoadError{Path: path, Step: -1, Cause: err}
	}
	if err := sc.validate(); err != nil {
		return nil, &LoadError{Path: path, Step: -1, Cause: err}
	}
	return &sc, nil
}

// Save writes sc to path in YAML format.
func Save(path string, sc *Scene) error {
	buf, err := yaml.Marshal(sc)
	if err != nil {
		return &LoadError{Path: path, Step: -1, Cause: err}
	}
	return ioutil.WriteFile(path, buf, 0644)
}

func (sc *Scene) shapeByName(name string) (Shape, bool) {
	for _, s := range sc.Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

func (sc *Scene) validate() error {
	seen := make(map[string]bool, len(sc.Shapes))
	for _, s := range sc.Shapes {
		if s.Name == "" {
			return fmt.Errorf("shape with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate shape name %q", s.Name)
		}
		seen[s.Name] = true
	}
	for i, step := range sc.Pipeline {
		switch step.Op {
		case "union", "intersect", "subtract", "xor":
		default:
			return fmt.Errorf("pipeline step %d: unknown op %q", i, step.Op)
		}
		if _, ok := sc.shapeByName(step.Shape); !ok {
			return fmt.Errorf("pipeline step %d: unknown shape %q", i, step.Shape)
		}
	}
	return nil
}

// Default returns a small starter Scene, the one regioncli config writes out.
func Default() *Scene {
	return &Scene{
		Shapes: []Shape{
			{Name: "base", X: 0, Y: 0, W: 30, H: 30},
			{Name: "hole", X: 10, Y: 10, W: 10, H: 10},
		},
		Pipeline: []Step{
			{Op: "union", Shape: "base"},
			{Op: "subtract", Shape: "hole"},
		},
	}
}
