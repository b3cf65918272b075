package roomclass

import (
	"errors"
	"fmt"
	"math/rand"
)

// Registry holds room classes and draws them by weight.
type Registry struct {
	classes     []Class
	totalWeight int
}

// NewRegistry creates a registry from class definitions.
// Every class needs a positive size and a positive weight.
func NewRegistry(classes []Class) (*Registry, error) {
	if len(classes) == 0 {
		return nil, errors.New("no room classes defined")
	}
	totalWeight := 0
	for _, c := range classes {
		if c.InnerWidth <= 0 || c.InnerHeight <= 0 {
			return nil, fmt.Errorf("room class %q: non-positive size %dx%d", c.ID, c.InnerWidth, c.InnerHeight)
		}
		if c.Weight <= 0 {
			return nil, fmt.Errorf("room class %q: non-positive weight %d", c.ID, c.Weight)
		}
		totalWeight += c.Weight
	}
	return &Registry{
		classes:     classes,
		totalWeight: totalWeight,
	}, nil
}

// LoadRegistry loads and creates a registry from the embedded roomclasses.json.
func LoadRegistry() (*Registry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	return NewRegistry(classes)
}

// MustLoadRegistry loads the embedded registry, panicking on error.
// The table is compiled in, so a failure here is a build defect.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Pick selects a class using weighted probability.
// It consumes exactly one rng.Intn draw.
func (r *Registry) Pick(rng *rand.Rand) Class {
	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for _, c := range r.classes {
		cumulative += c.Weight
		if roll < cumulative {
			return c
		}
	}

	// Unreachable while totalWeight is the sum of all weights.
	return r.classes[len(r.classes)-1]
}

// GetByID returns the class with the given ID.
func (r *Registry) GetByID(id string) (Class, bool) {
	for _, c := range r.classes {
		if c.ID == id {
			return c, true
		}
	}
	return Class{}, false
}

// All returns all class definitions.
func (r *Registry) All() []Class {
	return r.classes
}

// TotalWeight returns the sum of all class weights.
func (r *Registry) TotalWeight() int {
	return r.totalWeight
}

// MaxSize returns the largest placed width and height across all classes.
func (r *Registry) MaxSize() (width, height int) {
	for _, c := range r.classes {
		width = max(width, c.Width())
		height = max(height, c.Height())
	}
	return width, height
}
