package model

import (
	"fmt"
	"math"
)

// Resource is an item that can be bought once for its cost.
type Resource struct {
	Name    string
	Cost    float64
	Benefit float64
}

// NewResource validates the fields and returns a Resource.
func NewResource(name string, cost, benefit float64) (Resource, error) {
	r := Resource{Name: name, Cost: cost, Benefit: benefit}
	if err := r.Validate(); err != nil {
		return Resource{}, err
	}
	return r, nil
}

// Validate checks that the resource has a name and a positive cost.
func (r Resource) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("resource name is required")
	}
	if !(r.Cost > 0) {
		return fmt.Errorf("resource %s: cost must be positive (got %v)", r.Name, r.Cost)
	}
	return nil
}

func (r Resource) Label() string      { return r.Name }
func (r Resource) Primary() float64   { return r.Cost }
func (r Resource) Objective() float64 { return r.Benefit }

// Horizon is unbounded: only the budget limits resources.
func (r Resource) Horizon() float64 { return math.Inf(1) }

func (r Resource) String() string {
	return fmt.Sprintf("%s (cost=%g benefit=%g)", r.Name, r.Cost, r.Benefit)
}
