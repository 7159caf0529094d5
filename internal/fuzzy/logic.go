package fuzzy

import (
	"fmt"
	"math"
	"strings"
)

// Logic is a t-norm / s-norm pair used to evaluate rules.
type Logic struct {
	Name string
	// T is the fuzzy AND.
	T func(x, y float64) float64
	// S is the fuzzy OR.
	S func(x, y float64) float64
}

// Goguen is the product t-norm with the probabilistic-sum s-norm.
var Goguen = Logic{
	Name: "goguen",
	T:    func(x, y float64) float64 { return x * y },
	S:    func(x, y float64) float64 { return x + y - x*y },
}

// Godel is the minimum t-norm with the maximum s-norm.
var Godel = Logic{
	Name: "godel",
	T:    math.Min,
	S:    math.Max,
}

// LogicByName returns the logic registered under name ("goguen" or "godel").
func LogicByName(name string) (Logic, error) {
	switch strings.ToLower(name) {
	case "", Goguen.Name:
		return Goguen, nil
	case Godel.Name:
		return Godel, nil
	default:
		return Logic{}, fmt.Errorf("unknown fuzzy logic: %q", name)
	}
}
