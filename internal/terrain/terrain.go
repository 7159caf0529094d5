package terrain

import (
	"fmt"
	"strings"
)

// Class is one of the four terrain classes.
type Class int

const (
	Tundra Class = iota
	Forest
	Desert
	Ocean
)

// NumClasses is the number of terrain classes.
const NumClasses = 4

var classNames = [NumClasses]string{"tundra", "forest", "desert", "ocean"}

// Classes returns every class in score order.
func Classes() [NumClasses]Class {
	return [NumClasses]Class{Tundra, Forest, Desert, Ocean}
}

// Valid reports whether c is one of the four classes.
func (c Class) Valid() bool {
	return c >= Tundra && c <= Ocean
}

func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid class %d", int(c))
	}
	return []byte(classNames[c]), nil
}

// UnmarshalText decodes a class name.
func (c *Class) UnmarshalText(b []byte) error {
	parsed, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClass converts a case-insensitive class name to a Class.
func ParseClass(name string) (Class, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, cn := range classNames {
		if cn == n {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain class: %q", name)
}

// Scores holds one score per class, indexed by Class.
//
// For the naive Bayes classifier this is a probability distribution. For the
// fuzzy classifier it is a vector of rule strengths with no sum constraint.
type Scores [NumClasses]float64

// Get returns the score for class c.
func (s Scores) Get(c Class) float64 {
	return s[c]
}

// Sum returns the sum of all scores.
func (s Scores) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// FirstMax returns the class with the highest score, scanning in class order
// and replacing the running maximum only on a strictly greater score.
// Among equal maxima the lowest index wins.
func (s Scores) FirstMax() Class {
	best := 0
	for i := range s {
		if s[i] > s[best] {
			best = i
		}
	}
	return Class(best)
}

// LastMax returns the class with the highest score. Among equal maxima the
// highest index wins.
func (s Scores) LastMax() Class {
	maxV := s[0]
	for _, v := range s[1:] {
		if v > maxV {
			maxV = v
		}
	}
	best := 0
	for i, v := range s {
		if v == maxV {
			best = i
		}
	}
	return Class(best)
}

// Result is the outcome of one classification.
type Result struct {
	Class  Class  `json:"class"`
	Scores Scores `json:"scores"`
}

// Means is the arithmetic mean of each color channel over an image, nominally
// in [0,255]. Values are not validated.
type Means struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Classifier maps channel means to a terrain Result.
type Classifier interface {
	// Name identifies the classifier in reports and logs.
	Name() string
	// Classify scores m against every class.
	Classify(m Means) (Result, error)
}
