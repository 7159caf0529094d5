package fuzzy

// Trapezoid is a trapezoidal fuzzy set with breakpoints A <= B <= C <= D.
//
// Membership is 0 at or below A, ramps linearly to 1 between A and B, stays 1
// from B to C, ramps back to 0 between C and D, and is 0 at or above D.
//
// A set with A == B has no rising edge and is an open left shoulder: every
// x <= B has membership 1. Likewise C == D is an open right shoulder.
type Trapezoid struct {
	A, B, C, D float64
}

// Membership returns the degree to which x belongs to the set, in [0,1].
func (t Trapezoid) Membership(x float64) float64 {
	switch {
	case t.A == t.B && x <= t.B:
		return 1
	case t.C == t.D && x >= t.C:
		return 1
	case x <= t.A:
		return 0
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	case x <= t.C:
		return 1
	case x < t.D:
		return (t.D - x) / (t.D - t.C)
	default:
		return 0
	}
}

// ChannelSets groups the low, medium and high sets of one color channel.
type ChannelSets struct {
	Low, Medium, High Trapezoid
}

// Fixed fuzzy sets per channel. Read through Sets, never written.
var (
	redSets = ChannelSets{
		Low:    Trapezoid{0, 0, 85, 125},
		Medium: Trapezoid{85, 125, 130, 190},
		High:   Trapezoid{130, 190, 255, 255},
	}
	greenSets = ChannelSets{
		Low:    Trapezoid{0, 0, 60, 120},
		Medium: Trapezoid{60, 120, 125, 185},
		High:   Trapezoid{125, 185, 255, 255},
	}
	blueSets = ChannelSets{
		Low:    Trapezoid{0, 0, 55, 130},
		Medium: Trapezoid{55, 130, 140, 190},
		High:   Trapezoid{140, 190, 255, 255},
	}
)

// Sets returns copies of the red, green and blue set definitions.
func Sets() (red, green, blue ChannelSets) {
	return redSets, greenSets, blueSets
}

// Degrees holds the membership of one channel value in each of its sets.
type Degrees struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// Fuzzify evaluates x against all three sets.
func (cs ChannelSets) Fuzzify(x float64) Degrees {
	return Degrees{
		Low:    cs.Low.Membership(x),
		Medium: cs.Medium.Membership(x),
		High:   cs.High.Membership(x),
	}
}
