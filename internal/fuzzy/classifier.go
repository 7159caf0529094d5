package fuzzy

import "github.com/ironsheep/terrain-mcp/internal/terrain"

// Memberships holds the degrees of all nine (channel, set) pairs.
type Memberships struct {
	Red   Degrees `json:"red"`
	Green Degrees `json:"green"`
	Blue  Degrees `json:"blue"`
}

// Evaluation is a classification together with the memberships behind it.
type Evaluation struct {
	Memberships Memberships    `json:"memberships"`
	Result      terrain.Result `json:"result"`
}

// Classifier evaluates the fixed rule base with a chosen Logic.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	logic Logic
}

// New returns a classifier using logic.
func New(logic Logic) *Classifier {
	return &Classifier{logic: logic}
}

var defaultClassifier = New(Goguen)

// Classify scores the channel means with Goguen logic.
func Classify(r, g, b float64) terrain.Result {
	return defaultClassifier.Evaluate(terrain.Means{R: r, G: g, B: b}).Result
}

// Name implements terrain.Classifier.
func (c *Classifier) Name() string {
	return "fuzzy"
}

// Logic returns the logic the classifier evaluates rules with.
func (c *Classifier) Logic() Logic {
	return c.logic
}

// Classify implements terrain.Classifier. The error is always nil.
func (c *Classifier) Classify(m terrain.Means) (terrain.Result, error) {
	return c.Evaluate(m).Result, nil
}

// Evaluate fuzzifies m, fires the four rules and picks the strongest.
func (c *Classifier) Evaluate(m terrain.Means) Evaluation {
	ms := Memberships{
		Red:   redSets.Fuzzify(m.R),
		Green: greenSets.Fuzzify(m.G),
		Blue:  blueSets.Fuzzify(m.B),
	}
	scores := c.fire(ms)
	return Evaluation{
		Memberships: ms,
		Result: terrain.Result{
			Class:  scores.FirstMax(),
			Scores: scores,
		},
	}
}

func (c *Classifier) fire(ms Memberships) terrain.Scores {
	t, s := c.logic.T, c.logic.S
	r, g, b := ms.Red, ms.Green, ms.Blue

	var out terrain.Scores
	out[terrain.Tundra] = t(t(r.High, g.High), b.High)
	out[terrain.Forest] = t(t(s(r.Low, r.Medium), g.High), s(b.Low, b.Medium))
	out[terrain.Desert] = t(t(r.High, g.Low), b.Low)
	out[terrain.Ocean] = t(r.Low, b.High)
	return out
}
