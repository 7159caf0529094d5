// Package bayes implements a naive Bayes terrain classifier over discretized
// channel means.
//
// Each channel mean is bucketed as high (>= 128) or low. The per-class
// likelihood P(R,G,B | class) is the product of the three bucket
// probabilities, the channels being treated as conditionally independent
// given the class. Posteriors follow from Bayes' rule with fixed priors and
// always sum to 1.
package bayes

import (
	"errors"
	"fmt"

	"github.com/ironsheep/terrain-mcp/internal/terrain"
)

// ErrZeroEvidence is returned when every class has zero weighted likelihood,
// which only a malformed table or prior vector can produce.
var ErrZeroEvidence = errors.New("zero evidence")

// Evaluation is a classification together with its intermediate quantities.
type Evaluation struct {
	// Likelihoods holds P(R,G,B | class) per class.
	Likelihoods terrain.Scores `json:"likelihoods"`
	// Evidence is P(R,G,B), the prior-weighted sum of the likelihoods.
	Evidence float64        `json:"evidence"`
	Result   terrain.Result `json:"result"`
}

// Classifier scores channel means against fixed probability tables.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	high, low Table
	priors    Priors
}

// New returns a classifier over the given tables and priors.
func New(high, low Table, priors Priors) *Classifier {
	return &Classifier{high: high, low: low, priors: priors}
}

// Default returns a classifier over the fixed model parameters.
func Default() *Classifier {
	return New(Parameters())
}

var defaultClassifier = Default()

// Classify scores the channel means with the fixed model parameters.
func Classify(r, g, b float64) (terrain.Result, error) {
	return defaultClassifier.Classify(terrain.Means{R: r, G: g, B: b})
}

// Name implements terrain.Classifier.
func (c *Classifier) Name() string {
	return "naive_bayes"
}

// Classify implements terrain.Classifier.
func (c *Classifier) Classify(m terrain.Means) (terrain.Result, error) {
	ev, err := c.Evaluate(m)
	if err != nil {
		return terrain.Result{}, err
	}
	return ev.Result, nil
}

// Evaluate computes likelihoods, evidence and posteriors for m.
//
// Among classes sharing the maximal posterior the one with the highest index
// is predicted.
func (c *Classifier) Evaluate(m terrain.Means) (Evaluation, error) {
	likelihoods := c.likelihoods(m)

	var evidence float64
	for i, l := range likelihoods {
		evidence += l * c.priors[i]
	}
	if evidence == 0 {
		return Evaluation{}, fmt.Errorf("posterior for (%g, %g, %g): %w", m.R, m.G, m.B, ErrZeroEvidence)
	}

	var posteriors terrain.Scores
	for i, l := range likelihoods {
		posteriors[i] = l * c.priors[i] / evidence
	}

	return Evaluation{
		Likelihoods: likelihoods,
		Evidence:    evidence,
		Result: terrain.Result{
			Class:  posteriors.LastMax(),
			Scores: posteriors,
		},
	}, nil
}

func (c *Classifier) likelihoods(m terrain.Means) terrain.Scores {
	values := [3]float64{Red: m.R, Green: m.G, Blue: m.B}

	var out terrain.Scores
	for class := range out {
		p := 1.0
		for ch, v := range values {
			if v < Threshold {
				p *= c.low[class][ch]
			} else {
				p *= c.high[class][ch]
			}
		}
		out[class] = p
	}
	return out
}
