package bayes

import "github.com/ironsheep/terrain-mcp/internal/terrain"

// Channel indexes the columns of a Table.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Threshold splits a channel mean into the high (>= Threshold) and low
// buckets.
const Threshold = 128.0

// Table holds P(channel bucket | class), one row per class and one column per
// channel.
type Table [terrain.NumClasses][3]float64

// Priors is a probability distribution over the classes.
type Priors [terrain.NumClasses]float64

// Fixed model parameters. Read through Parameters, never written.
var (
	highTable = Table{
		terrain.Tundra: {0.85, 0.71, 0.89},
		terrain.Forest: {0.53, 0.88, 0.12},
		terrain.Desert: {0.94, 0.06, 0.03},
		terrain.Ocean:  {0.18, 0.27, 0.98},
	}
	lowTable = Table{
		terrain.Tundra: {0.15, 0.29, 0.11},
		terrain.Forest: {0.47, 0.12, 0.88},
		terrain.Desert: {0.06, 0.94, 0.97},
		terrain.Ocean:  {0.82, 0.73, 0.02},
	}
	classPriors = Priors{
		terrain.Tundra: 0.03,
		terrain.Forest: 0.10,
		terrain.Desert: 0.11,
		terrain.Ocean:  0.76,
	}
)

// Parameters returns copies of the fixed high table, low table and priors.
func Parameters() (high, low Table, priors Priors) {
	return highTable, lowTable, classPriors
}
