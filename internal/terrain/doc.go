// Package terrain defines the vocabulary shared by the terrain classifiers.
//
// A classification consumes the mean red, green and blue intensities of an
// image (Means, each nominally in [0,255]) and yields a Result: the predicted
// Class together with a Scores vector ordered [tundra, forest, desert, ocean].
//
// # Classes
//
// Class is a closed enumeration of exactly four values. Its integer value is
// the index into Scores, so Scores[Ocean] is the ocean score.
//
// # Decision Rules
//
// Two argmax rules are provided because the classifiers resolve ties
// differently:
//   - FirstMax: strict greater-than scan, the lowest index among equal maxima wins
//   - LastMax: the highest index among equal maxima wins
//
// # Thread Safety
//
// All types in this package are plain values and safe to share once built.
package terrain
