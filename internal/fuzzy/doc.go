// Package fuzzy implements a rule-based fuzzy-logic terrain classifier.
//
// Each channel mean is fuzzified against three trapezoidal sets (low, medium,
// high). Four fixed rules combine the resulting membership degrees with a
// t-norm (AND) and an s-norm (OR):
//
//	tundra = R_high AND G_high AND B_high
//	forest = (R_low OR R_med) AND G_high AND (B_low OR B_med)
//	desert = R_high AND G_low AND B_low
//	ocean  = R_low AND B_high
//
// The rule strengths form the score vector [tundra, forest, desert, ocean]
// and are not normalized. The predicted class is the first strictly maximal
// strength in that order.
//
// The default logic is the Goguen family: t(x,y) = x*y and s(x,y) = x+y-x*y.
package fuzzy
