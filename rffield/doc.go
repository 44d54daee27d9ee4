// Package rffield models the radiofrequency (B1) field inhomogeneity as a
// discrete weighted distribution of field scales and provides the weighted
// propagator averaging used by the simulation engines.
//
// A Distribution is an ordered set of (scale, weight) pairs approximating the
// continuous B1 profile across the sample. Weights are not assumed
// normalized: averaging always divides by the weight sum. The Infinite
// distribution is the ideal-field sentinel — it disables averaging and makes
// the engine fall back to its eigenmode-filtered single-field regime.
package rffield
