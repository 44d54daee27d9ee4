package ingest

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// EstimateNoise derives a single intensity uncertainty from repeated
// measurements: the pooled standard deviation over all condition values that
// were acquired more than once. When the dataset has no duplicates it falls
// back to the mean of the recorded uncertainties.
func EstimateNoise(d ProfileData) float64 {
	groups := make(map[float64][]float64)
	for i, c := range d.Conditions {
		groups[c] = append(groups[c], d.Intensities[i])
	}

	var ssq float64
	var dof int
	for _, vals := range groups {
		if len(vals) < 2 {
			continue
		}
		sd := stat.StdDev(vals, nil)
		ssq += sd * sd * float64(len(vals)-1)
		dof += len(vals) - 1
	}
	if dof > 0 {
		return math.Sqrt(ssq / float64(dof))
	}

	return stat.Mean(d.IntensityErrs, nil)
}
