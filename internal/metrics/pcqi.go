package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	// PCQIStabilizer keeps the PCQI terms finite in flat regions.
	PCQIStabilizer = 3.0
	// DynamicRange is the intensity range L of 8-bit input.
	DynamicRange = 256.0
)

// PCQIMap returns the per-position quality map
//
//	q = (4/π)·atan((σ12+C)/(σ1²+C)) · (σ12+C)/(σ1·σ2+C) · exp(−|μ1−μ2|/L)
//
// over the valid window region.
func (c *calculator) PCQIMap(ref, dist *Grid) (*Grid, error) {
	st, err := c.WindowStats(ref, dist)
	if err != nil {
		return nil, err
	}

	q := NewGrid(st.Cov.Dx(), st.Cov.Dy())
	for i := range q.values {
		s12 := st.Cov.values[i] + PCQIStabilizer
		v1, v2 := st.VarA.values[i], st.VarB.values[i]

		contrast := (4 / math.Pi) * math.Atan(s12/(v1+PCQIStabilizer))
		structure := s12 / (math.Sqrt(v1)*math.Sqrt(v2) + PCQIStabilizer)
		luminance := math.Exp(-math.Abs(st.MeanA.values[i]-st.MeanB.values[i]) / DynamicRange)

		q.values[i] = contrast * structure * luminance
	}
	return q, nil
}

func (c *calculator) PCQI(ref, dist *Grid) (float64, error) {
	q, err := c.PCQIMap(ref, dist)
	if err != nil {
		return 0, err
	}
	return stat.Mean(q.values, nil), nil
}
