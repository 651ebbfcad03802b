package sparkles

// CalculatePercent scales value linearly against maxValue. The result is a ratio, 1.0 at the max,
// and 0 when maxValue is 0.
func CalculatePercent(value, maxValue float64) float64 {
	if maxValue == 0 {
		return 0
	}

	return value / maxValue
}

// maxInputValue returns the largest present input value, false if every point is missing.
func maxInputValue(points []DataPoint) (maxValue float64, ok bool) {
	for _, point := range points {
		if point.IsEmptyValue() {
			continue
		}

		if !ok || *point.InputValue > maxValue {
			maxValue = *point.InputValue
			ok = true
		}
	}

	return
}

func percentOf(value, maxValue float64, hasMax bool) float64 {
	if !hasMax {
		return 0
	}

	return CalculatePercent(value, maxValue)
}

// span tracks an optional min/max pair.
type span struct {
	min, max float64
	set      bool
}

func (s *span) add(v float64) {
	if !s.set {
		s.min, s.max, s.set = v, v, true

		return
	}

	if v < s.min {
		s.min = v
	}

	if v > s.max {
		s.max = v
	}
}

// DefaultBounds is the min/max of the graph points and the baseline, padded vertically by VerticalBoundOffset.
func DefaultBounds(ds DataSource) Bounds {
	var xs, ys span

	if ds.HasBaseline() {
		ys.add(ds.GraphBaseline())
	}

	for idx := 0; idx < ds.Count(); idx++ {
		x, err := ds.GraphX(idx)
		if err != nil {
			continue
		}

		y, err := ds.GraphY(idx)
		if err != nil {
			continue
		}

		xs.add(x)
		ys.add(y)
	}

	return Bounds{
		MinX: xs.min,
		MinY: ys.min - VerticalBoundOffset,
		MaxX: xs.max,
		MaxY: ys.max + VerticalBoundOffset,
	}
}
