package sparkles

import "github.com/spf13/cast"

const (
	// VerticalBoundOffset is the extra top/bottom space added to the data bounds.
	VerticalBoundOffset = 10.0

	// NoBaseline is returned by GraphBaseline when no baseline is set.
	NoBaseline = -1.0
)

type PointF struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DataPoint is one input sample. A nil InputValue marks a missing sample.
type DataPoint struct {
	InputValue *float64 `json:"inputValue,omitempty" yaml:"inputValue,omitempty"`

	graphValue *PointF
}

func NewDataPoint(v float64) DataPoint {
	return DataPoint{
		InputValue: &v,
	}
}

func NewEmptyDataPoint() DataPoint {
	return DataPoint{}
}

// NewDataPoints builds a series from loosely typed values, nil entries become gaps.
func NewDataPoints(vs ...interface{}) ([]DataPoint, error) {
	points := make([]DataPoint, 0, len(vs))

	for _, v := range vs {
		if v == nil {
			points = append(points, NewEmptyDataPoint())

			continue
		}

		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, err
		}

		points = append(points, NewDataPoint(f))
	}

	return points, nil
}

func (p DataPoint) IsEmptyValue() bool {
	return p.InputValue == nil
}

// GraphValue returns the computed graph coordinate; false until the adapter has processed the point.
func (p DataPoint) GraphValue() (PointF, bool) {
	if p.graphValue == nil {
		return PointF{}, false
	}

	return *p.graphValue, true
}

func (p DataPoint) clone() DataPoint {
	var c DataPoint

	if p.InputValue != nil {
		v := *p.InputValue
		c.InputValue = &v
	}

	return c
}

// Bounds uses RectF orientation: left = MinX, top = MinY, right = MaxX, bottom = MaxY.
type Bounds struct {
	MinX float64 `json:"minX" yaml:"minX"`
	MinY float64 `json:"minY" yaml:"minY"`
	MaxX float64 `json:"maxX" yaml:"maxX"`
	MaxY float64 `json:"maxY" yaml:"maxY"`
}

func (b Bounds) Left() float64 {
	return b.MinX
}

func (b Bounds) Top() float64 {
	return b.MinY
}

func (b Bounds) Right() float64 {
	return b.MaxX
}

func (b Bounds) Bottom() float64 {
	return b.MaxY
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}
