package sparkles

import (
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
)

func NewAdapter(logger l.Wrapper, options ...Option) Adapter {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	opts := optionNew(options...)

	return &adapterImpl{
		logger:           logger.WithFields(l.StringField(l.ClsKey, "adapterImpl")),
		boundsCalculator: opts.boundsCalculator,
		listener:         opts.listener,
		baseline:         NewEmptyDataPoint(),
	}
}

type adapterImpl struct {
	logger           l.Wrapper
	boundsCalculator BoundsCalculator

	points   []DataPoint
	baseline DataPoint

	listener OnDataChangedListener
}

func (impl *adapterImpl) SetInput(points []DataPoint, baseline *DataPoint) {
	impl.points = make([]DataPoint, 0, len(points))
	for _, point := range points {
		impl.points = append(impl.points, point.clone())
	}

	if baseline != nil {
		impl.baseline = baseline.clone()
	} else {
		impl.baseline = NewEmptyDataPoint()
	}

	impl.processInput()
}

func (impl *adapterImpl) processInput() {
	maxValue, hasMax := maxInputValue(impl.points)

	var lastGoodValue float64

	for idx := range impl.points {
		point := &impl.points[idx]
		if !point.IsEmptyValue() {
			lastGoodValue = percentOf(*point.InputValue, maxValue, hasMax)
		}

		point.graphValue = &PointF{
			X: float64(idx),
			Y: lastGoodValue,
		}
	}

	if impl.baseline.IsEmptyValue() {
		impl.baseline.graphValue = nil
	} else {
		impl.baseline.graphValue = &PointF{
			X: 0,
			Y: percentOf(*impl.baseline.InputValue, maxValue, hasMax),
		}
	}

	impl.logger.WithFields(l.IntField("count", len(impl.points)),
		l.Float64Field("maxValue", maxValue),
		l.BoolField("hasMax", hasMax),
		l.Float64Field("graphBaseline", impl.GraphBaseline())).Debug("input processed")

	impl.NotifyDataSetChanged()
}

func (impl *adapterImpl) Count() int {
	return len(impl.points)
}

func (impl *adapterImpl) graphPoint(index int) (PointF, error) {
	if index < 0 || index >= len(impl.points) {
		return PointF{}, commerr.ErrOutOfRange
	}

	p, _ := impl.points[index].GraphValue()

	return p, nil
}

func (impl *adapterImpl) GraphX(index int) (float64, error) {
	p, err := impl.graphPoint(index)
	if err != nil {
		return 0, err
	}

	return p.X, nil
}

func (impl *adapterImpl) GraphY(index int) (float64, error) {
	p, err := impl.graphPoint(index)
	if err != nil {
		return 0, err
	}

	return p.Y, nil
}

func (impl *adapterImpl) IsEmptyValue(index int) (bool, error) {
	if index < 0 || index >= len(impl.points) {
		return false, commerr.ErrOutOfRange
	}

	return impl.points[index].IsEmptyValue(), nil
}

func (impl *adapterImpl) GraphBaseline() float64 {
	p, ok := impl.baseline.GraphValue()
	if !ok {
		return NoBaseline
	}

	return p.Y
}

func (impl *adapterImpl) HasBaseline() bool {
	_, ok := impl.baseline.GraphValue()

	return ok
}

func (impl *adapterImpl) DataBounds() Bounds {
	bounds := impl.boundsCalculator(impl)

	impl.logger.WithFields(l.Float64Field("minX", bounds.MinX),
		l.Float64Field("minY", bounds.MinY),
		l.Float64Field("maxX", bounds.MaxX),
		l.Float64Field("maxY", bounds.MaxY)).Debug("data bounds")

	return bounds
}

func (impl *adapterImpl) SetListener(listener OnDataChangedListener) {
	impl.listener = listener
}

func (impl *adapterImpl) NotifyDataSetChanged() {
	if impl.listener != nil {
		impl.listener.OnDataChanged()
	}
}

func (impl *adapterImpl) NotifyDataSetInvalidated() {
	if impl.listener != nil {
		impl.listener.OnDataInvalidated()
	}
}
