package sparkles

// OnDataChangedListener is told about updates of the adapter data set.
type OnDataChangedListener interface {
	OnDataChanged()
	OnDataInvalidated()
}

// DataSource is the read-only view of the adapter used by the bounds calculation.
type DataSource interface {
	Count() int
	GraphX(index int) (float64, error)
	GraphY(index int) (float64, error)
	IsEmptyValue(index int) (bool, error)
	GraphBaseline() float64
	HasBaseline() bool
}

// Adapter holds and processes the user input data, and notifies the view about updates.
type Adapter interface {
	DataSource

	SetInput(points []DataPoint, baseline *DataPoint)
	DataBounds() Bounds

	SetListener(listener OnDataChangedListener)
	NotifyDataSetChanged()
	NotifyDataSetInvalidated()
}

// ListenerFuncs adapts a pair of closures to OnDataChangedListener. Nil funcs are skipped.
type ListenerFuncs struct {
	DataChanged     func()
	DataInvalidated func()
}

func (fns ListenerFuncs) OnDataChanged() {
	if fns.DataChanged != nil {
		fns.DataChanged()
	}
}

func (fns ListenerFuncs) OnDataInvalidated() {
	if fns.DataInvalidated != nil {
		fns.DataInvalidated()
	}
}
