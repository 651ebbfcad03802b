package curve

import (
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sorianog/sparkles/sparkles"
)

// Feeder pushes one recorder series into a sparkles adapter. The adapter is not goroutine safe,
// so Refresh, and Recorder.Roll when the feeder observes it, belong on the adapter's goroutine.
type Feeder struct {
	logger l.Wrapper

	recorder *Recorder
	adapter  sparkles.Adapter

	speed int
	key   string
	count int

	baseline *float64
}

func NewFeeder(recorder *Recorder, adapter sparkles.Adapter, speed int, key string, count int,
	logger l.Wrapper) *Feeder {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Feeder{
		logger: logger.WithFields(l.StringField(l.ClsKey, "Feeder"), l.StringField("key", key),
			l.IntField("speed", speed)),
		recorder: recorder,
		adapter:  adapter,
		speed:    speed,
		key:      key,
		count:    count,
	}
}

// SetBaseline sets the reference value shown next to the series, nil removes it. It applies on the next Refresh.
func (f *Feeder) SetBaseline(v *float64) {
	if v == nil {
		f.baseline = nil

		return
	}

	b := *v
	f.baseline = &b
}

func (f *Feeder) Refresh(now time.Time) error {
	points, err := f.recorder.Points(f.speed, f.key, f.count, now)
	if err != nil {
		f.logger.WithFields(l.ErrorField(err)).Error("load points failed")

		return err
	}

	var baseline *sparkles.DataPoint

	if f.baseline != nil {
		b := sparkles.NewDataPoint(*f.baseline)
		baseline = &b
	}

	f.adapter.SetInput(points, baseline)

	f.logger.WithFields(l.IntField("count", len(points)),
		l.TimeField("now", now)).Debug("refreshed")

	return nil
}

func (f *Feeder) OnUpdate(now time.Time, samples []*SlotSample) {
	for _, sample := range samples {
		if sample.Speed != f.speed {
			continue
		}

		if _, ok := sample.Values[f.key]; ok {
			_ = f.Refresh(now) // logged by Refresh

			return
		}
	}
}
