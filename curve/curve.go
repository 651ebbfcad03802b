package curve

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/timespan"
	"github.com/sorianog/sparkles/sparkles"
	"github.com/spf13/cast"
)

// Recorder aggregates raw samples into fixed-duration slots, one series per key and speed.
// Closed slots are kept in memory only.
type Recorder struct {
	logger l.Wrapper

	cfg          *Config
	newAggregate NewAggregate

	speedTimeSpans map[int]*timespan.TimeSpan

	slotsLock sync.Mutex
	openSlots *cache.Cache
	keys      map[string]struct{}

	historyLock sync.RWMutex
	history     map[string][]*SlotPoint

	observersLock sync.RWMutex
	observers     []Observer
}

type openSlot struct {
	speed  int
	label  string
	values map[string]Aggregate
}

func NewRecorder(cfg *Config, observer Observer, logger l.Wrapper) (*Recorder, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "Recorder"))

	cfg, err := cfg.withDefaults()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid config")

		return nil, err
	}

	newAggregate, err := AggregateByName(cfg.Aggregation)
	if err != nil {
		return nil, err
	}

	speedTimeSpans := make(map[int]*timespan.TimeSpan)

	for _, speed := range cfg.Speeds {
		speedTimeSpans[speed] = timespan.NewTimeSpan(cfg.SlotDuration * time.Duration(speed))
	}

	r := &Recorder{
		logger:         logger,
		cfg:            cfg,
		newAggregate:   newAggregate,
		speedTimeSpans: speedTimeSpans,
		openSlots:      cache.New(cache.NoExpiration, 0),
		keys:           make(map[string]struct{}),
		history:        make(map[string][]*SlotPoint),
	}

	if observer != nil {
		r.observers = append(r.observers, observer)
	}

	return r, nil
}

func (r *Recorder) AddObserver(observer Observer) {
	if observer == nil {
		return
	}

	r.observersLock.Lock()
	defer r.observersLock.Unlock()

	r.observers = append(r.observers, observer)
}

func (r *Recorder) SlotDuration(speed int) time.Duration {
	return r.cfg.SlotDuration * time.Duration(speed)
}

func (r *Recorder) genStorageKey(speed int, key string) string {
	return fmt.Sprintf("%d-%s", speed, key)
}

func (r *Recorder) genCachedKey(speed int, label string) string {
	return fmt.Sprintf("%d:%s", speed, label)
}

func (r *Recorder) Record(key string, v interface{}) error {
	return r.RecordAt(key, v, time.Now())
}

func (r *Recorder) RecordAt(key string, v interface{}, at time.Time) error {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		r.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("invalid sample")

		return fmt.Errorf("%w: %s", commerr.ErrInvalidArgument, err.Error())
	}

	r.slotsLock.Lock()
	defer r.slotsLock.Unlock()

	r.keys[key] = struct{}{}

	for speed, ts := range r.speedTimeSpans {
		label := ts.GetLabel(at)
		cachedKey := r.genCachedKey(speed, label)

		var slot *openSlot

		if i, ok := r.openSlots.Get(cachedKey); ok {
			slot, _ = i.(*openSlot)
		}

		if slot == nil {
			slot = &openSlot{
				speed:  speed,
				label:  label,
				values: make(map[string]Aggregate),
			}

			r.openSlots.Set(cachedKey, slot, cache.NoExpiration)
		}

		if agg, ok := slot.values[key]; ok {
			slot.values[key] = agg.Combine(f)
		} else {
			slot.values[key] = r.newAggregate(f)
		}
	}

	return nil
}

// Roll closes every open slot that ends before the slot containing now and notifies the observers.
func (r *Recorder) Roll(now time.Time) {
	samples := r.closeSlots(now)
	if len(samples) == 0 {
		return
	}

	for _, sample := range samples {
		r.appendHistory(sample)
	}

	r.observersLock.RLock()
	observers := append([]Observer{}, r.observers...)
	r.observersLock.RUnlock()

	for _, observer := range observers {
		observer.OnUpdate(now, samples)
	}
}

func (r *Recorder) closeSlots(now time.Time) (samples []*SlotSample) {
	r.slotsLock.Lock()
	defer r.slotsLock.Unlock()

	for cachedKey, item := range r.openSlots.Items() {
		slot, ok := item.Object.(*openSlot)
		if !ok {
			r.logger.WithFields(l.StringField("cachedKey", cachedKey)).Error("logic error: not a slot")
			r.openSlots.Delete(cachedKey)

			continue
		}

		ts := r.speedTimeSpans[slot.speed]

		current, err := ts.Label2Time(ts.GetLabel(now))
		if err != nil {
			r.logger.WithFields(l.ErrorField(err)).Error("current slot time failed")

			continue
		}

		at, err := ts.Label2Time(slot.label)
		if err != nil {
			r.logger.WithFields(l.StringField("label", slot.label), l.ErrorField(err)).Error("invalid slot label")
			r.openSlots.Delete(cachedKey)

			continue
		}

		if !at.Before(current) {
			continue
		}

		r.openSlots.Delete(cachedKey)

		values := make(map[string]float64, len(slot.values))
		for key, agg := range slot.values {
			values[key] = agg.Calc() // the aggregate is immutable
		}

		samples = append(samples, &SlotSample{
			Speed:  slot.speed,
			At:     at,
			Label:  slot.label,
			Values: values,
		})
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].At.Equal(samples[j].At) {
			return samples[i].Speed < samples[j].Speed
		}

		return samples[i].At.Before(samples[j].At)
	})

	return
}

func (r *Recorder) appendHistory(sample *SlotSample) {
	r.historyLock.Lock()
	defer r.historyLock.Unlock()

	for key, v := range sample.Values {
		storageKey := r.genStorageKey(sample.Speed, key)
		points := r.history[storageKey]

		replaced := false

		for _, point := range points {
			if point.Label == sample.Label {
				point.V = v
				replaced = true

				break
			}
		}

		if !replaced {
			points = append(points, &SlotPoint{
				At:    sample.At.Unix(),
				Label: sample.Label,
				V:     v,
			})

			sort.SliceStable(points, func(i, j int) bool {
				return points[i].At < points[j].At
			})
		}

		if len(points) > r.cfg.MaxPointCount {
			points = append([]*SlotPoint{}, points[len(points)-r.cfg.MaxPointCount:]...)
		}

		r.history[storageKey] = points
	}

	r.logger.WithFields(l.IntField("speed", sample.Speed), l.StringField("label", sample.Label),
		l.IntField("keys", len(sample.Values))).Debug("slot closed")
}

// Points returns count slots, oldest first, ending with the slot just before the one containing now.
// Slots without data are empty points.
func (r *Recorder) Points(speed int, key string, count int, now time.Time) ([]sparkles.DataPoint, error) {
	ts := r.speedTimeSpans[speed]
	if ts == nil {
		return nil, commerr.ErrNotFound
	}

	if count <= 0 {
		return nil, commerr.ErrInvalidArgument
	}

	at, err := ts.Label2Time(ts.GetLabel(now))
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64)

	r.historyLock.RLock()

	for _, point := range r.history[r.genStorageKey(speed, key)] {
		values[point.Label] = point.V
	}

	r.historyLock.RUnlock()

	d := r.SlotDuration(speed)
	points := make([]sparkles.DataPoint, count)

	for idx := count - 1; idx >= 0; idx-- {
		at = at.Add(-d)

		if v, ok := values[ts.GetLabel(at)]; ok {
			points[idx] = sparkles.NewDataPoint(v)
		} else {
			points[idx] = sparkles.NewEmptyDataPoint()
		}
	}

	return points, nil
}

func (r *Recorder) Keys() []string {
	r.slotsLock.Lock()
	defer r.slotsLock.Unlock()

	keys := make([]string, 0, len(r.keys))
	for key := range r.keys {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
