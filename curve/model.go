package curve

import "time"

// Aggregate is an immutable running value of one slot.
type Aggregate interface {
	Combine(v float64) Aggregate
	Calc() float64
}

type NewAggregate func(v float64) Aggregate

type SlotPoint struct {
	At    int64   `yaml:"at" json:"at"`
	Label string  `yaml:"label" json:"label"`
	V     float64 `yaml:"v" json:"v"`
}

// SlotSample is one closed slot of one speed with the values of every key recorded in it.
type SlotSample struct {
	Speed  int
	At     time.Time
	Label  string
	Values map[string]float64
}

type Observer interface {
	OnUpdate(now time.Time, samples []*SlotSample)
}
