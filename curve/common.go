package curve

import (
	"strings"

	"github.com/sgostarter/i/commerr"
)

const (
	AggregationAvg  = "avg"
	AggregationSum  = "sum"
	AggregationMax  = "max"
	AggregationMin  = "min"
	AggregationLast = "last"
)

func AggregateByName(name string) (NewAggregate, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AggregationAvg:
		return NewAvgAggregate, nil
	case AggregationSum:
		return NewSumAggregate, nil
	case AggregationMax:
		return NewMaxAggregate, nil
	case AggregationMin:
		return NewMinAggregate, nil
	case AggregationLast:
		return NewLastAggregate, nil
	}

	return nil, commerr.ErrInvalidArgument
}

type avgAggregate struct {
	sum   float64
	count int
}

func NewAvgAggregate(v float64) Aggregate {
	return avgAggregate{
		sum:   v,
		count: 1,
	}
}

func (o avgAggregate) Combine(v float64) Aggregate {
	return avgAggregate{
		sum:   o.sum + v,
		count: o.count + 1,
	}
}

func (o avgAggregate) Calc() float64 {
	return o.sum / float64(o.count)
}

type sumAggregate float64

func NewSumAggregate(v float64) Aggregate {
	return sumAggregate(v)
}

func (o sumAggregate) Combine(v float64) Aggregate {
	return o + sumAggregate(v)
}

func (o sumAggregate) Calc() float64 {
	return float64(o)
}

type maxAggregate float64

func NewMaxAggregate(v float64) Aggregate {
	return maxAggregate(v)
}

func (o maxAggregate) Combine(v float64) Aggregate {
	if v > float64(o) {
		return maxAggregate(v)
	}

	return o
}

func (o maxAggregate) Calc() float64 {
	return float64(o)
}

type minAggregate float64

func NewMinAggregate(v float64) Aggregate {
	return minAggregate(v)
}

func (o minAggregate) Combine(v float64) Aggregate {
	if v < float64(o) {
		return minAggregate(v)
	}

	return o
}

func (o minAggregate) Calc() float64 {
	return float64(o)
}

type lastAggregate float64

func NewLastAggregate(v float64) Aggregate {
	return lastAggregate(v)
}

func (o lastAggregate) Combine(v float64) Aggregate {
	return lastAggregate(v)
}

func (o lastAggregate) Calc() float64 {
	return float64(o)
}
