package flogger

import "time"

// AggregatorOptions configures one EventAggregator. All fields are fixed at
// construction and immutable thereafter.
type AggregatorOptions struct {
	// Name is the aggregation group identity, used as the message header.
	Name string `validate:"required"`

	// Capacity bounds the event buffer.
	Capacity int `validate:"gte=1"`

	// NumberWindow is the buffered-event count that triggers a flush. It
	// may exceed Capacity, in which case only the time window and the
	// full-buffer backpressure path ever trigger flushes.
	NumberWindow int `validate:"gte=1"`

	// TimeWindow is the elapsed duration that triggers a flush even when
	// the number window was not reached.
	TimeWindow time.Duration `validate:"gt=0"`

	// Severity of the emitted summary entries.
	Severity Severity `validate:"gte=0,lte=6"`

	// Site tags emitted summaries with the originating call site. Opaque
	// to the aggregator.
	Site CallSite `validate:"-"`

	// OnDrop, when set, is invoked for every event lost after exhausted
	// enqueue retries. Loss is also counted on Dropped regardless.
	OnDrop func(EventPair) `validate:"-"`
}

func (o *AggregatorOptions) applyDefaults() {
	if o.Capacity == 0 {
		o.Capacity = 100
	}
	if o.NumberWindow == 0 {
		o.NumberWindow = 10
	}
	if o.TimeWindow == 0 {
		o.TimeWindow = 500 * time.Millisecond
	}
	if o.Severity == 0 {
		o.Severity = SeverityInfo
	}
}
