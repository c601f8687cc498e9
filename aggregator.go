package flogger

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// ErrNegativeCount rejects a drain request for a negative item count.
var ErrNegativeCount = errors.New("count should be >= 0")

// EventPair is a single aggregated event: two opaque strings with no
// identity beyond their fields.
type EventPair struct {
	Key   string
	Value string
}

// EventAggregator batches many same-shaped events (the typical case is api
// request/response pairs) into one summarized log entry instead of one line
// per event. Events are buffered in a bounded FIFO and flushed by count
// threshold, by elapsed time, or on Close.
//
// Add is safe for arbitrarily many producer goroutines and never blocks a
// producer beyond a small bounded stall.
type EventAggregator struct {
	name         string
	numberWindow int
	events       chan EventPair

	// drainMu serializes drains so two near-simultaneous flush triggers
	// never drain overlapping or skipped items.
	drainMu sync.Mutex

	dropped atomic.Uint64
	onDrop  func(EventPair)
	eng     *engine
	closed  atomic.Bool
}

// NewEventAggregator builds a standalone aggregator over a shared sink and
// pool. Most callers go through Service.EventAggregator instead, which also
// registers the aggregator for drain-on-shutdown.
func NewEventAggregator(opts AggregatorOptions, sink Sink, pool *Pool) (*EventAggregator, error) {
	return newEventAggregator(opts, sink, pool, nopLogger())
}

func newEventAggregator(opts AggregatorOptions, sink Sink, pool *Pool, internal *zerolog.Logger) (*EventAggregator, error) {
	opts.applyDefaults()
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	a := &EventAggregator{
		name:         opts.Name,
		numberWindow: opts.NumberWindow,
		events:       make(chan EventPair, opts.Capacity),
		onDrop:       opts.OnDrop,
	}
	a.eng = newEngine(opts.Name, sink, opts.Site, pool, internal,
		opts.Severity, opts.NumberWindow, opts.TimeWindow, a)
	return a, nil
}

// Name returns the aggregation group identity used as the message header.
func (a *EventAggregator) Name() string { return a.name }

// Add buffers one event. When the buffer crosses the number window an
// asynchronous flush of exactly one window's worth is triggered; a full
// buffer forces an immediate full flush followed by a brief pause and a
// retry. After addAttempts failed cycles the event is counted as dropped
// and reported through the OnDrop callback when one is configured; Add
// itself never returns an error for capacity conditions.
func (a *EventAggregator) Add(event, content string) {
	pair := EventPair{Key: event, Value: content}
	for attempt := 0; attempt < addAttempts; attempt++ {
		if a.offer(pair) {
			if a.ShouldFlushByNumber() {
				a.eng.asyncFlush(a.numberWindow)
			}
			return
		}
		// Buffer full: drain everything to make room before retrying.
		a.eng.asyncFlush(0)
		time.Sleep(retryPause)
	}

	a.dropped.Inc()
	if a.onDrop != nil {
		a.onDrop(pair)
	}
}

// offer attempts a bounded enqueue: an immediate try first, then one wait of
// at most offerTimeout for space.
func (a *EventAggregator) offer(pair EventPair) bool {
	select {
	case a.events <- pair:
		return true
	default:
	}

	t := time.NewTimer(offerTimeout)
	defer t.Stop()
	select {
	case a.events <- pair:
		return true
	case <-t.C:
		return false
	}
}

// ShouldFlushByNumber reports whether the buffered count has reached the
// number window.
func (a *EventAggregator) ShouldFlushByNumber() bool {
	return len(a.events) >= a.numberWindow
}

// Buffered returns the current buffered event count.
func (a *EventAggregator) Buffered() int { return len(a.events) }

// Dropped returns the number of events lost after exhausted retries.
func (a *EventAggregator) Dropped() uint64 { return a.dropped.Load() }

// Message drains up to count pairs (0 meaning all currently present) in
// insertion order and renders them. Drains are serialized: no pair is ever
// drained twice or skipped.
func (a *EventAggregator) Message(count int) (string, error) {
	if count < 0 {
		return emptyString, ErrNegativeCount
	}

	a.drainMu.Lock()
	defer a.drainMu.Unlock()

	n := len(a.events)
	if count > 0 && count < n {
		n = count
	}
	batch := make([]EventPair, 0, n)
	for len(batch) < n {
		select {
		case pair := <-a.events:
			batch = append(batch, pair)
		default:
			// Buffer shrank under us; drain what is there.
			n = len(batch)
		}
	}

	return formatEvents(a.name, batch), nil
}

// Close stops the time-window trigger and performs one final synchronous
// drain of everything buffered. Safe to call more than once.
func (a *EventAggregator) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return nil
	}
	a.eng.close()
	a.eng.flush(0)
	return nil
}

// formatEvents renders a drained batch: a header line with the aggregator
// name, each pair as "key:value | " with a line break after every 10th pair
// and a trailing break when the final group is partial, then a footer with
// the drained count. An empty batch still renders a valid header/footer.
func formatEvents(name string, batch []EventPair) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('\n')

	for i, pair := range batch {
		b.WriteString(pair.Key)
		b.WriteByte(':')
		b.WriteString(pair.Value)
		b.WriteString(" | ")
		if (i+1)%eventsPerLine == 0 {
			b.WriteByte('\n')
		}
	}
	if len(batch)%eventsPerLine != 0 {
		b.WriteByte('\n')
	}

	b.WriteString("\ntotal: ")
	b.WriteString(strconv.Itoa(len(batch)))
	return b.String()
}
