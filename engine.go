package flogger

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// engine implements the generic "buffer until threshold, then flush
// asynchronously" protocol. It owns no buffer itself: the Batcher strategy
// supplied at construction does, and the engine only decides when to drain
// it and where the rendered text goes.
//
// The sink and the pool are shared, externally owned resources. The engine
// references them and never shuts them down.
type engine struct {
	id       string
	name     string
	sink     Sink
	site     CallSite
	pool     *Pool
	internal *zerolog.Logger
	batcher  Batcher

	severity     Severity
	numberWindow int
	timeWindow   time.Duration

	// lastFlush holds unix nanos of the most recent scheduled flush and
	// paces the time-window trigger.
	lastFlush atomic.Int64
	stopTick  func()
}

func newEngine(name string, sink Sink, site CallSite, pool *Pool, internal *zerolog.Logger,
	severity Severity, numberWindow int, timeWindow time.Duration, b Batcher) *engine {
	e := &engine{
		id:           uuid.NewString(),
		name:         name,
		sink:         sink,
		site:         site,
		pool:         pool,
		internal:     internal,
		batcher:      b,
		severity:     severity,
		numberWindow: numberWindow,
		timeWindow:   timeWindow,
	}
	e.lastFlush.Store(time.Now().UnixNano())
	e.stopTick = pool.Periodic(timeWindow, e.tick)
	return e
}

// asyncFlush schedules a drain of up to count items (0 meaning everything)
// off the caller's thread. Scheduling never blocks: when the pool refuses
// the task the data simply stays buffered for the next trigger.
func (e *engine) asyncFlush(count int) {
	if count < 0 {
		count = 0
	}
	if !e.pool.Submit(func() { e.flush(count) }) {
		e.internal.Warn().
			Str("aggregator", e.name).
			Str("engine_id", e.id).
			Msg("flush submission rejected, data stays buffered")
		return
	}
	e.lastFlush.Store(time.Now().UnixNano())
}

// flush drains, renders and emits. Drained data is consumed regardless of
// the delivery outcome: sink failures are reported on the internal logger
// and never re-buffered (at-most-once delivery).
func (e *engine) flush(count int) {
	flushID := uuid.NewString()

	msg, err := e.batcher.Message(count)
	if err != nil {
		e.internal.Error().Err(err).
			Str("aggregator", e.name).
			Str("flush_id", flushID).
			Msg("drain failed")
		return
	}

	if err := e.sink.Emit(e.severity, e.site, msg); err != nil {
		e.internal.Error().Err(err).
			Str("aggregator", e.name).
			Str("flush_id", flushID).
			Str("error_history", joinChain(unwrapChain(err))).
			Msg("sink delivery failed")
		return
	}
	e.internal.Trace().
		Str("aggregator", e.name).
		Str("flush_id", flushID).
		Msg("flush delivered")
}

// tick is the periodic time-window check. It runs on the pool's periodic
// goroutine for this registration, never concurrently with itself.
func (e *engine) tick() {
	if e.batcher.Buffered() == 0 {
		return
	}
	if time.Duration(time.Now().UnixNano()-e.lastFlush.Load()) < e.timeWindow {
		return
	}
	e.asyncFlush(0)
}

func (e *engine) close() {
	if e.stopTick != nil {
		e.stopTick()
	}
}
