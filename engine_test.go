package flogger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

// failingSink always refuses delivery.
type failingSink struct {
	err   error
	calls atomic.Int32
}

func (f *failingSink) Emit(Severity, CallSite, string) error {
	f.calls.Inc()
	return f.err
}

func TestEngineTimeWindowFlush(t *testing.T) {
	sink := &captureSink{}
	agg := newTestAggregator(t, AggregatorOptions{
		Name: "window", Capacity: 100, NumberWindow: 100, TimeWindow: 20 * time.Millisecond,
	}, sink, newTestPool(t))

	agg.Add("k0", "v")
	agg.Add("k1", "v")
	agg.Add("k2", "v")

	require.Eventually(t, func() bool {
		return len(sink.snapshot()) >= 1
	}, time.Second, 5*time.Millisecond)

	first := sink.snapshot()[0]
	assert.Contains(t, first.message, "total: 3")
	assert.Equal(t, []string{"k0:v", "k1:v", "k2:v"}, parsePairs(t, first.message))
}

func TestEngineTickWithoutData(t *testing.T) {
	sink := &captureSink{}
	_ = newTestAggregator(t, AggregatorOptions{
		Name: "idle", Capacity: 8, NumberWindow: 8, TimeWindow: 5 * time.Millisecond,
	}, sink, newTestPool(t))

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, sink.snapshot())
}

func TestEngineSinkFailureConsumesData(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	sink := &failingSink{err: errors.New("backend unavailable")}

	pool := newTestPool(t)
	agg, err := newEventAggregator(AggregatorOptions{
		Name: "failing", Capacity: 8, NumberWindow: 8, TimeWindow: time.Hour,
	}, sink, pool, &logger)
	require.NoError(t, err)

	agg.Add("k0", "v")
	agg.Add("k1", "v")

	// Synchronous flush: delivery fails, drained data is consumed anyway.
	agg.eng.flush(0)

	assert.Zero(t, agg.Buffered())
	assert.Equal(t, int32(1), sink.calls.Load())
	assert.Contains(t, buf.String(), "sink delivery failed")
	assert.Contains(t, buf.String(), "backend unavailable")
}

func TestEngineRejectedSubmissionKeepsData(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	pool := newInertPool(t)

	agg, err := newEventAggregator(AggregatorOptions{
		Name: "rejected", Capacity: 8, NumberWindow: 8, TimeWindow: time.Hour,
	}, &captureSink{}, pool, &logger)
	require.NoError(t, err)

	agg.Add("k0", "v")
	before := pool.Rejected()
	agg.eng.asyncFlush(0)

	assert.Equal(t, 1, agg.Buffered())
	assert.Greater(t, pool.Rejected(), before)
	assert.Contains(t, buf.String(), "flush submission rejected")
}

func TestEngineNegativeCountClamped(t *testing.T) {
	sink := &captureSink{}
	agg := newTestAggregator(t, AggregatorOptions{
		Name: "clamp", Capacity: 8, NumberWindow: 8, TimeWindow: time.Hour,
	}, sink, newTestPool(t))

	agg.Add("k0", "v")
	agg.eng.asyncFlush(-5)

	require.Eventually(t, func() bool {
		return len(sink.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, sink.snapshot()[0].message, "total: 1")
}
