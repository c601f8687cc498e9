package flogger

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// newBenchAggregator builds an aggregator over a discard logger, focusing on
// pure enqueue/format overhead rather than I/O.
func newBenchAggregator(b *testing.B) *EventAggregator {
	b.Helper()
	logger := zerolog.New(io.Discard)
	pool := NewPool(2, 1024)
	b.Cleanup(func() { _ = pool.Close() })

	agg, err := NewEventAggregator(AggregatorOptions{
		Name:         "bench",
		Capacity:     4096,
		NumberWindow: 1024,
		TimeWindow:   time.Hour,
	}, NewZerologSink(&logger), pool)
	if err != nil {
		b.Fatal(err)
	}
	return agg
}

func BenchmarkAggregatorAdd(b *testing.B) {
	agg := newBenchAggregator(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		agg.Add("1053", "200")
	}
}

func BenchmarkAggregatorAddParallel(b *testing.B) {
	agg := newBenchAggregator(b)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			agg.Add("1053", "200")
		}
	})
}

func BenchmarkFormatEvents(b *testing.B) {
	batch := make([]EventPair, 100)
	for i := range batch {
		batch[i] = EventPair{Key: fmt.Sprintf("k%d", i), Value: "200"}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = formatEvents("bench", batch)
	}
}

func BenchmarkDraftPostProcess(b *testing.B) {
	site := CallSite{File: "api.go", Line: 42}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := NewDraft(int64(i), "bench")
		_ = d.SetLiteralArgument("hello")
		if _, err := d.PostProcess(site); err != nil {
			b.Fatal(err)
		}
	}
}
