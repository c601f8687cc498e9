// Package flogger provides the statement-lifecycle and event-aggregation
// core of a fluent logging library, built on rs/zerolog.
//
// Key features
//   - Two-phase log statements: a mutable Draft is finalized into an
//     immutable Record before it is handed to a sink
//   - Windowed aggregation: many same-shaped events (e.g. request/response
//     pairs) are batched into a single summarized log entry, flushed by
//     count threshold or elapsed time
//   - Bounded backpressure: producers never block for more than a small,
//     fixed duration; overload is surfaced as an observable drop counter
//     instead of a silent loss
//   - Shared worker pool for asynchronous flushes and periodic window
//     checks, with graceful bounded-timeout shutdown
//
// Typical usage
//
//	svc := flogger.NewService()
//	svc.Config = &cfg
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	agg, _ := svc.EventAggregator(flogger.AggregatorOptions{
//		Name:         "api",
//		Capacity:     100,
//		NumberWindow: 5,
//		TimeWindow:   500 * time.Millisecond,
//	})
//	agg.Add("1053", "200")
package flogger
