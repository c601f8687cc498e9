package flogger

import "time"

const (
	// addAttempts bounds the enqueue-retry cycle in EventAggregator.Add.
	addAttempts = 3
	// offerTimeout bounds a single enqueue attempt against a full buffer.
	offerTimeout = time.Millisecond
	// retryPause separates enqueue attempts after a forced flush.
	retryPause = time.Millisecond
	// eventsPerLine is the number of rendered pairs per summary line.
	eventsPerLine = 10

	defaultPoolWorkers       = 2
	defaultPoolQueue         = 64
	defaultShutdownTimeoutMS = 5000

	emptyString = ""
)

const (
	errMsgNilService     = "flogger service is nil"
	errMsgNotInitialized = "flogger service is not initialized"
	errMsgNoWorkingDir   = "working dir has not been set"
	errMsgNoWriters      = "no logging channels enabled"
	errMsgConfigInvalid  = "flogger configuration is invalid"
	errMsgOptionsInvalid = "aggregator options are invalid"
)
