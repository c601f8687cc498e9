package flogger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service owns the shared resources of the aggregation core: the backing
// zerolog logger and its writers, the flush pool, the default sink, and the
// registry of named event aggregators.
type Service struct {
	WorkingDir string
	Config     *Config

	logger     atomic.Pointer[zerolog.Logger]
	fileWriter *lumberjack.Logger
	pool       *Pool
	sink       Sink
	instanceID string

	mu          sync.RWMutex
	aggregators map[string]*EventAggregator
	initialized atomic.Bool
}

// NewService returns an uninitialized Service.
func NewService() *Service {
	return &Service{}
}

// Initialize builds the writers, the backing logger, the sink and the flush
// pool from the configuration. Safe to call more than once.
func (s *Service) Initialize() error {
	if s == nil {
		return errors.New(errMsgNilService)
	}
	if s.initialized.Load() {
		return nil
	}

	if s.Config == nil {
		cfg := DefaultConfig()
		s.Config = &cfg
	}
	if err := validateConfig(s.Config); err != nil {
		return err
	}

	if s.Config.FileLogging {
		if s.WorkingDir == emptyString {
			return errors.New(errMsgNoWorkingDir)
		}
		dir := filepath.Join(s.WorkingDir, s.Config.RelLogFileDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}

	writers := s.initializeWriters()
	if len(writers) == 0 {
		return errors.New(errMsgNoWriters)
	}
	mw := io.MultiWriter(writers...)

	level, err := parseLevel(s.Config.Level)
	if err != nil {
		return fmt.Errorf("setting logging level: %w", err)
	}

	s.instanceID = uuid.NewString()
	logger := zerolog.New(mw).Level(level).With().
		Str("instance_id", s.instanceID).
		Logger()
	if s.Config.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}

	s.logger.Store(&logger)
	s.pool = NewPool(s.Config.PoolWorkers, s.Config.PoolQueue)
	s.sink = NewZerologSink(&logger)
	s.aggregators = make(map[string]*EventAggregator)

	s.initialized.Store(true)
	return nil
}

// Logger returns the backing zerolog logger, or nil before Initialize.
func (s *Service) Logger() *zerolog.Logger {
	return s.logger.Load()
}

// Sink returns the default sink emitting through the backing logger.
func (s *Service) Sink() Sink { return s.sink }

// Pool returns the shared flush pool.
func (s *Service) Pool() *Pool { return s.pool }

// EventAggregator returns the aggregator registered under opts.Name,
// creating it on first use. Later calls with the same name return the
// existing instance and ignore the rest of the options.
func (s *Service) EventAggregator(opts AggregatorOptions) (*EventAggregator, error) {
	if s == nil || !s.initialized.Load() {
		return nil, errors.New(errMsgNotInitialized)
	}

	s.mu.RLock()
	agg, ok := s.aggregators[opts.Name]
	s.mu.RUnlock()
	if ok {
		return agg, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Close may have run since the read-locked lookup.
	if s.aggregators == nil {
		return nil, errors.New(errMsgNotInitialized)
	}
	if agg, ok := s.aggregators[opts.Name]; ok {
		return agg, nil
	}
	agg, err := newEventAggregator(opts, s.sink, s.pool, s.logger.Load())
	if err != nil {
		return nil, err
	}
	s.aggregators[opts.Name] = agg
	return agg, nil
}

// Close drains every registered aggregator once, then shuts the pool down,
// waiting up to the configured shutdown timeout for in-flight flushes.
// Safe to call more than once.
func (s *Service) Close() error {
	if s == nil || !s.initialized.CompareAndSwap(true, false) {
		return nil
	}

	s.mu.Lock()
	aggs := make([]*EventAggregator, 0, len(s.aggregators))
	for _, agg := range s.aggregators {
		aggs = append(aggs, agg)
	}
	s.aggregators = nil
	s.mu.Unlock()

	for _, agg := range aggs {
		_ = agg.Close()
	}

	timeout := time.Duration(s.Config.ShutdownTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultShutdownTimeoutMS * time.Millisecond
	}

	done := make(chan error, 1)
	go func() { done <- s.pool.Close() }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %v", timeout)
	}
}
