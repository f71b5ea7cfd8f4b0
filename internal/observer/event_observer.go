package observer

import (
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/sirupsen/logrus"
)

// EvaluationEvent represents a batch evaluation event
type EvaluationEvent struct {
	EventType      EventType              `json:"event_type"`
	Timestamp      time.Time              `json:"timestamp"`
	Mode           string                 `json:"mode"`
	Filename       string                 `json:"filename,omitempty"`
	ProcessingTime time.Duration          `json:"processing_time"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of evaluation event
type EventType string

const (
	RunStarted   EventType = "run_started"
	RunCompleted EventType = "run_completed"
	ItemScored   EventType = "item_scored"
	ItemSkipped  EventType = "item_skipped"
	ItemFailed   EventType = "item_failed"
	// ItemInvalid when a metric produced NaN or Inf
	ItemInvalid EventType = "item_invalid"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(event EvaluationEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(event EvaluationEvent)
}

// LoggingObserver logs evaluation events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent handles evaluation events by logging them
func (o *LoggingObserver) OnEvent(event EvaluationEvent) {
	fields := logrus.Fields{
		"event_type": event.EventType,
		"mode":       event.Mode,
	}
	if event.Filename != "" {
		fields["file"] = event.Filename
	}
	if event.ProcessingTime > 0 {
		fields["processing_time"] = event.ProcessingTime
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	entry := o.logger.WithFields(fields)
	switch event.EventType {
	case RunStarted:
		entry.Info("Evaluation run started")
	case RunCompleted:
		entry.Info("Evaluation run completed")
	case ItemScored:
		entry.Debug("Item scored")
	case ItemSkipped:
		entry.Warn("Item skipped")
	case ItemFailed:
		entry.Error("Item failed")
	case ItemInvalid:
		entry.Warn("Item produced a non-finite score")
	default:
		entry.Info("Evaluation event occurred")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// latency histogram bounds, in microseconds
const (
	minLatencyMicros = 1
	maxLatencyMicros = int64(time.Hour / time.Microsecond)
)

// MetricsObserver counts evaluation events and tracks per-item latency
type MetricsObserver struct {
	mu                  sync.RWMutex
	runs                int64
	scored              int64
	skipped             int64
	failed              int64
	invalid             int64
	totalProcessingTime time.Duration
	latency             *hdrhistogram.Histogram
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		latency: hdrhistogram.New(minLatencyMicros, maxLatencyMicros, 3),
	}
}

// OnEvent handles evaluation events by collecting counters
func (o *MetricsObserver) OnEvent(event EvaluationEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case RunStarted:
		o.runs++
		return
	case RunCompleted:
		return
	}

	micros := event.ProcessingTime.Microseconds()
	if micros < minLatencyMicros {
		micros = minLatencyMicros
	}
	// values above the range are dropped by the histogram
	_ = o.latency.RecordValue(micros)

	switch event.EventType {
	case ItemScored:
		o.scored++
		o.totalProcessingTime += event.ProcessingTime
	case ItemSkipped:
		o.skipped++
	case ItemFailed:
		o.failed++
	case ItemInvalid:
		o.invalid++
	}
}

// GetObserverName returns the observer name
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns current counters
func (o *MetricsObserver) GetMetrics() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	avgProcessingTime := time.Duration(0)
	if o.scored > 0 {
		avgProcessingTime = o.totalProcessingTime / time.Duration(o.scored)
	}

	return map[string]interface{}{
		"runs":                  o.runs,
		"scored_items":          o.scored,
		"skipped_items":         o.skipped,
		"failed_items":          o.failed,
		"invalid_items":         o.invalid,
		"total_processing_time": o.totalProcessingTime,
		"avg_processing_time":   avgProcessingTime,
		"item_latency_p50":      o.latencyAt(50),
		"item_latency_p95":      o.latencyAt(95),
		"item_latency_p100":     o.latencyAt(100),
	}
}

// latencyAt returns the item latency at percentile q (0..100)
func (o *MetricsObserver) latencyAt(q float64) time.Duration {
	if o.latency.TotalCount() == 0 {
		return 0
	}
	return time.Duration(o.latency.ValueAtQuantile(q)) * time.Microsecond
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

// Subscribe adds an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers delivers the event to every observer before returning,
// so log lines keep the order in which items complete
func (p *EventPublisher) NotifyObservers(event EvaluationEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	for _, obs := range observers {
		notify(obs, event)
	}
}

func notify(obs Observer, event EvaluationEvent) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("observer", obs.GetObserverName()).
				WithField("panic", r).
				Error("Observer panicked while handling event")
		}
	}()
	obs.OnEvent(event)
}
