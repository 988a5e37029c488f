// Package metrics exports Prometheus metrics for the operations observed by
// an events.EventFiringWebDriver.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wanmail/selenium/v2"
	"github.com/wanmail/selenium/v2/events"
)

// Namespace is the namespace of every metric exported by a Collector.
const Namespace = "selenium"

// Collector implements events.Listener, counting notifications and failures
// and timing paired operations.
type Collector struct {
	notifications *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec

	now func() time.Time

	mu      sync.Mutex
	started map[events.Args]pending
}

type pending struct {
	operation string
	at        time.Time
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// leaves them unregistered. Like promauto, it panics if registration fails.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "events",
			Name:      "notifications_total",
			Help:      "Notifications fired by event-firing WebDriver decorators.",
		}, []string{"event", "phase"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "events",
			Name:      "failures_total",
			Help:      "WebDriver calls that failed, by method and error code.",
		}, []string{"method", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "events",
			Name:      "operation_duration_seconds",
			Help:      "Time between the before and after or failure notifications of an operation.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"operation", "outcome"}),
		now:     time.Now,
		started: make(map[events.Args]pending),
	}
}

// OnEvent implements events.Listener.
func (c *Collector) OnEvent(kind events.Kind, args events.Args) error {
	c.notifications.WithLabelValues(kind.String(), kind.Phase().String()).Inc()

	switch kind.Phase() {
	case events.Before:
		c.mu.Lock()
		c.started[args] = pending{kind.Operation(), c.now()}
		c.mu.Unlock()
	case events.After:
		c.observe(events.Origin(args), "ok")
	case events.Failure:
		e, ok := args.(*events.ExceptionArgs)
		if !ok {
			return nil
		}
		c.failures.WithLabelValues(e.Method(), errorCode(e.Err())).Inc()
		if op := e.Operation(); op != nil {
			c.observe(op, "error")
		}
	}
	return nil
}

func (c *Collector) observe(origin events.Args, outcome string) {
	c.mu.Lock()
	p, ok := c.started[origin]
	delete(c.started, origin)
	c.mu.Unlock()
	if !ok {
		return
	}
	c.duration.WithLabelValues(p.operation, outcome).Observe(c.now().Sub(p.at).Seconds())
}

func errorCode(err error) string {
	if code := selenium.ErrorCode(err); code != "" {
		return code
	}
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline exceeded"
	}
	return "other"
}
