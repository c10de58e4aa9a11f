package matrix

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AfterResponseEvent describes a finished call. It is pooled: callbacks must
// not retain it.
type AfterResponseEvent struct {
	Method     string
	StatusCode int // 0 when no response was received
	Duration   time.Duration
	Err        error
}

// OnAfterResponseCallback is a function type that represents a callback function
// to be executed after a call completes.
type OnAfterResponseCallback func(e *AfterResponseEvent)

// OnAfterResponse registers a callback executed after every Call, successful or not.
func (c *Client) OnAfterResponse(cb OnAfterResponseCallback) {
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.cbList = append(c.cbList, cb)
}

func (c *Client) emitAfterResponse(e *AfterResponseEvent) {
	c.cbMu.RLock()
	for _, cb := range c.cbList {
		cb(e)
	}
	c.cbMu.RUnlock()

	*e = AfterResponseEvent{}
	c.afterResPool.Put(e)
}

var (
	responseTimeLabels = []string{"name", "method", "status"}
	errorCountLabels   = []string{"name", "method", "status", "kind"}
)

// NewMetrics builds the vectors RegisterMetrics expects, with the label sets
// name/method/status and name/method/status/kind. They are not registered.
func NewMetrics(namespace string) (*prometheus.HistogramVec, *prometheus.GaugeVec) {
	responseTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "matrix",
		Name:      "response_time_seconds",
		Help:      "Matrix API response time in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, responseTimeLabels)

	errorCount := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "matrix",
		Name:      "error_count",
		Help:      "Number of failed Matrix API calls.",
	}, errorCountLabels)

	return responseTime, errorCount
}

// RegisterMetrics records every call's duration in responseTime and counts
// failed calls in errorCount. Either may be nil.
func (c *Client) RegisterMetrics(responseTime *prometheus.HistogramVec, errorCount *prometheus.GaugeVec) {
	name := c.options.name
	c.OnAfterResponse(func(e *AfterResponseEvent) {
		status := strconv.Itoa(e.StatusCode)

		if responseTime != nil {
			responseTime.
				With(prometheus.Labels{"name": name, "method": e.Method, "status": status}).
				Observe(e.Duration.Seconds())
		}

		if e.Err != nil && errorCount != nil {
			errorCount.
				With(prometheus.Labels{"name": name, "method": e.Method, "status": status, "kind": errorKind(e.Err)}).
				Inc()
		}
	})
}
