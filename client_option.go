package matrix

import (
	"net/http"
	"time"

	"github.com/xizhibei/go-matrix/telemetry"
)

type clientOptions struct {
	name          string
	httpClient    *http.Client
	timeout       time.Duration
	hasTimeout    bool
	lenientDecode bool
	logRequests   bool
	workerNum     int
	telemetry     telemetry.Telemetry
}

// ClientOption is a functional option for configuring the client.
type ClientOption func(o *clientOptions)

// WithClientName sets the name reported in metrics labels and logs.
func WithClientName(name string) ClientOption {
	return func(o *clientOptions) {
		o.name = name
	}
}

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is
// overridden only when a timeout is configured.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *clientOptions) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithTimeout sets the per-request timeout, taking precedence over Config.Timeout.
// Zero disables the client-side limit.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = d
		o.hasTimeout = true
	}
}

// WithLenientDecode makes Call return a nil result instead of a *DecodeError
// when the response body is not valid JSON.
func WithLenientDecode(lenient bool) ClientOption {
	return func(o *clientOptions) {
		o.lenientDecode = lenient
	}
}

// WithLogRequests logs every response at info level instead of debug.
func WithLogRequests(logRequests bool) ClientOption {
	return func(o *clientOptions) {
		o.logRequests = logRequests
	}
}

// WithWorkerNum sets how many calls Batch runs concurrently.
// Default is runtime.NumCPU().
func WithWorkerNum(count int) ClientOption {
	return func(o *clientOptions) {
		if count > 0 {
			o.workerNum = count
		}
	}
}

// WithTelemetry sets the telemetry used for spans and request metrics.
func WithTelemetry(tel telemetry.Telemetry) ClientOption {
	return func(o *clientOptions) {
		if tel != nil {
			o.telemetry = tel
		}
	}
}
