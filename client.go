package matrix

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Jeffail/tunny"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/xizhibei/go-matrix/compressor"
	"github.com/xizhibei/go-matrix/telemetry"
)

const (
	headerRequestID = "X-Request-Id"
	redacted        = "REDACTED"
)

// Client is the HTTP Transport for the Matrix API. It is safe for concurrent use.
type Client struct {
	config     Config
	httpClient *http.Client
	log        *zap.SugaredLogger
	telemetry  telemetry.Telemetry
	compressor *compressor.CompressorManager
	options    *clientOptions

	cbList       []OnAfterResponseCallback
	cbMu         sync.RWMutex
	afterResPool sync.Pool

	// held for reading by a running Batch, for writing by Close
	mu         sync.RWMutex
	workerPool *tunny.Pool
	poolOnce   sync.Once
	closed     atomic.Bool
}

var _ Transport = (*Client)(nil)

// NewClient creates a client for the API described by cfg.
func NewClient(cfg Config, options ...ClientOption) *Client {
	o := clientOptions{
		name:      cfg.Host(),
		workerNum: runtime.NumCPU(),
		timeout:   cfg.Timeout(),
	}

	for _, option := range options {
		option(&o)
	}

	if o.telemetry == nil {
		o.telemetry, _ = telemetry.NewNoop()
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if o.hasTimeout || o.timeout > 0 {
		cloned := *httpClient
		cloned.Timeout = o.timeout
		httpClient = &cloned
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
		log:        zap.S().With("module", "matrix.client", "name", o.name),
		telemetry:  o.telemetry,
		compressor: compressor.NewCompressorManager(),
		options:    &o,
		afterResPool: sync.Pool{
			New: func() interface{} {
				return new(AfterResponseEvent)
			},
		},
	}
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close releases the Batch worker pool, waiting for running batches first.
// Call keeps working after Close.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	// waits for a concurrent pool() and keeps later ones from creating a pool
	c.poolOnce.Do(func() {})
	if c.workerPool != nil {
		c.workerPool.Close()
	}
	return nil
}

// BuildURL returns the request URL for method with params plus the standard
// parameters appended last.
func (c *Client) BuildURL(method string, params *Params) string {
	q := c.withStandardParams(params).Encode()
	u := c.config.BaseURL() + APIPath + url.PathEscape(method)
	if q != "" {
		u += "?" + q
	}
	return u
}

// Standard parameters always go last, replacing same-named caller params.
func (c *Client) withStandardParams(params *Params) *Params {
	p := params.Clone().Del(ParamAPIKey).Del(ParamAPIVersion).Del(ParamDebug)
	if c.config.APIKey() != "" {
		p.SetString(ParamAPIKey, c.config.APIKey())
	}
	if c.config.APIVersion() != "" {
		p.SetString(ParamAPIVersion, c.config.APIVersion())
	}
	if c.config.Debug() {
		p.SetString(ParamDebug, DebugValue)
	}
	return p
}

func (c *Client) redact(rawURL string) string {
	key := c.config.APIKey()
	if key == "" {
		return rawURL
	}
	return strings.ReplaceAll(rawURL, ParamAPIKey+"="+url.QueryEscape(key), ParamAPIKey+"="+redacted)
}

// Call issues GET /api/{method} and decodes the JSON body.
// Failures are *TransportError or *DecodeError.
func (c *Client) Call(ctx context.Context, method string, params *Params) (result any, err error) {
	start := time.Now()
	status := 0
	requestID := uuid.NewString()

	var span trace.Span
	ctx, span = c.telemetry.StartSpan(ctx, "Matrix.Client.Call "+method)
	defer span.End()

	defer func() {
		duration := time.Since(start).Round(time.Millisecond)

		span.SetAttributes(
			attribute.String("matrix.method", method),
			attribute.String("matrix.request_id", requestID),
			attribute.Int("http.response.status_code", status),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		c.telemetry.RecordRequest(ctx, duration, method, strconv.Itoa(status), err)

		if c.options.logRequests {
			c.log.Infof("Response of %s [%d] (%v) id=%s", method, status, duration, requestID)
		} else {
			c.log.Debugf("Response of %s [%d] (%v) id=%s", method, status, duration, requestID)
		}

		evt := c.afterResPool.Get().(*AfterResponseEvent)
		evt.Method = method
		evt.StatusCode = status
		evt.Duration = duration
		evt.Err = err
		c.emitAfterResponse(evt)
	}()

	if method == "" {
		return nil, &TransportError{Err: ErrEmptyMethod}
	}

	rawURL := c.BuildURL(method, params)
	safeURL := c.redact(rawURL)
	c.log.Debugf("GET %s id=%s", safeURL, requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Method: method, URL: safeURL, Err: c.stripURL(err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", compressor.AcceptEncoding)
	req.Header.Set(headerRequestID, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: safeURL, Err: c.stripURL(err)}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: safeURL, StatusCode: status, Err: errors.Wrap(err, "read body")}
	}

	var decoded []byte
	var derr error
	if resp.Uncompressed {
		decoded = body
	} else {
		decoded, derr = c.compressor.DecompressHeader(resp.Header.Get("Content-Encoding"), body)
	}

	if status < 200 || status > 299 {
		// error pages that fail to decompress are reported raw
		page := decoded
		if derr != nil {
			page = body
		}
		return nil, &TransportError{
			Method:     method,
			URL:        safeURL,
			StatusCode: status,
			Err:        errors.Wrapf(ErrUnexpectedStatus, "%s", snippet(page)),
		}
	}

	if derr != nil {
		return c.decodeFailure(method, body, derr)
	}
	body = decoded

	result, err = decodeJSON(body)
	if err != nil {
		return c.decodeFailure(method, body, err)
	}
	return result, nil
}

func (c *Client) decodeFailure(method string, body []byte, cause error) (any, error) {
	derr := newDecodeError(method, body, cause)
	if c.options.lenientDecode {
		c.log.Warnf("Ignore malformed response of %s: %v", method, cause)
		return nil, nil
	}
	return nil, derr
}

// The *url.Error from net/http embeds the full URL, API key included.
func (c *Client) stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return errors.Wrapf(uerr.Err, "%s %s", uerr.Op, c.redact(uerr.URL))
	}
	return err
}

func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty body")
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	return out, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}
