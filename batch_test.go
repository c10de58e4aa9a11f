package matrix_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	matrix "github.com/xizhibei/go-matrix"
)

func TestBatch(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Inc()
		defer inFlight.Dec()
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)

		if r.URL.Query().Get("fail") != "" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(r.URL.Query().Get("n")))
	}))
	defer srv.Close()

	c := matrix.NewClient(serverConfig(srv.Listener.Addr().String(), false), matrix.WithWorkerNum(2))
	defer c.Close()

	calls := make([]matrix.BatchCall, 8)
	for i := range calls {
		p := matrix.NewParams().SetString("n", strconv.Itoa(i))
		if i == 5 {
			p.SetString("fail", "1")
		}
		calls[i] = matrix.BatchCall{Method: "get_version", Params: p}
	}

	results := c.Batch(context.Background(), calls)
	require.Len(t, results, len(calls))
	for i, res := range results {
		if i == 5 {
			assert.True(t, errors.Is(res.Err, matrix.ErrUnexpectedStatus))
			continue
		}
		require.NoError(t, res.Err)
		assert.Equal(t, strconv.Itoa(i), res.Result.(interface{ String() string }).String())
	}
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
}

func TestBatchEmpty(t *testing.T) {
	c := matrix.NewClient(serverConfig("127.0.0.1:1", false))
	defer c.Close()
	assert.Empty(t, c.Batch(context.Background(), nil))
}

func TestBatchAfterClose(t *testing.T) {
	c := matrix.NewClient(serverConfig("127.0.0.1:1", false))
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	results := c.Batch(context.Background(), []matrix.BatchCall{{Method: "get_version"}, {Method: "get_my_account"}})
	require.Len(t, results, 2)
	for _, res := range results {
		assert.True(t, errors.Is(res.Err, matrix.ErrClientClosed))
		assert.True(t, errors.Is(res.Err, matrix.ErrTransport))
	}
}

type staticTransport struct{}

func (staticTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(`"ok"`)),
		Request:    r,
	}, nil
}

func TestBatchConcurrentClose(t *testing.T) {
	hc := &http.Client{Transport: staticTransport{}}
	calls := []matrix.BatchCall{{Method: "get_version"}, {Method: "get_my_account"}, {Method: "get_classes"}}

	for i := 0; i < 500; i++ {
		c := matrix.NewClient(serverConfig("127.0.0.1:1", false), matrix.WithHTTPClient(hc), matrix.WithWorkerNum(2))

		var wg sync.WaitGroup
		var results []matrix.BatchResult
		wg.Add(2)
		go func() {
			defer wg.Done()
			results = c.Batch(context.Background(), calls)
		}()
		go func() {
			defer wg.Done()
			_ = c.Close()
		}()
		wg.Wait()

		require.Len(t, results, len(calls))
		for _, res := range results {
			if res.Err != nil {
				assert.True(t, errors.Is(res.Err, matrix.ErrClientClosed))
				continue
			}
			assert.Equal(t, "ok", res.Result)
		}
	}
}
