package matrix_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matrix "github.com/xizhibei/go-matrix"
)

func TestRegisterMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/get_version":
			_, _ = w.Write([]byte(`"2"`))
		case "/api/get_my_account":
			_, _ = w.Write([]byte(`{broken`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	responseTime, errorCount := matrix.NewMetrics("test")
	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(responseTime, errorCount)

	c := matrix.NewClient(serverConfig(srv.Listener.Addr().String(), false), matrix.WithClientName("lms"))
	defer c.Close()
	c.RegisterMetrics(responseTime, errorCount)

	ctx := context.Background()
	_, err := c.Call(ctx, "get_version", nil)
	require.NoError(t, err)
	_, err = c.Call(ctx, "get_version", nil)
	require.NoError(t, err)
	_, err = c.Call(ctx, "get_my_account", nil)
	require.Error(t, err)
	_, err = c.Call(ctx, "missing", nil)
	require.Error(t, err)

	assert.Equal(t, 3, testutil.CollectAndCount(responseTime, "test_matrix_response_time_seconds"))
	assert.Equal(t, 2, testutil.CollectAndCount(errorCount, "test_matrix_error_count"))

	assert.Equal(t, float64(1), testutil.ToFloat64(errorCount.With(prometheus.Labels{
		"name": "lms", "method": "get_my_account", "status": "200", "kind": "decode",
	})))
	assert.Equal(t, float64(1), testutil.ToFloat64(errorCount.With(prometheus.Labels{
		"name": "lms", "method": "missing", "status": "404", "kind": "transport",
	})))

	count, err := testutil.GatherAndCount(reg, "test_matrix_response_time_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRegisterMetricsNilVectors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := matrix.NewClient(serverConfig(srv.Listener.Addr().String(), false))
	defer c.Close()
	c.RegisterMetrics(nil, nil)

	_, err := c.Call(context.Background(), "get_version", nil)
	assert.Error(t, err)
}
