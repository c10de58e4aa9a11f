package lms_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	matrix "github.com/xizhibei/go-matrix"
	"github.com/xizhibei/go-matrix/lms"
)

func TestGetClassesWithIDsOverHTTPS(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":10},{"id":20}]`))
	}))
	defer srv.Close()

	host, portStr, err := net.SplitHostPort(srv.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg, err := matrix.NewConfig(matrix.Record{
		Host:       matrix.Ptr(host),
		APIKey:     matrix.Ptr("K"),
		APIVersion: matrix.Ptr("2"),
		UseSSL:     matrix.Ptr(true),
		Port:       matrix.Ptr(port),
	})
	require.NoError(t, err)

	client := matrix.NewClient(cfg, matrix.WithHTTPClient(srv.Client()))
	defer client.Close()

	api := lms.New(client)
	res, err := api.Classes.GetClassesWithIDs(context.Background(), matrix.CSV("10,20"))
	require.NoError(t, err)

	require.Equal(t, "/api/get_classes_with_ids", gotPath)
	require.Equal(t, "class_ids%5B%5D=10&class_ids%5B%5D=20&api_key=K&api_version=2", gotQuery)

	list, ok := res.([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	require.Equal(t, json.Number("10"), list[0].(map[string]any)["id"])
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestGetClassesWithIDsURL(t *testing.T) {
	var gotURL string
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"classes":[]}`)),
			Request:    r,
		}, nil
	})}

	cfg := matrix.MustConfig(matrix.Record{
		Host:       matrix.Ptr("example.org"),
		APIKey:     matrix.Ptr("K"),
		APIVersion: matrix.Ptr("2"),
		UseSSL:     matrix.Ptr(true),
		Debug:      matrix.Ptr(false),
	})
	client := matrix.NewClient(cfg, matrix.WithHTTPClient(hc))
	defer client.Close()

	res, err := lms.NewClasses(client).GetClassesWithIDs(context.Background(), matrix.CSV("10,20"))
	require.NoError(t, err)
	require.Equal(t, "https://example.org/api/get_classes_with_ids?class_ids%5B%5D=10&class_ids%5B%5D=20&api_key=K&api_version=2", gotURL)
	require.Equal(t, map[string]any{"classes": []any{}}, res)
}
