package matrix_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	matrix "github.com/xizhibei/go-matrix"
)

func TestErrors_IsAndUnwrap(t *testing.T) {
	cause := errors.New("boom")

	cerr := &matrix.ConfigurationError{Fields: []string{"host"}, Err: cause}
	assert.True(t, errors.Is(cerr, matrix.ErrConfiguration))
	assert.True(t, errors.Is(cerr, cause))
	assert.False(t, errors.Is(cerr, matrix.ErrTransport))
	assert.Contains(t, cerr.Error(), "[host]")

	terr := &matrix.TransportError{Method: "get_version", StatusCode: 502, Err: matrix.ErrUnexpectedStatus}
	assert.True(t, errors.Is(terr, matrix.ErrTransport))
	assert.True(t, errors.Is(terr, matrix.ErrUnexpectedStatus))
	assert.False(t, errors.Is(terr, matrix.ErrDecode))
	assert.Contains(t, terr.Error(), "status 502")

	derr := &matrix.DecodeError{Method: "get_version", Err: cause}
	assert.True(t, errors.Is(derr, matrix.ErrDecode))
	assert.True(t, errors.Is(derr, cause))
	assert.Contains(t, derr.Error(), "get_version")
}

func TestErrors_WrappedStillMatches(t *testing.T) {
	err := errors.Wrap(&matrix.TransportError{Method: "m", Err: errors.New("dial")}, "batch")

	var terr *matrix.TransportError
	assert.True(t, errors.As(err, &terr))
	assert.Equal(t, "m", terr.Method)
	assert.True(t, errors.Is(err, matrix.ErrTransport))
}
