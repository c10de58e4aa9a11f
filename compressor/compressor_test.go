package compressor

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"io"
	"sync"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, tp ContentEncoding, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch tp {
	case ContentEncodingGzip:
		w = gzip.NewWriter(&buf)
	case ContentEncodingDeflate:
		w = zlib.NewWriter(&buf)
	case ContentEncodingBrotli:
		w = brotli.NewWriter(&buf)
	default:
		return data
	}
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestNewCompressorManager(t *testing.T) {
	manager := NewCompressorManager()

	byteReader := manager.byteReaderPool.Get().(*bytes.Reader)
	assert.NotNil(t, byteReader)
	manager.byteReaderPool.Put(byteReader)
}

func TestCompressorManager_Decompress(t *testing.T) {
	manager := NewCompressorManager()
	body := []byte(`[{"id":10,"name":"Algebra"},{"id":20,"name":"Biology"}]`)

	for _, enc := range []ContentEncoding{
		ContentEncodingGzip,
		ContentEncodingDeflate,
		ContentEncodingBrotli,
		ContentEncodingIdentity,
	} {
		t.Run(enc.String(), func(t *testing.T) {
			out, err := manager.Decompress(enc, encode(t, enc, body))
			require.NoError(t, err)
			assert.Equal(t, body, out)

			out, err = manager.DecompressHeader(enc.String(), encode(t, enc, body))
			require.NoError(t, err)
			assert.Equal(t, body, out)
		})
	}
}

func TestCompressorManager_Concurrent(t *testing.T) {
	manager := NewCompressorManager()
	body := bytes.Repeat([]byte("matrix"), 512)
	compressed := encode(t, ContentEncodingBrotli, body)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := manager.BrotliDecompress(compressed)
			assert.NoError(t, err)
			assert.Equal(t, body, d)
		}()
	}
	wg.Wait()
}

func TestCompressorManager_Unknown(t *testing.T) {
	manager := NewCompressorManager()

	out, err := manager.Decompress(ContentEncoding(42), []byte("x"))
	assert.Equal(t, ErrUnknownContentEncoding, err)
	assert.Nil(t, out)

	_, err = manager.DecompressHeader("compress", []byte("x"))
	assert.True(t, errors.Is(err, ErrUnknownContentEncoding))
}

func TestCompressorManager_Corrupt(t *testing.T) {
	manager := NewCompressorManager()

	_, err := manager.GzipDecompress([]byte("not gzip"))
	assert.Error(t, err)

	_, err = manager.ZlibDecompress([]byte("not zlib"))
	assert.Error(t, err)
}

func TestParseContentEncoding(t *testing.T) {
	cases := map[string]ContentEncoding{
		"":         ContentEncodingIdentity,
		"identity": ContentEncodingIdentity,
		"gzip":     ContentEncodingGzip,
		" GZIP ":   ContentEncodingGzip,
		"x-gzip":   ContentEncodingGzip,
		"deflate":  ContentEncodingDeflate,
		"br":       ContentEncodingBrotli,
	}
	for header, want := range cases {
		got, err := ParseContentEncoding(header)
		assert.NoError(t, err, header)
		assert.Equal(t, want, got, header)
	}

	_, err := ParseContentEncoding("zstd")
	assert.Error(t, err)
}

func TestNilData(t *testing.T) {
	manager := NewCompressorManager()

	out, err := manager.Decompress(ContentEncodingGzip, nil)
	assert.NoError(t, err)
	assert.Nil(t, out)
}
