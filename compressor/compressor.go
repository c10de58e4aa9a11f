package compressor

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/cockroachdb/errors"
)

// ContentEncoding is an HTTP content coding.
type ContentEncoding int

const (
	ContentEncodingIdentity ContentEncoding = iota
	ContentEncodingGzip
	ContentEncodingDeflate
	ContentEncodingBrotli
)

// AcceptEncoding lists every coding Decompress understands, for the Accept-Encoding header.
const AcceptEncoding = "gzip, deflate, br"

var (
	ErrUnknownContentEncoding = errors.New("[Matrix] unknown content encoding")
)

// String returns the header token of the coding.
func (e ContentEncoding) String() string {
	switch e {
	case ContentEncodingGzip:
		return "gzip"
	case ContentEncodingDeflate:
		return "deflate"
	case ContentEncodingBrotli:
		return "br"
	case ContentEncodingIdentity:
		return "identity"
	}
	return "unknown"
}

// ParseContentEncoding maps a Content-Encoding header value to a ContentEncoding.
// An empty header means identity.
func ParseContentEncoding(header string) (ContentEncoding, error) {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "", "identity":
		return ContentEncodingIdentity, nil
	case "gzip", "x-gzip":
		return ContentEncodingGzip, nil
	case "deflate":
		return ContentEncodingDeflate, nil
	case "br":
		return ContentEncodingBrotli, nil
	}
	return ContentEncodingIdentity, errors.Wrapf(ErrUnknownContentEncoding, "%q", header)
}

// CompressorManager pools the readers used to decode response bodies. It is
// safe for concurrent use.
type CompressorManager struct {
	byteReaderPool sync.Pool
}

// NewCompressorManager returns a manager with empty pools.
func NewCompressorManager() *CompressorManager {
	return &CompressorManager{
		byteReaderPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewReader(nil)
			},
		},
	}
}

// Decompress decodes data encoded with tp. Identity data is returned as is.
func (c *CompressorManager) Decompress(tp ContentEncoding, data []byte) ([]byte, error) {
	if data == nil {
		return nil, nil
	}

	switch tp {
	case ContentEncodingGzip:
		return c.GzipDecompress(data)
	case ContentEncodingDeflate:
		return c.ZlibDecompress(data)
	case ContentEncodingBrotli:
		return c.BrotliDecompress(data)
	case ContentEncodingIdentity:
		return data, nil
	default:
		return nil, ErrUnknownContentEncoding
	}
}

// DecompressHeader decodes data according to a raw Content-Encoding header.
func (c *CompressorManager) DecompressHeader(header string, data []byte) ([]byte, error) {
	tp, err := ParseContentEncoding(header)
	if err != nil {
		return nil, err
	}
	return c.Decompress(tp, data)
}

// GzipDecompress decodes the gzip coding.
func (c *CompressorManager) GzipDecompress(data []byte) ([]byte, error) {
	byteReader := c.byteReaderPool.Get().(*bytes.Reader)
	defer c.byteReaderPool.Put(byteReader)
	byteReader.Reset(data)

	reader, err := gzip.NewReader(byteReader)
	if err != nil {
		return nil, errors.Wrap(err, "gzip")
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

// ZlibDecompress decodes the HTTP "deflate" coding, which is zlib framed.
func (c *CompressorManager) ZlibDecompress(data []byte) ([]byte, error) {
	byteReader := c.byteReaderPool.Get().(*bytes.Reader)
	defer c.byteReaderPool.Put(byteReader)
	byteReader.Reset(data)

	reader, err := zlib.NewReader(byteReader)
	if err != nil {
		return nil, errors.Wrap(err, "deflate")
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

// BrotliDecompress decodes the br coding.
func (c *CompressorManager) BrotliDecompress(data []byte) ([]byte, error) {
	byteReader := c.byteReaderPool.Get().(*bytes.Reader)
	defer c.byteReaderPool.Put(byteReader)
	byteReader.Reset(data)

	out, err := io.ReadAll(brotli.NewReader(byteReader))
	if err != nil {
		return nil, errors.Wrap(err, "br")
	}
	return out, nil
}
