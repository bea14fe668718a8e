package http_test

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	jobhttp "github.com/fwojciec/jobfetch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = "<html><body><h1>Senior Engineer</h1></body></html>"

func compress(t *testing.T, newWriter func(io.Writer) io.WriteCloser) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := newWriter(&buf)
	_, err := w.Write([]byte(plain))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	t.Parallel()

	gzipped := compress(t, func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) })
	zlibbed := compress(t, func(w io.Writer) io.WriteCloser { return zlib.NewWriter(w) })
	raw := compress(t, func(w io.Writer) io.WriteCloser {
		fw, _ := flate.NewWriter(w, flate.DefaultCompression)
		return fw
	})
	brotlied := compress(t, func(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) })

	tests := []struct {
		name     string
		body     []byte
		encoding string
		want     string
	}{
		{"decodes gzip", gzipped, "gzip", plain},
		{"matches encodings case-insensitively", gzipped, " GZIP ", plain},
		{"decodes zlib-wrapped deflate", zlibbed, "deflate", plain},
		{"decodes raw deflate", raw, "deflate", plain},
		{"decodes brotli", brotlied, "br", plain},
		{"passes identity bodies through", []byte(plain), "", plain},
		{"passes unknown encodings through", []byte(plain), "zstd", plain},
		{"passes corrupt bodies through", []byte(plain), "gzip", plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := jobhttp.Decompress(tt.body, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecompress_SizeCap(t *testing.T) {
	t.Parallel()

	oversized := func(newWriter func(io.Writer) io.WriteCloser) []byte {
		var buf bytes.Buffer
		w := newWriter(&buf)
		_, _ = w.Write(make([]byte, 33<<20))
		_ = w.Close()
		return buf.Bytes()
	}

	t.Run("rejects gzip output over the cap", func(t *testing.T) {
		t.Parallel()

		body := oversized(func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) })

		_, err := jobhttp.Decompress(body, "gzip")
		assert.ErrorIs(t, err, jobhttp.ErrBodyTooLarge)
	})

	t.Run("rejects zlib-wrapped deflate output over the cap", func(t *testing.T) {
		t.Parallel()

		body := oversized(func(w io.Writer) io.WriteCloser { return zlib.NewWriter(w) })

		_, err := jobhttp.Decompress(body, "deflate")
		assert.ErrorIs(t, err, jobhttp.ErrBodyTooLarge)
	})

	t.Run("accepts output at the cap", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, _ = w.Write(make([]byte, 32<<20))
		require.NoError(t, w.Close())

		got, err := jobhttp.Decompress(buf.Bytes(), "gzip")
		require.NoError(t, err)
		assert.Len(t, got, 32<<20)
	})
}
