package http

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// maxBodySize caps how much of a response, compressed or not, is read.
const maxBodySize = 32 << 20

// ErrBodyTooLarge is returned when a response, before or after
// decompression, exceeds 32 MiB.
var ErrBodyTooLarge = errors.New("response body exceeds 32 MiB")

// Decompress decodes body according to a Content-Encoding value.
// Supported encodings are gzip, deflate (zlib-wrapped or raw) and br.
// Unknown encodings and bodies that fail to decode are returned unchanged.
// Returns ErrBodyTooLarge if the decoded body exceeds the size cap.
func Decompress(body []byte, encoding string) ([]byte, error) {
	out, err := decompress(body, strings.ToLower(strings.TrimSpace(encoding)))
	if errors.Is(err, ErrBodyTooLarge) {
		return nil, err
	} else if err != nil {
		return body, nil
	}
	return out, nil
}

func decompress(body []byte, encoding string) ([]byte, error) {
	switch encoding {
	case "gzip", "x-gzip":
		r, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return readAll(r)
	case "deflate":
		out, err := inflateZlib(body)
		if err == nil || errors.Is(err, ErrBodyTooLarge) {
			return out, err
		}
		r := flate.NewReader(bytes.NewReader(body))
		defer r.Close()
		return readAll(r)
	case "br":
		return readAll(brotli.NewReader(bytes.NewReader(body)))
	}
	return body, nil
}

func inflateZlib(body []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readAll(r)
}

func readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxBodySize {
		return nil, ErrBodyTooLarge
	}
	return b, nil
}
