package history

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression wraps an exported document for download
type Compression string

const (
	CompressNone Compression = ""
	CompressGzip Compression = "gzip"
	CompressZstd Compression = "zstd"
)

// ParseCompression accepts "", "none", "gzip"/"gz" and "zstd"/"zst"
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressNone, nil
	case "gzip", "gz":
		return CompressGzip, nil
	case "zstd", "zst":
		return CompressZstd, nil
	default:
		return "", fmt.Errorf("unsupported compression: %s", s)
	}
}

// Extension is the file suffix added after the format's, empty for none
func (c Compression) Extension() string {
	switch c {
	case CompressGzip:
		return ".gz"
	case CompressZstd:
		return ".zst"
	default:
		return ""
	}
}

// ContentType returns the MIME type of compressed output, or the format's
// own type when uncompressed.
func (c Compression) ContentType(f Format) string {
	switch c {
	case CompressGzip:
		return "application/gzip"
	case CompressZstd:
		return "application/zstd"
	default:
		return f.ContentType()
	}
}

// Compress encodes data with c; CompressNone returns data unchanged
func Compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressNone:
		return data, nil
	case CompressGzip:
		var buf bytes.Buffer
		gzWriter := gzip.NewWriter(&buf)
		if _, err := gzWriter.Write(data); err != nil {
			return nil, fmt.Errorf("gzip failed: %w", err)
		}
		if err := gzWriter.Close(); err != nil {
			return nil, fmt.Errorf("gzip failed: %w", err)
		}
		return buf.Bytes(), nil
	case CompressZstd:
		zstdWriter, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd failed: %w", err)
		}
		defer zstdWriter.Close()
		return zstdWriter.EncodeAll(data, nil), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}
