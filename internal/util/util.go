// Package util holds small helpers shared across layers.
package util

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// ChecksumReader wraps a reader and accumulates the SHA256 of everything
// read through it, so streamed uploads can be fingerprinted without
// buffering the payload.
type ChecksumReader struct {
	reader io.Reader
	hash   hash.Hash
}

// NewChecksumReader creates a ChecksumReader over r.
func NewChecksumReader(r io.Reader) *ChecksumReader {
	return &ChecksumReader{
		reader: r,
		hash:   sha256.New(),
	}
}

// Read implements io.Reader.
func (c *ChecksumReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	if n > 0 {
		c.hash.Write(p[:n])
	}

	return n, err
}

// Sum returns the hex SHA256 of the bytes read so far.
func (c *ChecksumReader) Sum() string {
	return fmt.Sprintf("%x", c.hash.Sum(nil))
}
