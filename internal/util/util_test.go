package util

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "zero", bytes: 0, want: "0 B"},
		{name: "below one KiB", bytes: 1023, want: "1023 B"},
		{name: "exactly one KiB", bytes: 1024, want: "1.0 KB"},
		{name: "fractional KiB", bytes: 1536, want: "1.5 KB"},
		{name: "megabytes", bytes: 5 * 1024 * 1024, want: "5.0 MB"},
		{name: "gigabytes", bytes: 3 * 1024 * 1024 * 1024, want: "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestChecksumReader(t *testing.T) {
	// Known SHA256 of "hello world".
	const want = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"

	r := NewChecksumReader(strings.NewReader("hello world"))
	data, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t, "hello world", string(data))
	assert.Equal(t, want, r.Sum())
}

func TestChecksumReader_PartialReads(t *testing.T) {
	const want = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"

	r := NewChecksumReader(strings.NewReader("hello world"))
	buf := make([]byte, 3)
	for {
		if _, err := r.Read(buf); err == io.EOF {
			break
		} else {
			require.NoError(t, err)
		}
	}

	assert.Equal(t, want, r.Sum())
}
