package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLines(&buf, []string{"safe, fast, productive.", "", "  spaced  "})
	require.NoError(t, err)
	assert.Equal(t, "safe, fast, productive.\n\n  spaced  \n", buf.String())
}

func TestWriteLines_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, nil))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteLines_WriterError(t *testing.T) {
	err := WriteLines(failingWriter{}, []string{"a"})
	assert.EqualError(t, err, "disk full")
}
