// Package output writes search results.
package output

import (
	"bufio"
	"io"
)

// WriteLines writes each line followed by a newline, unchanged and in order.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
