package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans writes out to all its writers. Unlike
// io.MultiWriter it keeps writing to the remaining writers after one
// of them fails and returns the collected errors.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, writeErr := w.Write(p)
		if writeErr != nil {
			err = multierr.Append(err, writeErr)
			continue
		}
		n += written
	}
	return n, err
}
