package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter duplicates every write to all of its writers, e.g. logs to
// both stdout and a rotated log file. A failing writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: writers,
	}
}

// Write returns the number of bytes written by the first successful writer,
// and all the writer errors combined.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		n       int
		written bool
		err     error
	)
	for _, w := range cw.Writers {
		wn, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if !written {
			n, written = wn, true
		}
	}
	return n, err
}
