package ansi

import (
	"errors"
	"io"
	"syscall"
	"time"
)

// Retry defaults for NewRetryWriter.
const (
	retryBackoff = 100 * time.Microsecond
	retryLimit   = 1000
)

// RetryWriter repeats writes that fail with EAGAIN until the whole buffer
// is out. A terminal's stdin and stdout usually share one open file
// description, so switching input to non-blocking does the same to output.
type RetryWriter struct {
	w       io.Writer
	backoff time.Duration
	limit   int
}

// NewRetryWriter wraps w.
func NewRetryWriter(w io.Writer) *RetryWriter {
	return &RetryWriter{w: w, backoff: retryBackoff, limit: retryLimit}
}

// Write implements io.Writer. Errors other than EAGAIN, and EAGAIN after
// the retry limit, are returned with the count written so far.
func (r *RetryWriter) Write(p []byte) (int, error) {
	written := 0
	for attempt := 0; written < len(p); attempt++ {
		n, err := r.w.Write(p[written:])
		written += n
		if err == nil {
			continue
		}
		if !errors.Is(err, syscall.EAGAIN) || attempt >= r.limit {
			return written, err
		}
		time.Sleep(r.backoff)
	}
	return written, nil
}
