package pkg

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/multierr"
)

// LogSinks copies every log line to all of its sinks, e.g. stdout and a rotated file.
// A failing sink does not stop the others; its error is reported with the sink index.
type LogSinks struct {
	mu    sync.Mutex
	sinks []io.Writer
}

func NewLogSinks(sinks ...io.Writer) *LogSinks {
	return &LogSinks{sinks: sinks}
}

func (s *LogSinks) Len() int {
	return len(s.sinks)
}

// Write reports len(p) when at least one sink took the whole line.
func (s *LogSinks) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		errs      error
		delivered bool
	)
	for i, sink := range s.sinks {
		n, err := sink.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("log sink %d: %w", i, err))
			continue
		}
		delivered = true
	}
	if !delivered && len(s.sinks) > 0 {
		return 0, errs
	}
	return len(p), errs
}
