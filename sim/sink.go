package sim

import (
	"fmt"
	"io"
)

// Sink receives the simulator's output one line at a time.
// Lines carry no trailing newline.
type Sink interface {
	EmitLine(line string) error
}

// WriterSink writes each line followed by a newline to an io.Writer.
// No buffering is done beyond the single line being written.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a WriterSink on w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// EmitLine writes line to the underlying writer.
func (s *WriterSink) EmitLine(line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// LineRecorder keeps every emitted line in memory.
type LineRecorder struct {
	Lines []string
}

// EmitLine appends line to Lines.
func (r *LineRecorder) EmitLine(line string) error {
	r.Lines = append(r.Lines, line)
	return nil
}

// Count returns how many recorded lines equal line.
func (r *LineRecorder) Count(line string) int {
	n := 0
	for _, l := range r.Lines {
		if l == line {
			n++
		}
	}
	return n
}
