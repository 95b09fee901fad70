package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// TeeWriter writes every log line to all of its outputs. A failing output does
// not stop the others; the write counts as done when at least one output took it.
type TeeWriter struct {
	outputs []io.Writer
}

func NewTeeWriter(outputs ...io.Writer) *TeeWriter {
	tw := &TeeWriter{}
	for _, o := range outputs {
		if o != nil {
			tw.outputs = append(tw.outputs, o)
		}
	}
	return tw
}

func (tw *TeeWriter) Outputs() int {
	return len(tw.outputs)
}

func (tw *TeeWriter) Write(p []byte) (int, error) {
	var (
		err     error
		written bool
	)
	for i, o := range tw.outputs {
		if _, werr := o.Write(p); werr != nil {
			err = multierr.Append(err, fmt.Errorf("output %d: %w", i, werr))
			continue
		}
		written = true
	}
	if !written && len(tw.outputs) > 0 {
		return 0, err
	}
	return len(p), err
}
