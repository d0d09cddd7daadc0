package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and inserts a prefix at the start of
// every line. hclog emits one complete line per log call, so writes pass
// straight through; a line split across writes is only prefixed once.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	midLine bool
	scratch bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer. The returned count covers p, not the larger
// prefixed output handed to the underlying writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.scratch.Reset()

	rest := p
	for len(rest) > 0 {
		if !pw.midLine {
			pw.scratch.Write(pw.prefix)
			pw.midLine = true
		}
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			pw.scratch.Write(rest)
			break
		}
		pw.scratch.Write(rest[:nl+1])
		pw.midLine = false
		rest = rest[nl+1:]
	}

	if _, err := pw.writer.Write(pw.scratch.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
