package supervisor

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"ufc/pkg/highlight"
	"ufc/pkg/logging"
)

const (
	readBufferSize  = 64 * 1024
	boostBufferSize = 64 * 1024
)

// pump copies one child stream to w line by line, highlighting each line.
// It returns when r reaches EOF or fails. Undecodable lines are dropped.
func (s *Supervisor) pump(r io.Reader, w io.Writer, log *logging.Logger) {
	out := w
	var bw *bufio.Writer
	if s.settings.Boost {
		bw = bufio.NewWriterSize(w, boostBufferSize)
		out = bw
	}

	br := bufio.NewReaderSize(r, readBufferSize)
	var buf []byte
	writable := true
	for {
		raw, err := br.ReadString('\n')
		if raw != "" && writable {
			line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			if utf8.ValidString(line) {
				buf = s.renderer.AppendLine(buf[:0], s.highlight(line))
				if _, werr := out.Write(buf); werr != nil {
					// Keep draining so the child never blocks on a full pipe.
					log.Warn("output write failed", "error", werr)
					writable = false
				}
			} else {
				log.Warn("dropped undecodable line", "bytes", len(line))
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug("stream read ended", "error", err)
			}
			break
		}
	}

	if bw != nil && writable {
		if err := bw.Flush(); err != nil {
			log.Warn("output flush failed", "error", err)
		}
	}
}

func (s *Supervisor) highlight(line string) highlight.Line {
	if !s.renderer.ColorEnabled() {
		return highlight.Line{{Text: line}}
	}
	return highlight.Highlight(line, s.registry)
}
