// Package sse decodes newline-delimited server-sent-event streams as produced
// by chat-completion gateways. The decoder recognizes two independent
// termination signals: the in-band "[DONE]" sentinel and transport EOF. The
// sentinel takes precedence — once observed, remaining buffered frames are not
// surfaced.
package sse

import (
	"bytes"
	"io"
)

const doneSentinel = "[DONE]"

var dataPrefix = []byte("data:")

// Decoder reads SSE frames from an io.Reader. Frames split across network
// reads are handled by carrying the partial line over to the next read.
type Decoder struct {
	r    io.Reader
	buf  []byte
	data []byte
	err  error
	done bool
	eof  bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next advances to the next data frame. It returns false when the stream is
// exhausted, either by the [DONE] sentinel or by transport EOF. After Next
// returns false, Err reports any transport error.
func (d *Decoder) Next() bool {
	if d.done || d.err != nil {
		return false
	}

	for {
		if line, ok := d.nextLine(); ok {
			payload, isData := parseLine(line)
			if !isData {
				continue
			}
			if string(payload) == doneSentinel {
				d.done = true
				return false
			}
			d.data = payload
			return true
		}

		if d.eof {
			return false
		}
		if !d.fill() {
			return false
		}
	}
}

// Data returns the payload of the current frame, valid until the next call to
// Next.
func (d *Decoder) Data() []byte {
	return d.data
}

// Done reports whether the in-band [DONE] sentinel was observed, as opposed to
// the transport ending on its own.
func (d *Decoder) Done() bool {
	return d.done
}

func (d *Decoder) Err() error {
	return d.err
}

// nextLine returns the next complete line from the buffer. An incomplete
// trailing fragment stays buffered for the next read.
func (d *Decoder) nextLine() ([]byte, bool) {
	i := bytes.IndexByte(d.buf, '\n')
	if i < 0 {
		return nil, false
	}
	line := d.buf[:i]
	d.buf = d.buf[i+1:]
	return bytes.TrimSuffix(line, []byte("\r")), true
}

func (d *Decoder) fill() bool {
	chunk := make([]byte, 4096)
	n, err := d.r.Read(chunk)
	if n > 0 {
		d.buf = append(d.buf, chunk[:n]...)
	}
	if err == io.EOF {
		d.eof = true
		return n > 0
	}
	if err != nil {
		d.err = err
		return false
	}
	return true
}

// parseLine extracts the payload from a "data:" line. Blank lines and comment
// lines (leading colon) carry no payload.
func parseLine(line []byte) ([]byte, bool) {
	if len(line) == 0 || line[0] == ':' {
		return nil, false
	}
	if !bytes.HasPrefix(line, dataPrefix) {
		return nil, false
	}
	payload := bytes.TrimPrefix(line, dataPrefix)
	if len(payload) > 0 && payload[0] == ' ' {
		payload = payload[1:]
	}
	return payload, true
}
