package client

import (
	"bytes"
	"encoding/json"
	"io"
)

// StreamMode selects what a StreamDecoder yields per frame.
type StreamMode int

const (
	// StreamText yields the choices[0].delta.content text fragment of each
	// frame; frames without content yield nothing.
	StreamText StreamMode = iota

	// StreamRaw yields each frame's full JSON payload regardless of content.
	StreamRaw
)

const (
	ssePrefix   = "data: "
	sseDone     = "[DONE]"
	readBufSize = 4096
)

// StreamDecoder incrementally decodes a server-sent event stream of chat
// completion deltas into text fragments (StreamText) or raw JSON chunks
// (StreamRaw).
//
// The underlying byte stream arrives in chunks whose boundaries need not
// align with logical lines, so undecoded bytes are buffered across reads and
// lines are split only on complete "\n" boundaries. Splitting on the single
// byte '\n' also keeps multi-byte UTF-8 sequences intact when a read ends
// mid-character.
//
// Usage follows the pull-iterator shape:
//
//	stream, err := c.ChatCompletionStream(ctx, req, client.StreamText)
//	if err != nil { ... }
//	defer stream.Close()
//	for stream.Next() {
//		fmt.Print(stream.Text())
//	}
//	if err := stream.Err(); err != nil { ... }
//
// A decoder is single-use and not safe for concurrent use; each streaming
// call owns its own decoder.
type StreamDecoder struct {
	r    io.Reader
	mode StreamMode

	buf     []byte // undecoded bytes carried across reads
	readBuf []byte

	text string
	raw  json.RawMessage
	err  error
	done bool // sentinel seen or stream exhausted; no further reads
	eof  bool // transport reported completion
}

// NewStreamDecoder decodes the event stream read from r in the given mode.
// If r is an io.Closer, Close closes it.
func NewStreamDecoder(r io.Reader, mode StreamMode) *StreamDecoder {
	return &StreamDecoder{
		r:       r,
		mode:    mode,
		readBuf: make([]byte, readBufSize),
	}
}

// Next advances to the next decoded unit. It returns false at end of stream
// (the "[DONE]" sentinel or transport completion) and on transport error;
// check Err afterwards to tell the two apart.
func (d *StreamDecoder) Next() bool {
	for !d.done {
		// Drain complete lines already buffered.
		for {
			i := bytes.IndexByte(d.buf, '\n')
			if i < 0 {
				break
			}
			line := d.buf[:i]
			d.buf = d.buf[i+1:]
			if d.handleLine(line) {
				return true
			}
			if d.done {
				return false
			}
		}

		if d.eof {
			// A final line the server never terminated still counts.
			if len(d.buf) > 0 {
				line := d.buf
				d.buf = nil
				if d.handleLine(line) {
					d.done = true
					return true
				}
			}
			d.done = true
			return false
		}

		// Await the next chunk from the transport.
		n, err := d.r.Read(d.readBuf)
		if n > 0 {
			d.buf = append(d.buf, d.readBuf[:n]...)
		}
		if err == io.EOF {
			d.eof = true
		} else if err != nil {
			d.err = err
			d.done = true
			return false
		}
	}
	return false
}

// handleLine processes one logical line and reports whether it produced a
// decoded unit. Lines without the data prefix, malformed JSON payloads, and
// content-less frames in text mode all yield nothing.
func (d *StreamDecoder) handleLine(line []byte) bool {
	if !bytes.HasPrefix(line, []byte(ssePrefix)) {
		return false
	}
	payload := bytes.TrimSpace(line[len(ssePrefix):])

	if string(payload) == sseDone {
		d.done = true
		return false
	}

	switch d.mode {
	case StreamRaw:
		if !json.Valid(payload) {
			return false
		}
		// Copy: the payload aliases d.buf, which the next read reuses.
		d.raw = append(json.RawMessage(nil), payload...)
		return true
	default:
		var frame streamFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			return false
		}
		if len(frame.Choices) == 0 || frame.Choices[0].Delta.Content == "" {
			return false
		}
		d.text = frame.Choices[0].Delta.Content
		return true
	}
}

// Text returns the current text fragment. Valid after Next returns true in
// StreamText mode.
func (d *StreamDecoder) Text() string {
	return d.text
}

// Raw returns the current frame payload. Valid after Next returns true in
// StreamRaw mode, and only until the following Next call.
func (d *StreamDecoder) Raw() json.RawMessage {
	return d.raw
}

// Err returns the transport error that ended the stream, if any. The "[DONE]"
// sentinel and normal transport completion leave Err nil.
func (d *StreamDecoder) Err() error {
	return d.err
}

// Close releases the underlying transport, if it is closable.
func (d *StreamDecoder) Close() error {
	d.done = true
	if closer, ok := d.r.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// streamFrame is the subset of a chat completion delta frame the text mode
// cares about.
type streamFrame struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}
