package client

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// chunkReader delivers its payload in fixed-size chunks so tests can force
// frame boundaries that do not align with network reads.
type chunkReader struct {
	data      []byte
	chunkSize int
	pos       int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	end := r.pos + r.chunkSize
	if end > len(r.data) {
		end = len(r.data)
	}
	n := copy(p, r.data[r.pos:end])
	r.pos += n
	return n, nil
}

func frame(content string) string {
	return `data: {"choices":[{"delta":{"content":"` + content + `"}}]}` + "\n"
}

func collectText(t *testing.T, d *StreamDecoder) []string {
	t.Helper()
	var got []string
	for d.Next() {
		got = append(got, d.Text())
	}
	return got
}

func TestStreamDecoder_Text(t *testing.T) {
	t.Run("single frame then done", func(t *testing.T) {
		input := frame("A") + "data: [DONE]\n"
		d := NewStreamDecoder(strings.NewReader(input), StreamText)

		got := collectText(t, d)
		if len(got) != 1 || got[0] != "A" {
			t.Errorf("decoded %q, want [A]", got)
		}
		if d.Err() != nil {
			t.Errorf("Err() = %v, want nil", d.Err())
		}
	})

	t.Run("multiple fragments in order", func(t *testing.T) {
		input := frame("Hello") + frame(", ") + frame("world") + "data: [DONE]\n"
		d := NewStreamDecoder(strings.NewReader(input), StreamText)

		got := collectText(t, d)
		if strings.Join(got, "") != "Hello, world" {
			t.Errorf("decoded %q", got)
		}
	})

	t.Run("malformed frame is skipped", func(t *testing.T) {
		input := "data: not-json\n" + frame("ok") + "data: [DONE]\n"
		d := NewStreamDecoder(strings.NewReader(input), StreamText)

		got := collectText(t, d)
		if len(got) != 1 || got[0] != "ok" {
			t.Errorf("decoded %q, want [ok]", got)
		}
		if d.Err() != nil {
			t.Errorf("Err() = %v, want nil", d.Err())
		}
	})

	t.Run("non-data and keep-alive lines are ignored", func(t *testing.T) {
		input := ": keep-alive\n\nevent: ping\n" + frame("x") + "data: [DONE]\n"
		d := NewStreamDecoder(strings.NewReader(input), StreamText)

		got := collectText(t, d)
		if len(got) != 1 || got[0] != "x" {
			t.Errorf("decoded %q, want [x]", got)
		}
	})

	t.Run("content-less frames yield nothing", func(t *testing.T) {
		input := `data: {"choices":[{"delta":{}}]}` + "\n" +
			`data: {"choices":[]}` + "\n" +
			`data: {}` + "\n" +
			"data: [DONE]\n"
		d := NewStreamDecoder(strings.NewReader(input), StreamText)

		if got := collectText(t, d); len(got) != 0 {
			t.Errorf("decoded %q, want nothing", got)
		}
		if d.Err() != nil {
			t.Errorf("Err() = %v", d.Err())
		}
	})

	t.Run("frames split across reads", func(t *testing.T) {
		input := frame("alpha") + frame("beta") + "data: [DONE]\n"
		// Chunk sizes chosen to split mid-prefix and mid-payload.
		for _, size := range []int{1, 2, 3, 7, 16} {
			d := NewStreamDecoder(&chunkReader{data: []byte(input), chunkSize: size}, StreamText)
			got := collectText(t, d)
			if strings.Join(got, "") != "alphabeta" {
				t.Errorf("chunk size %d: decoded %q", size, got)
			}
		}
	})

	t.Run("multi-byte characters split across reads", func(t *testing.T) {
		input := frame("héllo wörld — ok") + "data: [DONE]\n"
		for _, size := range []int{1, 2, 5} {
			d := NewStreamDecoder(&chunkReader{data: []byte(input), chunkSize: size}, StreamText)
			got := collectText(t, d)
			if strings.Join(got, "") != "héllo wörld — ok" {
				t.Errorf("chunk size %d: decoded %q", size, got)
			}
		}
	})

	t.Run("stops at done sentinel", func(t *testing.T) {
		input := frame("before") + "data: [DONE]\n" + frame("after")
		d := NewStreamDecoder(strings.NewReader(input), StreamText)

		got := collectText(t, d)
		if len(got) != 1 || got[0] != "before" {
			t.Errorf("decoded %q, want [before]", got)
		}
	})

	t.Run("eof without sentinel is normal termination", func(t *testing.T) {
		d := NewStreamDecoder(strings.NewReader(frame("tail")), StreamText)

		got := collectText(t, d)
		if len(got) != 1 || got[0] != "tail" {
			t.Errorf("decoded %q, want [tail]", got)
		}
		if d.Err() != nil {
			t.Errorf("Err() = %v, want nil", d.Err())
		}
	})

	t.Run("unterminated final line is processed", func(t *testing.T) {
		input := frame("first") + strings.TrimSuffix(frame("last"), "\n")
		d := NewStreamDecoder(strings.NewReader(input), StreamText)

		got := collectText(t, d)
		if strings.Join(got, "") != "firstlast" {
			t.Errorf("decoded %q", got)
		}
	})

	t.Run("crlf line endings", func(t *testing.T) {
		input := strings.ReplaceAll(frame("win")+"data: [DONE]\n", "\n", "\r\n")
		d := NewStreamDecoder(strings.NewReader(input), StreamText)

		got := collectText(t, d)
		if len(got) != 1 || got[0] != "win" {
			t.Errorf("decoded %q, want [win]", got)
		}
	})
}

// errReader fails after serving its prefix.
type errReader struct {
	prefix []byte
	err    error
	served bool
}

func (r *errReader) Read(p []byte) (int, error) {
	if !r.served {
		r.served = true
		return copy(p, r.prefix), nil
	}
	return 0, r.err
}

func TestStreamDecoder_TransportError(t *testing.T) {
	transportErr := errors.New("connection reset")
	d := NewStreamDecoder(&errReader{prefix: []byte(frame("partial")), err: transportErr}, StreamText)

	var got []string
	for d.Next() {
		got = append(got, d.Text())
	}

	// The fragment before the failure is still delivered.
	if len(got) != 1 || got[0] != "partial" {
		t.Errorf("decoded %q, want [partial]", got)
	}
	if !errors.Is(d.Err(), transportErr) {
		t.Errorf("Err() = %v, want %v", d.Err(), transportErr)
	}
}

func TestStreamDecoder_Raw(t *testing.T) {
	t.Run("yields full frames regardless of content", func(t *testing.T) {
		input := `data: {"choices":[{"delta":{}}],"model":"pt-1"}` + "\n" +
			frame("x") +
			"data: [DONE]\n"
		d := NewStreamDecoder(strings.NewReader(input), StreamRaw)

		var got []string
		for d.Next() {
			got = append(got, string(d.Raw()))
		}
		if len(got) != 2 {
			t.Fatalf("decoded %d frames, want 2", len(got))
		}
		if !strings.Contains(got[0], `"model":"pt-1"`) {
			t.Errorf("first frame = %s", got[0])
		}
	})

	t.Run("raw frames survive subsequent reads", func(t *testing.T) {
		input := frame("one") + frame("two") + "data: [DONE]\n"
		d := NewStreamDecoder(&chunkReader{data: []byte(input), chunkSize: 8}, StreamRaw)

		if !d.Next() {
			t.Fatal("expected first frame")
		}
		first := d.Raw()
		firstCopy := string(first)
		if !d.Next() {
			t.Fatal("expected second frame")
		}
		if string(first) != firstCopy {
			t.Error("first frame mutated by advancing the decoder")
		}
	})

	t.Run("invalid json skipped in raw mode", func(t *testing.T) {
		input := "data: {broken\n" + frame("x") + "data: [DONE]\n"
		d := NewStreamDecoder(strings.NewReader(input), StreamRaw)

		var count int
		for d.Next() {
			count++
		}
		if count != 1 {
			t.Errorf("decoded %d frames, want 1", count)
		}
	})
}
