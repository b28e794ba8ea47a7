package transport

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
)

func TestFrameRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"single byte":  {0x42},
		"cbor request": {0xa3, 0x01, 0x01, 0x02, 0x01, 0x03, 0x6b},
		"max size":     bytes.Repeat([]byte("y"), DefaultMaxMessageSize),
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := NewFrameWriter(buf).WriteFrame(payload); err != nil {
				t.Fatalf("WriteFrame failed: %v", err)
			}
			if buf.Len() != FrameSize(len(payload)) {
				t.Errorf("frame size = %d, want %d", buf.Len(), FrameSize(len(payload)))
			}
			if got := binary.BigEndian.Uint32(buf.Bytes()[:LengthPrefixSize]); got != uint32(len(payload)) {
				t.Errorf("length prefix = %d, want %d", got, len(payload))
			}

			got, err := NewFrameReader(buf).ReadFrame()
			if err != nil {
				t.Fatalf("ReadFrame failed: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Error("payload mismatch")
			}
		})
	}
}

func TestFrameWriterRejects(t *testing.T) {
	w := NewFrameWriterWithMaxSize(io.Discard, 16)

	if err := w.WriteFrame(nil); !errors.Is(err, ErrMessageEmpty) {
		t.Errorf("empty: expected ErrMessageEmpty, got %v", err)
	}
	if err := w.WriteFrame(make([]byte, 17)); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("oversize: expected ErrMessageTooLarge, got %v", err)
	}
}

func TestFrameReaderErrors(t *testing.T) {
	prefix := func(n uint32) []byte {
		b := make([]byte, LengthPrefixSize)
		binary.BigEndian.PutUint32(b, n)
		return b
	}

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{"eof", nil, io.EOF},
		{"zero length", prefix(0), ErrMessageEmpty},
		{"too large", prefix(DefaultMaxMessageSize + 1), ErrMessageTooLarge},
		{"truncated prefix", []byte{0x00, 0x00}, ErrFrameTruncated},
		{"truncated payload", append(prefix(10), 1, 2, 3), ErrFrameTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrameReader(bytes.NewReader(tt.input)).ReadFrame()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFrameReaderSetMaxMessageSize(t *testing.T) {
	buf := new(bytes.Buffer)
	_ = NewFrameWriter(buf).WriteFrame(make([]byte, 100))

	r := NewFrameReader(buf)
	r.SetMaxMessageSize(50)
	if _, err := r.ReadFrame(); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("expected ErrMessageTooLarge, got %v", err)
	}
}

func TestMultipleFramesInOneStream(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewFrameWriter(buf)
	msgs := [][]byte{[]byte("read"), []byte("write"), []byte("invoke")}
	for _, m := range msgs {
		if err := w.WriteFrame(m); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}

	r := NewFrameReader(buf)
	for i, want := range msgs {
		got, err := r.ReadFrame()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("frame %d = %q, want %q", i, got, want)
		}
	}
	if _, err := r.ReadFrame(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

// capturingLogger captures log events for testing.
type capturingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *capturingLogger) Log(event log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *capturingLogger) Events() []log.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]log.Event(nil), l.events...)
}

func TestFramerLogsFrames(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := &capturingLogger{}

	f := NewFramer(buf)
	f.SetLogger(logger, "session-1")

	large := bytes.Repeat([]byte("x"), log.MaxFrameDataSize+10)
	if err := f.WriteFrame(large); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if _, err := f.ReadFrame(); err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}

	events := logger.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Direction != log.DirectionOut || events[1].Direction != log.DirectionIn {
		t.Errorf("directions = %s, %s", events[0].Direction, events[1].Direction)
	}
	for _, e := range events {
		if e.SessionID != "session-1" {
			t.Errorf("SessionID = %q", e.SessionID)
		}
		if e.Layer != log.LayerTransport || e.Frame == nil {
			t.Fatalf("unexpected event %+v", e)
		}
		if e.Frame.Size != FrameSize(len(large)) {
			t.Errorf("Frame.Size = %d, want %d", e.Frame.Size, FrameSize(len(large)))
		}
		if !e.Frame.Truncated || len(e.Frame.Data) != log.MaxFrameDataSize {
			t.Errorf("expected truncated frame data, got %d bytes", len(e.Frame.Data))
		}
	}
}

func TestFramerWithoutLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	f := NewFramer(buf)
	f.SetLogger(nil, "ignored")
	if err := f.WriteFrame([]byte("hello")); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if _, err := f.ReadFrame(); err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
}
