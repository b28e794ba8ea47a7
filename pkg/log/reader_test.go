package log

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

func writeTestLog(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func testEvents(base time.Time) []Event {
	op := wire.OpRead
	bad := wire.StatusAttributeNotFound
	return []Event{
		{
			Timestamp: base, SessionID: "s1", Direction: DirectionIn, Layer: LayerWire,
			Category: CategoryMessage, DeviceName: "cam1",
			Message: &MessageEvent{Type: MessageTypeRequest, MessageID: 1, Operation: &op, Name: "Temperature"},
		},
		{
			Timestamp: base.Add(time.Second), SessionID: "s1", Direction: DirectionOut, Layer: LayerWire,
			Category: CategoryMessage, DeviceName: "cam1",
			Message: &MessageEvent{Type: MessageTypeResponse, MessageID: 1, Status: &bad},
		},
		{
			Timestamp: base.Add(2 * time.Second), Layer: LayerDevice, Category: CategoryAccess, DeviceName: "cam1",
			Access: &AccessEvent{Kind: AccessRead, Name: "temperature", Value: 20.0},
		},
		{
			Timestamp: base.Add(3 * time.Second), SessionID: "s2", Layer: LayerDevice, Category: CategoryAccess, DeviceName: "cam2",
			Access: &AccessEvent{Kind: AccessWrite, Name: "fan_speed", Value: uint64(9), Error: "value out of range"},
		},
		{
			Timestamp: base.Add(4 * time.Second), SessionID: "s2", Layer: LayerTransport, Category: CategoryError,
			Error: &ErrorEventData{Layer: LayerTransport, Message: "frame too large"},
		},
	}
}

func readAll(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var events []Event
	for {
		e, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return events
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		events = append(events, e)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path := writeTestLog(t, testEvents(base))

	layerDevice := LayerDevice
	catAccess := CategoryAccess
	dirOut := DirectionOut
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 5},
		{"session", Filter{SessionID: "s2"}, 2},
		{"direction", Filter{Direction: &dirOut}, 1},
		{"layer", Filter{Layer: &layerDevice}, 2},
		{"category", Filter{Category: &catAccess}, 2},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"device", Filter{DeviceName: "cam1"}, 3},
		{"name is case-insensitive", Filter{Name: "temperature"}, 2},
		{"failed only", Filter{FailedOnly: true}, 3},
		{"combined", Filter{DeviceName: "cam1", FailedOnly: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readAll(t, path, tt.filter)
			if len(got) != tt.want {
				t.Errorf("got %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestReaderForEachStopsOnError(t *testing.T) {
	path := writeTestLog(t, testEvents(time.Now()))
	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	stop := errors.New("stop")
	seen := 0
	err = reader.ForEach(func(Event) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected stop error, got %v", err)
	}
	if seen != 2 {
		t.Errorf("expected 2 calls, got %d", seen)
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.dlog")); err == nil {
		t.Error("expected error for missing file")
	}
}
