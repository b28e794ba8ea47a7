package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
)

func readEvents(t *testing.T, path string) []log.Event {
	t.Helper()
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer reader.Close()

	var events []log.Event
	if err := reader.ForEach(func(e log.Event) error {
		events = append(events, e)
		return nil
	}); err != nil {
		t.Fatalf("failed to read events: %v", err)
	}
	return events
}

func TestFilterBySession(t *testing.T) {
	path := createTestLogFile(t, sampleSession())
	out := filepath.Join(t.TempDir(), "filtered.dlog")

	var buf bytes.Buffer
	err := RunFilter(path, out, FilterOptions{SessionID: "3f2a9c1e-1111-2222-3333-444455556666"}, &buf)
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	events := readEvents(t, out)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, e := range events {
		if e.Message == nil {
			t.Errorf("expected only message events, got %+v", e)
		}
	}
	if !strings.Contains(buf.String(), "Filtered 2 events") {
		t.Errorf("unexpected report %q", buf.String())
	}
}

func TestFilterByNameAndDirection(t *testing.T) {
	path := createTestLogFile(t, sampleSession())
	out := filepath.Join(t.TempDir(), "filtered.dlog")

	var buf bytes.Buffer
	err := RunFilter(path, out, FilterOptions{Name: "TEMPERATURE", Direction: "in", Layer: "wire"}, &buf)
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	events := readEvents(t, out)
	if len(events) != 1 || events[0].Message == nil || events[0].Message.Type != log.MessageTypeRequest {
		t.Errorf("expected the single request, got %+v", events)
	}
}

func TestFilterOptionsBuild(t *testing.T) {
	f, err := FilterOptions{
		TimeStart: "2026-03-04T09:00:00Z",
		TimeEnd:   "2026-03-04T10:00:00Z",
		Category:  "error",
	}.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if f.TimeStart == nil || f.TimeEnd == nil || f.Category == nil || *f.Category != log.CategoryError {
		t.Errorf("unexpected filter %+v", f)
	}

	bad := []FilterOptions{
		{TimeStart: "yesterday"},
		{TimeEnd: "2026-03-04"},
		{Layer: "service"},
		{Direction: "sideways"},
		{Category: "snapshot"},
	}
	for _, opts := range bad {
		if _, err := opts.Build(); err == nil {
			t.Errorf("expected error for %+v", opts)
		}
	}
}

func TestFilterMissingInput(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	err := RunFilter(filepath.Join(dir, "none.dlog"), filepath.Join(dir, "out.dlog"), FilterOptions{}, &buf)
	if err == nil {
		t.Error("expected error for missing input")
	}
}
