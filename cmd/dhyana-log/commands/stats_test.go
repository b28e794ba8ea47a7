package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

func TestStatsSummary(t *testing.T) {
	path := createTestLogFile(t, sampleSession())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 3",
		"WIRE:        2",
		"DEVICE:      1",
		"ACCESS:      1",
		"SUCCESS:",
		"Sessions: 1",
		"[3f2a9c1e] 2 events, 1 requests",
		"Remote: 10.0.0.7:51234",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Errors:") {
		t.Errorf("no errors expected:\n%s", output)
	}
}

func TestStatsDeviceAccess(t *testing.T) {
	ts := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	access := func(kind log.AccessKind, name, errText string) log.Event {
		return log.Event{
			Timestamp: ts,
			Layer:     log.LayerDevice,
			Category:  log.CategoryAccess,
			Access:    &log.AccessEvent{Kind: kind, Name: name, Error: errText},
		}
	}

	stats := newStats()
	for _, e := range []log.Event{
		access(log.AccessPush, "temperature_target", ""),
		access(log.AccessRead, "temperature", ""),
		access(log.AccessRead, "temperature", ""),
		access(log.AccessWrite, "fan_speed", "out of range"),
		access(log.AccessInvoke, "State", ""),
	} {
		stats.add(e)
	}

	if got := stats.Attributes["temperature"].Reads; got != 2 {
		t.Errorf("temperature reads = %d, want 2", got)
	}
	if got := stats.Attributes["fan_speed"].Failed; got != 1 {
		t.Errorf("fan_speed failures = %d, want 1", got)
	}
	if got := stats.Attributes["temperature_target"].Pushes; got != 1 {
		t.Errorf("temperature_target pushes = %d, want 1", got)
	}

	var buf bytes.Buffer
	printStats(&buf, stats)
	if !strings.Contains(buf.String(), "fan_speed") || !strings.Contains(buf.String(), "failed=1") {
		t.Errorf("expected fan_speed failure in output:\n%s", buf.String())
	}
}

func TestStatsCountsStatusesAndErrors(t *testing.T) {
	ts := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	notFound := wire.StatusAttributeNotFound
	ok := wire.StatusSuccess

	stats := newStats()
	stats.add(log.Event{Timestamp: ts, Category: log.CategoryMessage, Message: &log.MessageEvent{Type: log.MessageTypeResponse, Status: &notFound}})
	stats.add(log.Event{Timestamp: ts, Category: log.CategoryMessage, Message: &log.MessageEvent{Type: log.MessageTypeResponse, Status: &notFound}})
	stats.add(log.Event{Timestamp: ts, Category: log.CategoryMessage, Message: &log.MessageEvent{Type: log.MessageTypeResponse, Status: &ok}})
	stats.add(log.Event{Timestamp: ts.Add(time.Minute), Category: log.CategoryError, Error: &log.ErrorEventData{Message: "decode failed"}})

	if stats.Statuses[wire.StatusAttributeNotFound] != 2 {
		t.Errorf("expected 2 ATTRIBUTE_NOT_FOUND, got %d", stats.Statuses[wire.StatusAttributeNotFound])
	}
	if stats.Errors != 1 {
		t.Errorf("expected 1 error, got %d", stats.Errors)
	}
	if len(stats.Sessions) != 0 {
		t.Errorf("events without session must not create sessions, got %d", len(stats.Sessions))
	}

	var buf bytes.Buffer
	printStats(&buf, stats)
	output := buf.String()
	if !strings.Contains(output, "Duration:   1m0s") {
		t.Errorf("expected one minute duration:\n%s", output)
	}
	if !strings.Contains(output, "Errors: 1") {
		t.Errorf("expected error count:\n%s", output)
	}
}

func TestStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
