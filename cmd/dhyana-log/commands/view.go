// Package commands implements the dhyana-log CLI commands.
package commands

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
)

// timestampLayout is used for every printed or exported timestamp.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// timestamp [sess:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format(timestampLayout)

	layer := event.Layer.String()
	if event.Category == log.CategoryControl {
		layer = "CTRL"
	}

	fmt.Fprintf(w, "%s [sess:%s] %-3s %s %s", ts, shortenSessionID(event.SessionID),
		event.Direction.String(), layer, eventLabel(event))
	if event.DeviceName != "" {
		fmt.Fprintf(w, " (%s)", event.DeviceName)
	}
	fmt.Fprintln(w)

	switch {
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.Access != nil:
		formatAccessDetails(w, event.Access)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.ControlMsg != nil:
		if event.ControlMsg.Sequence != 0 {
			fmt.Fprintf(w, "  Sequence: %d\n", event.ControlMsg.Sequence)
		}
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// eventLabel names the payload carried by the event.
func eventLabel(event log.Event) string {
	switch {
	case event.Frame != nil:
		return "Frame"
	case event.Message != nil:
		return event.Message.Type.String()
	case event.Access != nil:
		return event.Access.Kind.String()
	case event.StateChange != nil:
		return "State"
	case event.ControlMsg != nil:
		return event.ControlMsg.Type.String()
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenSessionID returns the first 8 characters of the session ID, or "-"
// for events outside a session.
func shortenSessionID(id string) string {
	switch {
	case id == "":
		return "-"
	case len(id) >= 8:
		return id[:8]
	}
	return id
}

func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatMessageDetails(w io.Writer, msg *log.MessageEvent) {
	fmt.Fprintf(w, "  MessageID: %d\n", msg.MessageID)

	switch msg.Type {
	case log.MessageTypeRequest:
		if msg.Operation != nil {
			fmt.Fprintf(w, "  Operation: %s\n", msg.Operation.String())
		}
		if msg.Name != "" {
			fmt.Fprintf(w, "  Name: %s\n", msg.Name)
		}
	case log.MessageTypeResponse:
		if msg.Status != nil {
			fmt.Fprintf(w, "  Status: %s (%d)\n", msg.Status.String(), *msg.Status)
		}
		if msg.ProcessingTime != nil {
			fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*msg.ProcessingTime))
		}
	}

	if msg.Value != nil {
		fmt.Fprintf(w, "  Value: %s\n", formatValue(msg.Value))
	}
}

func formatAccessDetails(w io.Writer, access *log.AccessEvent) {
	fmt.Fprintf(w, "  Name: %s\n", access.Name)
	if access.Value != nil {
		fmt.Fprintf(w, "  Value: %s\n", formatValue(access.Value))
	}
	if access.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(access.Duration))
	}
	if access.Failed() {
		fmt.Fprintf(w, "  Error: %s\n", access.Error)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatValue renders a decoded value as JSON, falling back to %v for
// values JSON cannot represent.
func formatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseLayerFlag parses a layer name (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	if l, ok := log.ParseLayer(strings.ToUpper(s)); ok {
		return l, nil
	}
	return 0, fmt.Errorf("invalid layer: %s (must be transport, wire, or device)", s)
}

// ParseDirectionFlag parses a direction name (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	if c, ok := log.ParseCategory(strings.ToUpper(s)); ok {
		return c, nil
	}
	return 0, fmt.Errorf("invalid category: %s (must be message, control, state, error, or access)", s)
}

// RunView prints every event of the log file that matches filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	return readAll(reader, func(event log.Event) error {
		formatEvent(output, event)
		return nil
	})
}

// readAll wraps Reader.ForEach with the error message shared by all
// commands.
func readAll(reader *log.Reader, fn func(log.Event) error) error {
	var fnErr error
	err := reader.ForEach(func(event log.Event) error {
		if err := fn(event); err != nil {
			fnErr = err
			return err
		}
		return nil
	})
	if err != nil && !errors.Is(err, fnErr) {
		return fmt.Errorf("failed to read event: %w", err)
	}
	return err
}
