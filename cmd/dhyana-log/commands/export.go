package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
)

// Export formats.
const (
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

var csvHeader = []string{
	"timestamp", "session_id", "direction", "layer", "category",
	"device", "type", "message_id", "name", "status", "error",
}

// RunExport exports the events of path matching filter. An empty output
// writes to stdout.
func RunExport(path, format, output string, filter log.Filter) error {
	var write func(*log.Reader, io.Writer) error
	switch format {
	case FormatJSONL:
		write = exportJSONL
	case FormatCSV:
		write = exportCSV
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return write(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	return readAll(reader, func(event log.Event) error {
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	})
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	err := readAll(reader, func(event log.Event) error {
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(event log.Event) []string {
	var msgID, name, status, errText string
	switch {
	case event.Message != nil:
		msgID = strconv.FormatUint(uint64(event.Message.MessageID), 10)
		name = event.Message.Name
		if event.Message.Status != nil {
			status = event.Message.Status.String()
		}
	case event.Access != nil:
		name = event.Access.Name
		errText = event.Access.Error
	case event.Error != nil:
		errText = event.Error.Message
	}

	return []string{
		event.Timestamp.UTC().Format(timestampLayout),
		event.SessionID,
		event.Direction.String(),
		event.Layer.String(),
		event.Category.String(),
		event.DeviceName,
		eventLabel(event),
		msgID,
		name,
		status,
		errText,
	}
}
