package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
)

// FilterOptions specifies filtering criteria given on the command line.
// Empty fields match everything.
type FilterOptions struct {
	SessionID  string
	DeviceName string
	Name       string
	TimeStart  string
	TimeEnd    string
	Layer      string
	Direction  string
	Category   string
	FailedOnly bool
}

// Build converts the options into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		SessionID:  o.SessionID,
		DeviceName: o.DeviceName,
		Name:       o.Name,
		FailedOnly: o.FailedOnly,
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if o.Layer != "" {
		l, err := ParseLayerFlag(o.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Layer = &l
	}
	if o.Direction != "" {
		d, err := ParseDirectionFlag(o.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}

	return filter, nil
}

// RunFilter copies the events of path matching opts into a new log file
// and reports the count on w.
func RunFilter(path, output string, opts FilterOptions, w io.Writer) error {
	filter, err := opts.Build()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}

	count := 0
	readErr := readAll(reader, func(event log.Event) error {
		logger.Log(event)
		count++
		return nil
	})
	if err := logger.Close(); err != nil && readErr == nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if readErr != nil {
		return readErr
	}
	if dropped := logger.Dropped(); dropped > 0 {
		return fmt.Errorf("%d events could not be written to %s", dropped, output)
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, output)
	return nil
}
