package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Sessions          map[string]*SessionStats
	Attributes        map[string]*AttributeStats
	Statuses          map[wire.Status]int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single client session.
type SessionStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	RemoteAddr string
	Requests   int
}

// AttributeStats counts device accesses to one attribute or command.
type AttributeStats struct {
	Reads   int
	Writes  int
	Invokes int
	Pushes  int
	Failed  int
}

func newStats() *Stats {
	return &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Sessions:          make(map[string]*SessionStats),
		Attributes:        make(map[string]*AttributeStats),
		Statuses:          make(map[wire.Status]int),
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.SessionID != "" {
		sess, ok := s.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			s.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if sess.RemoteAddr == "" {
			sess.RemoteAddr = event.RemoteAddr
		}
		if event.Message != nil && event.Message.Type == log.MessageTypeRequest {
			sess.Requests++
		}
	}

	if msg := event.Message; msg != nil && msg.Type == log.MessageTypeResponse && msg.Status != nil {
		s.Statuses[*msg.Status]++
	}

	if access := event.Access; access != nil {
		as, ok := s.Attributes[access.Name]
		if !ok {
			as = &AttributeStats{}
			s.Attributes[access.Name] = as
		}
		switch access.Kind {
		case log.AccessRead:
			as.Reads++
		case log.AccessWrite:
			as.Writes++
		case log.AccessInvoke:
			as.Invokes++
		case log.AccessPush:
			as.Pushes++
		}
		if access.Failed() {
			as.Failed++
		}
	}

	if event.Error != nil {
		s.Errors++
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	if err := readAll(reader, func(event log.Event) error {
		stats.add(event)
		return nil
	}); err != nil {
		return err
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Dhyana Device Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerTransport, log.LayerWire, log.LayerDevice} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryMessage, log.CategoryControl, log.CategoryState, log.CategoryError, log.CategoryAccess} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}

	if len(stats.Statuses) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Responses by Status:")
		statuses := make([]wire.Status, 0, len(stats.Statuses))
		for st := range stats.Statuses {
			statuses = append(statuses, st)
		}
		sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
		for _, st := range statuses {
			fmt.Fprintf(w, "  %-22s %d\n", st.String()+":", stats.Statuses[st])
		}
	}

	if len(stats.Attributes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Device Access:")
		names := make([]string, 0, len(stats.Attributes))
		for name := range stats.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			as := stats.Attributes[name]
			fmt.Fprintf(w, "  %-28s read=%d write=%d invoke=%d push=%d",
				name, as.Reads, as.Writes, as.Invokes, as.Pushes)
			if as.Failed > 0 {
				fmt.Fprintf(w, " failed=%d", as.Failed)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, %d requests, duration %s\n",
				shortenSessionID(s.id), s.stats.Events, s.stats.Requests, duration)
			if s.stats.RemoteAddr != "" {
				fmt.Fprintf(w, "             Remote: %s\n", s.stats.RemoteAddr)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
