package movelog

import "sort"

// Session is the set of records sharing one timestamp, i.e. one organize run.
// Sessions are derived by grouping the log; they are never stored separately.
type Session struct {
	Timestamp string
	Records   []Record
}

// TotalBytes sums the logged sizes of the session's records.
func (s Session) TotalBytes() int64 {
	var total int64
	for _, rec := range s.Records {
		total += rec.FileSize
	}
	return total
}

// GroupSessions buckets records by timestamp and returns the sessions ordered
// oldest to newest. RFC 3339 timestamps sort correctly as strings. Records
// within a session keep their log order.
func GroupSessions(records []Record) []Session {
	grouped := make(map[string][]Record)
	for _, rec := range records {
		grouped[rec.Timestamp] = append(grouped[rec.Timestamp], rec)
	}

	stamps := make([]string, 0, len(grouped))
	for stamp := range grouped {
		stamps = append(stamps, stamp)
	}
	sort.Strings(stamps)

	sessions := make([]Session, 0, len(stamps))
	for _, stamp := range stamps {
		sessions = append(sessions, Session{Timestamp: stamp, Records: grouped[stamp]})
	}
	return sessions
}

// Latest returns the most recent session by timestamp, defined purely by log
// contents. ok is false when records is empty.
func Latest(records []Record) (session Session, ok bool) {
	sessions := GroupSessions(records)
	if len(sessions) == 0 {
		return Session{}, false
	}
	return sessions[len(sessions)-1], true
}
