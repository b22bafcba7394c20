package movelog_test

import (
	"testing"

	"sortd/internal/movelog"
)

func rec(ts, original string, size int64) movelog.Record {
	return movelog.Record{
		Timestamp:    ts,
		OriginalPath: original,
		Destination:  original + ".moved",
		FileHash:     "hash",
		FileSize:     size,
	}
}

func TestGroupSessionsOrdersByTimestamp(t *testing.T) {
	records := []movelog.Record{
		rec("2026-08-30T12:00:00.5Z", "/b", 2),
		rec("2026-08-29T08:00:00Z", "/a", 1),
		rec("2026-08-30T12:00:00.5Z", "/c", 3),
	}

	sessions := movelog.GroupSessions(records)
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].Timestamp != "2026-08-29T08:00:00Z" {
		t.Errorf("oldest session = %s", sessions[0].Timestamp)
	}
	if sessions[1].Timestamp != "2026-08-30T12:00:00.5Z" {
		t.Errorf("newest session = %s", sessions[1].Timestamp)
	}
	if got := len(sessions[1].Records); got != 2 {
		t.Fatalf("newest session has %d records, want 2", got)
	}
	// Encounter order within a session is preserved.
	if sessions[1].Records[0].OriginalPath != "/b" || sessions[1].Records[1].OriginalPath != "/c" {
		t.Errorf("session record order changed: %+v", sessions[1].Records)
	}
}

func TestLatestPicksNewestSession(t *testing.T) {
	records := []movelog.Record{
		rec("2026-08-29T08:00:00Z", "/old", 1),
		rec("2026-08-30T09:00:00Z", "/new", 2),
	}
	latest, ok := movelog.Latest(records)
	if !ok {
		t.Fatal("Latest returned ok=false")
	}
	if latest.Timestamp != "2026-08-30T09:00:00Z" {
		t.Fatalf("latest = %s", latest.Timestamp)
	}
}

func TestLatestEmpty(t *testing.T) {
	if _, ok := movelog.Latest(nil); ok {
		t.Fatal("Latest on empty input should report ok=false")
	}
}

func TestSessionTotalBytes(t *testing.T) {
	s := movelog.Session{Records: []movelog.Record{rec("t", "/a", 10), rec("t", "/b", 32)}}
	if got := s.TotalBytes(); got != 42 {
		t.Fatalf("TotalBytes = %d, want 42", got)
	}
}
