package store

import (
	"log/slog"
	"time"
)

// LogActivity records a best-effort activity log entry. Failures are
// logged and swallowed: the log never blocks an operation.
func (s *Store) LogActivity(action, entityType, entityID, details string) {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.conn.Exec(
		`INSERT INTO activity_log (action, entity_type, entity_id, details, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		action, entityType, entityID, details, now,
	)
	if err != nil {
		slog.Warn("log activity", "error", err, "action", action)
	}
}
