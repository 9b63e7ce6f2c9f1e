package models

// SessionStatus marks a login-history entry as live or ended.
type SessionStatus string

const (
	SessionActive    SessionStatus = "Active"
	SessionLoggedOut SessionStatus = "Logged Out"
)

// HistoryEntry is one audit record of a login event. Entries are append-only
// except for the Active → Logged Out transition on logout.
type HistoryEntry struct {
	ID     string        `json:"id"`
	User   string        `json:"user"`
	Role   Role          `json:"role"`
	Date   string        `json:"date"`
	Time   string        `json:"time"`
	Status SessionStatus `json:"status"`
}
