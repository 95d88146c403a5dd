package models

import "time"

// ConnectionEvent is one row of the connection audit log
type ConnectionEvent struct {
	ID           int       `db:"id" json:"id"`
	ConnectionID string    `db:"connection_id" json:"connection_id"`
	Action       string    `db:"action" json:"action"`
	Slot         *string   `db:"slot" json:"slot,omitempty"`
	RemoteAddr   string    `db:"remote_addr" json:"remote_addr,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Connection audit actions
const (
	ActionJoined   = "joined"
	ActionRejected = "rejected"
	ActionLeft     = "left"
)
