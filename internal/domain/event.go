package domain

import "time"

type EventType string

const (
	EventRecordCreated EventType = "record.created"
	EventRecordUpdated EventType = "record.updated"
	EventMediaAttached EventType = "media.attached"
)

// Event is published after a write has been committed.
type Event struct {
	Type         EventType  `json:"type"`
	RecordID     int64      `json:"record_id"`
	RecordType   RecordType `json:"record_type,omitempty"`
	AttachmentID int64      `json:"attachment_id,omitempty"`
	Permalink    string     `json:"permalink,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
}
