package contact

import "time"

// Message is a delivered draft as kept by an inbox.
type Message struct {
	ID         string
	Draft      Draft
	ReceivedAt time.Time
	Read       bool
}
