package models

import "time"

type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Counterpart returns the other side of the conversation from the point of
// view of the given username.
func (m *Message) Counterpart(username string) string {
	if m.Sender == username {
		return m.Recipient
	}
	return m.Sender
}
