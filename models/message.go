package models

import "time"

// ContactMessage is a contact form submission as stored for the admin.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// CountUnread returns how many messages have not been read yet.
func CountUnread(msgs []ContactMessage) int {
	n := 0
	for _, m := range msgs {
		if !m.Read {
			n++
		}
	}
	return n
}
