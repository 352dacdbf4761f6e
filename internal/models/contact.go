package models

import "time"

// ContactMessage is the persisted representation of a contact form submission.
type ContactMessage struct {
	MessageID string    `db:"message_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
