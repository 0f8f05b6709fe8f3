package domain

import "time"

// Chat message roles.
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// ChatMessage is one entry in the assistant conversation log.
type ChatMessage struct {
	ID        string
	Role      string
	Content   string
	Timestamp time.Time
}
