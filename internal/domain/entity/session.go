package entity

import "time"

// Session is a server-issued credential referenced by the session cookie.
type Session struct {
	ID        string    `gorm:"column:session_id;type:text;primaryKey" json:"session_id"`
	UserID    int       `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// SessionUser is the projection of the user owning an active session.
type SessionUser struct {
	ID    int
	Name  string
	Email string
	Role  Role
}
