package entity

import "time"

// Role is the single-character classification of a user.
type Role string

const (
	RoleAdmin  Role = "A"
	RoleDoctor Role = "D"
	RoleUser   Role = "U"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleUser:
		return true
	}
	return false
}

// User is an identity record created on the first Google login.
type User struct {
	ID        int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	GoogleID  string    `gorm:"column:google_id;type:text;not null;index" json:"google_id"`
	Name      string    `gorm:"type:varchar;not null" json:"name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Picture   string    `gorm:"type:text;not null" json:"picture"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Role      Role      `gorm:"type:char(1);not null;default:'U'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
