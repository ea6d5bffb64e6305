package models

import "time"

// Session is an opaque server-side login token. A session is usable
// strictly before ExpiresAt; expiry is absolute, never extended.
type Session struct {
	Token     string    `gorm:"type:varchar(64);primarykey" json:"token"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Valid reports whether the session may still be used at the given instant.
// The boundary is exclusive: a session is already invalid at ExpiresAt.
func (s *Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
