package models

import "time"

type RoleName string

const (
	RoleUser    RoleName = "user"
	RoleAdmin   RoleName = "admin"
	RoleFounder RoleName = "founder"
)

// Role maps a user to their privilege level. Users without a row are
// plain users. Roles are only ever read server-side, per request.
type Role struct {
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	Name      RoleName  `gorm:"type:varchar(20);not null;default:'user'" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// CanManageUsers reports whether the role grants access to the admin
// user-management surface.
func (r RoleName) CanManageUsers() bool {
	return r == RoleAdmin || r == RoleFounder
}
