package pool_model

import "time"

type Role string

const (
	MemberRole Role = "member"
	AdminRole  Role = "admin"
)

type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Username     string    `json:"username" gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         Role      `json:"role" gorm:"size:16;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetEntityID implements authorization_iface.Entity.
func (u *User) GetEntityID() string {
	return "pool/user"
}

func (u *User) IsAdmin() bool {
	return u.Role == AdminRole
}
