package models

import "time"

// Role is the household role of a family member.
type Role string

const (
	RoleMom         Role = "mom"
	RoleDad         Role = "dad"
	RoleChildMale   Role = "child_male"
	RoleChildFemale Role = "child_female"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMom, RoleDad, RoleChildMale, RoleChildFemale:
		return true
	}
	return false
}

// User is a family member. Users are seeded at setup and never edited
// through the API.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Role      Role   `gorm:"type:varchar(16);not null;default:'child_male'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
