package models

import "gorm.io/gorm"

// User represents an account in the identity subsystem. Products keep a
// required reference to the user that created them; the catalog never
// mutates users beyond seeding.
type User struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	FullName   string     `json:"full_name" gorm:"type:varchar(255)" validate:"required"`
	Password   string     `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag, cleared before responses
	IsActive   bool       `json:"is_active" gorm:"default:true"`
	Roles      StringList `json:"roles" gorm:"type:text"`
	gorm.Model `json:"-"`
}
