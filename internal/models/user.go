package models

import "time"

// User represents a registered marketplace identity, keyed by email.
// Password holds a bcrypt hash and is only set for users who registered
// with a password for the self-hosted login path. No json tag for security.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Name      string    `json:"name" validate:"omitempty,max=100"`
	PhotoURL  string    `json:"photoURL" validate:"omitempty,url"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
}
