package models

import "time"

// User represents a registered user of the store.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(24)" validate:"omitempty,hexadecimal,len=24"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	// Password holds the bcrypt digest and is never serialized.
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
