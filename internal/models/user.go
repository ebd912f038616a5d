package models

import "time"

// User represents the user model in the database.
// ResetTokenHash holds the SHA-256 digest of the outstanding password reset
// token; the plaintext token only ever travels in the reset email. Both
// reset fields are set together and cleared together.
type User struct {
	Base
	Name                string        `gorm:"not null" json:"name"`
	Email               string        `gorm:"uniqueIndex;not null" json:"email"`
	Password            string        `gorm:"not null" json:"-"`
	ResetTokenHash      string        `gorm:"size:64" json:"-"`
	ResetTokenExpiresAt *time.Time    `json:"-"`
	Transactions        []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
