package postgres

import (
	"time"
)

/*
 * 'User' is an account that can host games. Passwords are stored as bcrypt
 * hashes; the role decides whether the account may also manage the quiz bank.
 */
type User struct {
	ID           string    `gorm:"primaryKey;size:50" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:'host'" json:"role"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
