// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents an account in the Ladle application. The password hash is
// write-only: it is set through SetPassword and checked through Authenticate,
// and is never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(80);unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Bio          string    `gorm:"type:varchar(255)" json:"bio"`
	ImageURL     string    `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Recipes      []Recipe  `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
}

// SetPassword hashes the plaintext password with bcrypt and stores the result.
// The plaintext is discarded; there is no way to read it back.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// Authenticate reports whether the plaintext password matches the stored hash.
// A user without a hash never authenticates.
func (u *User) Authenticate(plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
