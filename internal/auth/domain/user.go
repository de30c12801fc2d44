package domain

import (
	"errors"

	"gorm.io/gorm"
)

// User is a back-office account. The storefront itself needs no
// accounts; only admins authenticate.
type User struct {
	gorm.Model
	Email        string `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
}

func (User) TableName() string { return "admin_users" }

// ErrInvalidCredentials covers unknown email and wrong password alike,
// so login failures don't leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidSession is returned for missing or expired sessions.
var ErrInvalidSession = errors.New("invalid or expired session")
