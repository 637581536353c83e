package model

import "time"

// Account represents a registered user identity.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountUpdate lists the account fields to replace. Nil fields stay unchanged.
type AccountUpdate struct {
	Email        *string
	PasswordHash *string
}

// Empty reports whether the update carries no changes.
func (u AccountUpdate) Empty() bool {
	return u.Email == nil && u.PasswordHash == nil
}
