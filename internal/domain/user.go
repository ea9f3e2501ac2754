package domain

import "time"

// User represents a registered account
type User struct {
	ID           string    `json:"id"`
	LoginID      string    `json:"loginId"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
