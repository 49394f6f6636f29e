package models

import "time"

// Account is a registered portal user. Email is stored lower-cased.
type Account struct {
	ID           uint      `gorm:"primaryKey"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Phone        string    `gorm:"not null;default:''"`
	PasswordHash string    `gorm:"not null"`
	DateOfBirth  time.Time `gorm:"not null"`
	Gender       string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (account Account) DisplayName() string {
	name := account.FirstName
	if account.LastName != "" {
		if name != "" {
			name += " "
		}
		name += account.LastName
	}
	if name == "" {
		return account.Email
	}
	return name
}
