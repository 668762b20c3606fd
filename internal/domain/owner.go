package domain

import "time"

// Owner represents a pet owner identified by their Telegram account.
// Created on first registration or first booking attempt, never deleted.
type Owner struct {
	ID         int64
	TelegramID int64
	Name       string
	Phone      *string
	Email      *string
	CreatedAt  time.Time
}
