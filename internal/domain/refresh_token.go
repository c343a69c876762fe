package domain

import "time"

// RefreshToken is one issued refresh credential.
//
// The signed token string itself is the primary key: lookups at refresh and
// logout time are by the exact value the client presents. A token is valid
// iff its row still exists and ExpiresAt is in the future; expired rows are
// deleted lazily the next time they are presented.
type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey;size:512"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
