package model

import "time"

type Session struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profile_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
