package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the operating system of the device behind a session.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// Session is an authenticated user context. A nil session means anonymous.
type Session struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Roles       []string  `json:"roles,omitempty"`
	DeviceToken string    `json:"device_token,omitempty"`
	Platform    Platform  `json:"platform,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Active reports whether the session exists and has not expired at now.
func (s *Session) Active(now time.Time) bool {
	if s == nil || s.UserID == uuid.Nil {
		return false
	}

	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

// AlertTarget returns where local alerts for this session are delivered.
func (s *Session) AlertTarget() AlertTarget {
	return AlertTarget{
		UserID:      s.UserID,
		SessionID:   s.ID,
		DeviceToken: s.DeviceToken,
		Platform:    s.Platform,
	}
}

// AlertTarget identifies the device of the current user.
type AlertTarget struct {
	UserID      uuid.UUID
	SessionID   uuid.UUID
	DeviceToken string
	Platform    Platform
}
