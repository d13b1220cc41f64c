// Package models defines the core data structures shared by the
// directory service and the admin client.
package models

import "time"

// User represents a single directory record.
type User struct {
	// ID is the unique identifier for the user. Identity is the ID;
	// every other field is mutable.
	ID string `json:"id"`
	// FirstName is the user's given name.
	FirstName string `json:"first_name"`
	// LastName is the user's family name.
	LastName string `json:"last_name"`
	// Email is the user's contact address.
	Email string `json:"email"`
	// Avatar is a URL pointing at the user's profile image.
	Avatar string `json:"avatar"`
}

// Merge returns a copy of u with every non-empty field of patch
// applied over it. The ID is never replaced by the patch.
func (u User) Merge(patch User) User {
	if patch.FirstName != "" {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		u.LastName = patch.LastName
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.Avatar != "" {
		u.Avatar = patch.Avatar
	}
	return u
}

// Credentials is the payload submitted on login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NotificationKind classifies a notification for display purposes.
type NotificationKind string

const (
	// NotifySuccess reports a completed operation.
	NotifySuccess NotificationKind = "success"
	// NotifyError reports a failed operation.
	NotifyError NotificationKind = "error"
	// NotifyWarning reports a condition worth the operator's attention.
	NotifyWarning NotificationKind = "warning"
	// NotifyInfo reports neutral information.
	NotifyInfo NotificationKind = "info"
)

// Notification is an ephemeral message shown to the operator.
// It is never persisted.
type Notification struct {
	// ID is the unique identifier assigned when the notification is queued.
	ID string
	// Kind classifies the message.
	Kind NotificationKind
	// Message is the displayable text.
	Message string
	// CreatedAt is the time the notification was queued.
	CreatedAt time.Time
	// Duration is how long the notification stays in the queue.
	// Zero means it persists until dismissed.
	Duration time.Duration
}

// Expired reports whether the notification should be removed at now.
// Notifications with zero duration never expire.
func (n Notification) Expired(now time.Time) bool {
	if n.Duration == 0 {
		return false
	}
	return !now.Before(n.CreatedAt.Add(n.Duration))
}
