package models

import "time"

type NotificationType string

const (
	NotificationNewPost NotificationType = "new-post"
	NotificationNewUser NotificationType = "new-user"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

var notificationIcons = map[NotificationType]string{
	NotificationNewPost: "pi pi-file-edit",
	NotificationNewUser: "pi pi-user-plus",
}

var notificationSeverities = map[NotificationType]Severity{
	NotificationNewPost: SeverityInfo,
	NotificationNewUser: SeveritySuccess,
}

func (t NotificationType) Valid() bool {
	_, ok := notificationIcons[t]
	return ok
}

// Icon is derived from the type only.
func (t NotificationType) Icon() string {
	return notificationIcons[t]
}

// Severity is derived from the type only.
func (t NotificationType) Severity() Severity {
	if s, ok := notificationSeverities[t]; ok {
		return s
	}
	return SeverityInfo
}

// Notification is a feed entry. Timestamp plays the role of a creation time
// and is never changed by updates.
type Notification struct {
	ID        int              `json:"id"`
	Type      NotificationType `json:"type" validate:"required,oneof=new-post new-user"`
	Title     string           `json:"title" validate:"required"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	Icon      string           `json:"icon"`
	Severity  Severity         `json:"severity"`
}

// NewNotification builds an unread notification with icon and severity taken
// from the static type mapping. Id and timestamp are assigned by the store.
func NewNotification(kind NotificationType, title, message string) Notification {
	return Notification{
		Type:     kind,
		Title:    title,
		Message:  message,
		Read:     false,
		Icon:     kind.Icon(),
		Severity: kind.Severity(),
	}
}

func (n Notification) Key() int           { return n.ID }
func (n Notification) Created() time.Time { return n.Timestamp }

func (n Notification) WithIdentity(id int, created time.Time) Notification {
	n.ID = id
	n.Timestamp = created
	return n
}

func (n Notification) Clone() Notification {
	return n
}
