package views

import "sync"

// NotificationType distinguishes success from error banners.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification is a transient, dismissible message.
type Notification struct {
	Type    NotificationType
	Message string
}

// NotificationCenter collects notifications for a dashboard. Failures of
// data operations land here instead of propagating; nothing in the
// dashboards is fatal.
type NotificationCenter struct {
	mu     sync.Mutex
	active []Notification
}

// Push adds a notification.
func (n *NotificationCenter) Push(kind NotificationType, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = append(n.active, Notification{Type: kind, Message: message})
}

// Active returns the currently visible notifications.
func (n *NotificationCenter) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification{}, n.active...)
}

// Dismiss removes the notification at index, ignoring out-of-range.
func (n *NotificationCenter) Dismiss(index int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if index < 0 || index >= len(n.active) {
		return
	}
	n.active = append(n.active[:index], n.active[index+1:]...)
}

// DismissAll clears every notification.
func (n *NotificationCenter) DismissAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = nil
}
