package output

import (
	"fmt"
	"time"

	"melody-keyboard/debug"
	"melody-keyboard/keyboard"
	"melody-keyboard/theory"
)

// Notification is a transient message about a played note
type Notification struct {
	Note     theory.PitchClass
	Mode     keyboard.Mode
	Duration time.Duration
}

func (n Notification) Title() string {
	return fmt.Sprintf("Note %s played", n.Note)
}

func (n Notification) Description() string {
	return fmt.Sprintf("Output: %s", n.Mode)
}

// Notifier shows notifications without blocking the caller
type Notifier interface {
	Notify(n Notification)
}

// NotifyQueue hands notifications to a UI loop over a buffered channel.
// When the buffer is full the notification is dropped.
type NotifyQueue struct {
	ch chan Notification
}

func NewNotifyQueue(size int) *NotifyQueue {
	return &NotifyQueue{ch: make(chan Notification, size)}
}

func (q *NotifyQueue) Notify(n Notification) {
	select {
	case q.ch <- n:
	default:
		debug.LogEvery(10, "output", "notify queue full, dropping %s", n.Note)
	}
}

// C is read by the UI
func (q *NotifyQueue) C() <-chan Notification {
	return q.ch
}
