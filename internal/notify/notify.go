package notify

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notification is a transient user-visible message. Every session and loader
// outcome produces one; nothing is ever fatal to the shell.
type Notification struct {
	ID      string
	Level   Level
	Title   string
	Message string
	Time    time.Time
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// New builds a notification with a fresh id and timestamp.
func New(level Level, title, message string) Notification {
	return Notification{
		ID:      uuid.New().String(),
		Level:   level,
		Title:   title,
		Message: message,
		Time:    time.Now(),
	}
}

// Info emits an informational notification to n.
func Info(n Notifier, title, message string) {
	if n != nil {
		n.Notify(New(LevelInfo, title, message))
	}
}

// Error emits an error notification to n.
func Error(n Notifier, title, message string) {
	if n != nil {
		n.Notify(New(LevelError, title, message))
	}
}

// Center is a bounded in-memory fan-in of notifications. The UI drains it;
// when nothing drains, the oldest entries are dropped rather than blocking.
type Center struct {
	ch chan Notification
}

// NewCenter creates a center with the given buffer size.
func NewCenter(size int) *Center {
	if size <= 0 {
		size = 32
	}
	return &Center{ch: make(chan Notification, size)}
}

// Notify enqueues a notification, evicting the oldest one when full.
func (c *Center) Notify(n Notification) {
	for {
		select {
		case c.ch <- n:
			return
		default:
			select {
			case <-c.ch:
			default:
			}
		}
	}
}

// Drain returns all currently queued notifications without blocking.
func (c *Center) Drain() []Notification {
	var out []Notification
	for {
		select {
		case n := <-c.ch:
			out = append(out, n)
		default:
			return out
		}
	}
}

// Logger writes notifications to the standard logger, for headless use.
type Logger struct{}

// Notify implements Notifier.
func (Logger) Notify(n Notification) {
	if n.Message != "" {
		log.Printf("[%s] %s: %s", n.Level, n.Title, n.Message)
		return
	}
	log.Printf("[%s] %s", n.Level, n.Title)
}
