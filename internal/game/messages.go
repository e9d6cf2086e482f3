package game

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// messageTTL is how long a message stays on screen.
const messageTTL = 5 * time.Second

// Message is one line in the on-screen log.
type Message struct {
	Text  string
	Color tcell.Color
	At    time.Time
}

// MessageLog keeps recent messages, newest first, and drops them once they expire.
type MessageLog struct {
	entries []Message
	ttl     time.Duration
	now     func() time.Time
}

// NewMessageLog creates an empty log. A nil clock uses time.Now.
func NewMessageLog(now func() time.Time) *MessageLog {
	if now == nil {
		now = time.Now
	}
	return &MessageLog{ttl: messageTTL, now: now}
}

// Add records a message at the current time.
func (l *MessageLog) Add(text string, color tcell.Color) {
	l.entries = append([]Message{{Text: text, Color: color, At: l.now()}}, l.entries...)
}

// Active prunes expired messages and returns the rest, newest first.
func (l *MessageLog) Active() []Message {
	now := l.now()
	kept := l.entries[:0]
	for _, m := range l.entries {
		if now.Sub(m.At) < l.ttl {
			kept = append(kept, m)
		}
	}
	l.entries = kept
	return l.entries
}
