package server

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info" or "warning"
}

// WebLogger implements core.Logger by forwarding to the server log and
// recording messages for the client
type WebLogger struct {
	renderID    string
	base        log.Logger
	consoleChan chan ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render. Up to
// capacity messages are kept; later ones only reach the server log.
func NewWebLogger(renderID string, base log.Logger, capacity int) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		base:        base,
		consoleChan: make(chan ConsoleMessage, capacity),
	}
}

// Infof implements core.Logger
func (wl *WebLogger) Infof(format string, args ...interface{}) {
	wl.record("info", format, args...)
}

// Warningf implements core.Logger
func (wl *WebLogger) Warningf(format string, args ...interface{}) {
	wl.record("warning", format, args...)
}

func (wl *WebLogger) record(level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	if wl.base != nil {
		if level == "warning" {
			wl.base.Warningf("[%s] %s", wl.renderID, message)
		} else {
			wl.base.Infof("[%s] %s", wl.renderID, message)
		}
	}

	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		// Channel full, skip (don't block)
	}
}

// Messages drains and returns the recorded messages
func (wl *WebLogger) Messages() []ConsoleMessage {
	var messages []ConsoleMessage
	for {
		select {
		case msg := <-wl.consoleChan:
			messages = append(messages, msg)
		default:
			return messages
		}
	}
}
