// Package flash provides one-shot notices carried on the session and
// surfaced on the next rendered page.
package flash

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Message is a single queued notice. Category is "error" or "success".
type Message struct {
	Category string
	Text     string
}

// Add queues a message on the current session. Messages are stored as
// plain strings so the cookie store needs no gob registration.
func Add(c *gin.Context, category, text string) {
	session := sessions.Default(c)
	session.AddFlash(category + "|" + text)
	_ = session.Save()
}

// Take drains all queued messages and saves the session so they are not
// shown twice.
func Take(c *gin.Context) []Message {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save()

	msgs := make([]Message, 0, len(raw))
	for _, f := range raw {
		s, ok := f.(string)
		if !ok {
			continue
		}
		category, text, found := strings.Cut(s, "|")
		if !found {
			category, text = "info", s
		}
		msgs = append(msgs, Message{Category: category, Text: text})
	}
	return msgs
}
