package utils

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// FlashMessage is a one-shot notice rendered on the next page load.
type FlashMessage struct {
	Category string // success, danger, warning
	Message  string
}

// Flash queues a message in the cookie session. Stored as "category|message"
// so the session only ever carries plain strings.
func Flash(c *gin.Context, category, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(category + "|" + message)
	_ = sess.Save()
}

// Flashes pops all queued messages.
func Flashes(c *gin.Context) []FlashMessage {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save()
	}

	out := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		s, ok := f.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(s, "|")
		if !found {
			category, message = "success", s
		}
		out = append(out, FlashMessage{Category: category, Message: message})
	}
	return out
}
