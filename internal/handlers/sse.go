package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeseoLee/janggi-sub000/internal/logging"
)

// HandleEvents streams session events over Server-Sent Events. Events
// carry per-session sequence numbers and are only emitted for state
// changes the session actually accepted. When a participant's stream
// drops while the session is playing, the disconnect counts as that
// participant's resignation.
func (h *Handler) HandleEvents(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	s, ok := h.Registry.Get(id)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	pid, _ := uuid.Parse(c.Query("participantId"))

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.String(http.StatusInternalServerError, "streaming unsupported")
		return
	}
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ch := make(chan []byte, 16)
	s.AddWatcher(ch)
	defer s.RemoveWatcher(ch)

	initial, _ := json.Marshal(viewOf(s, pid))
	_, _ = fmt.Fprintf(c.Writer, "data: %s\n\n", initial)
	flusher.Flush()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			if pid != uuid.Nil {
				if s.Disconnect(context.Background(), pid) {
					logging.Infof("session %s: %s disconnected while playing", s.ID, pid)
				}
			}
			return
		case <-ticker.C:
			// heartbeat
			_, _ = c.Writer.Write([]byte("data: {}\n\n"))
			flusher.Flush()
		case msg := <-ch:
			_, _ = c.Writer.Write([]byte("data: "))
			_, _ = c.Writer.Write(msg)
			_, _ = c.Writer.Write([]byte("\n\n"))
			flusher.Flush()
		}
	}
}
