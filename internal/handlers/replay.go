package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeseoLee/janggi-sub000/internal/board"
	"github.com/yeseoLee/janggi-sub000/internal/replay"
	"github.com/yeseoLee/janggi-sub000/internal/storage"
)

// frameView is one reconstructed snapshot for post-game review.
type frameView struct {
	Board  string `json:"board"`
	ToMove string `json:"toMove"`
}

// HandleReplay expands a persisted game record into its board history.
// Setups that fail to parse fall back to the default arrangement and
// malformed log entries are skipped, so old records still expand.
func (h *Handler) HandleReplay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	rec, err := h.Store.GameByID(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if err == storage.ErrNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"ok": false})
		return
	}

	setupA, err := board.ParseSetup(rec.SetupA)
	if err != nil {
		setupA = board.SetupHEHE
	}
	setupB, err := board.ParseSetup(rec.SetupB)
	if err != nil {
		setupB = board.SetupHEHE
	}
	var log []replay.Entry
	_ = json.Unmarshal([]byte(rec.MoveLog), &log)

	frames := replay.Expand(setupA, setupB, log)
	views := make([]frameView, 0, len(frames))
	for _, f := range frames {
		views = append(views, frameView{Board: f.Board.String(), ToMove: f.ToMove.String()})
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"result": rec.ResultKind,
		"winner": rec.WinnerID.String(),
		"plies":  rec.PlyCount,
		"frames": views,
	})
}

// HandleGames lists a participant's finished games for replay pickers.
func (h *Handler) HandleGames(c *gin.Context) {
	pid, err := uuid.Parse(c.Param("participantId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	recs, err := h.Store.GamesByParticipant(c.Request.Context(), pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "games": recs})
}

// HandleRank reports a participant's tier progression.
func (h *Handler) HandleRank(c *gin.Context) {
	pid, err := uuid.Parse(c.Param("participantId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	st, err := h.Store.RankOf(c.Request.Context(), pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"tier":           st.Tier,
		"progressWins":   st.ProgressWins,
		"progressLosses": st.ProgressLosses,
	})
}

// HandleStats aggregates finished-game counts plus live sessions.
func (h *Handler) HandleStats(c *gin.Context) {
	stats, err := h.Store.FetchStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": stats, "live": h.Registry.Live()})
}
