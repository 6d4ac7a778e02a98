// Package handlers exposes the match service over HTTP: matchmaking,
// session actions, the SSE event stream, and replay retrieval. Every
// endpoint defers validation to the session; rejected input simply
// reports ok=false with no state change.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeseoLee/janggi-sub000/internal/board"
	"github.com/yeseoLee/janggi-sub000/internal/engine"
	"github.com/yeseoLee/janggi-sub000/internal/match"
	"github.com/yeseoLee/janggi-sub000/internal/storage"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	Registry  *match.Registry
	Store     *storage.Store
	Engine    engine.Engine
	EngineCfg engine.Request
}

// NewHandler creates a new handler instance.
func NewHandler(reg *match.Registry, store *storage.Store, eng engine.Engine, cfg engine.Request) *Handler {
	return &Handler{Registry: reg, Store: store, Engine: eng, EngineCfg: cfg}
}

// Routes registers all endpoints on the router.
func (h *Handler) Routes(r *gin.Engine) {
	r.POST("/queue/join", h.HandleQueueJoin)
	r.POST("/queue/leave", h.HandleQueueLeave)
	r.POST("/queue/engine", h.HandleQueueEngine)
	r.POST("/session/:id/setup", h.HandleSetup)
	r.POST("/session/:id/move", h.HandleMove)
	r.POST("/session/:id/pass", h.HandlePass)
	r.POST("/session/:id/resign", h.HandleResign)
	r.POST("/session/:id/claim", h.HandleClaim)
	r.GET("/session/:id/events", h.HandleEvents)
	r.GET("/participants/:participantId/session", h.HandleSessionFor)
	r.GET("/participants/:participantId/games", h.HandleGames)
	r.GET("/participants/:participantId/rank", h.HandleRank)
	r.GET("/games/:id/replay", h.HandleReplay)
	r.GET("/stats", h.HandleStats)
}

type joinRequest struct {
	ParticipantID string `json:"participantId"`
}

type actionRequest struct {
	ParticipantID string       `json:"participantId"`
	Setup         string       `json:"setup,omitempty"`
	From          *board.Coord `json:"from,omitempty"`
	To            *board.Coord `json:"to,omitempty"`
}

// sessionView is the session summary returned from action endpoints.
type sessionView struct {
	ID       string `json:"id"`
	State    string `json:"state"`
	Turn     string `json:"turn,omitempty"`
	Board    string `json:"board,omitempty"`
	YourTeam string `json:"yourTeam,omitempty"`
}

func viewOf(s *match.Session, pid uuid.UUID) sessionView {
	b, turn := s.Snapshot()
	v := sessionView{
		ID:    s.ID.String(),
		State: s.State().String(),
	}
	if s.State() == match.Playing {
		v.Turn = turn.String()
		v.Board = b.String()
	}
	if t := s.TeamOf(pid); t != board.TeamNone {
		v.YourTeam = t.String()
	}
	return v
}

// HandleQueueJoin enters a participant into matchmaking. A fresh
// participant id is minted when none is supplied.
func (h *Handler) HandleQueueJoin(c *gin.Context) {
	var req joinRequest
	_ = c.ShouldBindJSON(&req)
	pid, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		pid = uuid.New()
	}
	s, paired := h.Registry.Join(pid)
	if !paired {
		if s, ok := h.Registry.SessionFor(pid); ok {
			v := viewOf(s, pid)
			c.JSON(http.StatusOK, gin.H{"ok": true, "participantId": pid.String(), "session": v})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "participantId": pid.String(), "waiting": true})
		return
	}
	v := viewOf(s, pid)
	c.JSON(http.StatusOK, gin.H{"ok": true, "participantId": pid.String(), "session": v})
}

// HandleQueueLeave removes a still-unpaired participant.
func (h *Handler) HandleQueueLeave(c *gin.Context) {
	pid, ok := h.bindParticipant(c)
	if !ok {
		return
	}
	left := h.Registry.LeaveQueue(pid)
	c.JSON(http.StatusOK, gin.H{"ok": left})
}

// HandleQueueEngine starts a session against the search opponent.
func (h *Handler) HandleQueueEngine(c *gin.Context) {
	var req joinRequest
	_ = c.ShouldBindJSON(&req)
	pid, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		pid = uuid.New()
	}
	s := h.Registry.JoinEngine(pid, h.Engine, h.EngineCfg)
	c.JSON(http.StatusOK, gin.H{"ok": true, "participantId": pid.String(), "session": viewOf(s, pid)})
}

// HandleSessionFor reports the live session a participant belongs to,
// for the side that was queued first and paired later.
func (h *Handler) HandleSessionFor(c *gin.Context) {
	pid, err := uuid.Parse(c.Param("participantId"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	s, ok := h.Registry.SessionFor(pid)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false, "waiting": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": viewOf(s, pid)})
}

// session resolves the target session and the caller's team. A stale
// or unknown session id, or a stranger participant, yields ok=false
// and no state change.
func (h *Handler) session(c *gin.Context) (*match.Session, board.Team, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return nil, board.TeamNone, uuid.Nil, false
	}
	s, ok := h.Registry.Get(id)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return nil, board.TeamNone, uuid.Nil, false
	}
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "bad json"})
		return nil, board.TeamNone, uuid.Nil, false
	}
	pid, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return nil, board.TeamNone, uuid.Nil, false
	}
	team := s.TeamOf(pid)
	if team == board.TeamNone {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return nil, board.TeamNone, uuid.Nil, false
	}
	c.Set("action", req)
	return s, team, pid, true
}

func action(c *gin.Context) actionRequest {
	v, _ := c.Get("action")
	req, _ := v.(actionRequest)
	return req
}

// HandleSetup records one side's opening arrangement choice.
func (h *Handler) HandleSetup(c *gin.Context) {
	s, team, pid, ok := h.session(c)
	if !ok {
		return
	}
	setup, err := board.ParseSetup(action(c).Setup)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	accepted := s.SubmitSetup(team, setup)
	c.JSON(http.StatusOK, gin.H{"ok": accepted, "session": viewOf(s, pid)})
}

// HandleMove submits one move for server-side validation.
func (h *Handler) HandleMove(c *gin.Context) {
	s, team, pid, ok := h.session(c)
	if !ok {
		return
	}
	req := action(c)
	if req.From == nil || req.To == nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "session": viewOf(s, pid)})
		return
	}
	accepted := s.SubmitMove(team, *req.From, *req.To)
	c.JSON(http.StatusOK, gin.H{"ok": accepted, "session": viewOf(s, pid)})
}

// HandlePass declines to move.
func (h *Handler) HandlePass(c *gin.Context) {
	s, team, pid, ok := h.session(c)
	if !ok {
		return
	}
	accepted := s.Pass(team)
	c.JSON(http.StatusOK, gin.H{"ok": accepted, "session": viewOf(s, pid)})
}

// HandleResign resigns unconditionally.
func (h *Handler) HandleResign(c *gin.Context) {
	s, team, pid, ok := h.session(c)
	if !ok {
		return
	}
	accepted := s.Resign(c.Request.Context(), team)
	c.JSON(http.StatusOK, gin.H{"ok": accepted, "session": viewOf(s, pid)})
}

// HandleClaim asserts checkmate against the opponent; the server
// re-derives mate before accepting.
func (h *Handler) HandleClaim(c *gin.Context) {
	s, team, pid, ok := h.session(c)
	if !ok {
		return
	}
	accepted := s.ClaimCheckmate(c.Request.Context(), team)
	c.JSON(http.StatusOK, gin.H{"ok": accepted, "session": viewOf(s, pid)})
}

func (h *Handler) bindParticipant(c *gin.Context) (uuid.UUID, bool) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "bad json"})
		return uuid.Nil, false
	}
	pid, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return uuid.Nil, false
	}
	return pid, true
}
