package storage

import (
	"time"

	"github.com/google/uuid"
)

// RankState is a participant's persisted tier progression row.
type RankState struct {
	ParticipantID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tier           int
	ProgressWins   int
	ProgressLosses int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GameRecord is the immutable record of one finished match. MoveLog
// holds the full ordered ply log as JSON; it is the canonical replay
// source and is never edited after insert.
type GameRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamAID    uuid.UUID `gorm:"type:uuid;index"`
	TeamBID    uuid.UUID `gorm:"type:uuid;index"`
	WinnerID   uuid.UUID `gorm:"type:uuid"`
	LoserID    uuid.UUID `gorm:"type:uuid"`
	SetupA     string
	SetupB     string
	ResultKind string
	PlyCount   int
	MoveLog    string `gorm:"type:jsonb"`
	StartedAt  time.Time
	EndedAt    time.Time
	CreatedAt  time.Time
}
