package storage

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeseoLee/janggi-sub000/internal/rank"
)

// Store wraps a gorm DB instance and provides helper methods for
// persisting match outcomes and rank progression.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store helper from a gorm DB.
func NewStore(db *gorm.DB) *Store {
	if db == nil {
		return nil
	}
	return &Store{db: db}
}

// ErrNotFound is returned when a record is not found.
var ErrNotFound = gorm.ErrRecordNotFound

// CommitOutcome persists one finished game: the immutable record plus
// both participants' updated rank rows, in a single transaction. Rank
// rows are locked FOR UPDATE in a fixed id order so two sessions
// finishing with a shared participant cannot corrupt counters or
// deadlock each other.
func (s *Store) CommitOutcome(ctx context.Context, rec *GameRecord) error {
	if s == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, pid := range lockOrder(rec.WinnerID, rec.LoserID) {
			res := rank.Loss
			if pid == rec.WinnerID {
				res = rank.Win
			}
			if err := applyResult(tx, pid, res); err != nil {
				return err
			}
		}
		return tx.Create(rec).Error
	})
}

// applyResult performs the locked read-modify-write of one rank row.
func applyResult(tx *gorm.DB, pid uuid.UUID, res rank.Result) error {
	seed := RankState{ParticipantID: pid}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return err
	}
	var row RankState
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "participant_id = ?", pid).Error; err != nil {
		return err
	}
	next := rank.Resolve(rank.State{
		Tier:           row.Tier,
		ProgressWins:   row.ProgressWins,
		ProgressLosses: row.ProgressLosses,
	}, res)
	return tx.Model(&RankState{}).
		Where("participant_id = ?", pid).
		Updates(map[string]any{
			"tier":            next.Tier,
			"progress_wins":   next.ProgressWins,
			"progress_losses": next.ProgressLosses,
		}).Error
}

// lockOrder sorts two participant ids into a stable locking order.
func lockOrder(a, b uuid.UUID) []uuid.UUID {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return []uuid.UUID{a, b}
	}
	return []uuid.UUID{b, a}
}

// RankOf fetches a participant's rank state, zero-valued when the
// participant has no row yet.
func (s *Store) RankOf(ctx context.Context, pid uuid.UUID) (rank.State, error) {
	if s == nil {
		return rank.State{}, nil
	}
	var row RankState
	err := s.db.WithContext(ctx).First(&row, "participant_id = ?", pid).Error
	if err == gorm.ErrRecordNotFound {
		return rank.State{}, nil
	}
	if err != nil {
		return rank.State{}, err
	}
	return rank.State{
		Tier:           row.Tier,
		ProgressWins:   row.ProgressWins,
		ProgressLosses: row.ProgressLosses,
	}, nil
}

// GameByID fetches one immutable game record.
func (s *Store) GameByID(ctx context.Context, id uuid.UUID) (*GameRecord, error) {
	if s == nil {
		return nil, gorm.ErrRecordNotFound
	}
	var rec GameRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// GamesByParticipant lists a participant's finished games, newest
// first, for listing and replay.
func (s *Store) GamesByParticipant(ctx context.Context, pid uuid.UUID) ([]GameRecord, error) {
	if s == nil {
		return nil, nil
	}
	var recs []GameRecord
	err := s.db.WithContext(ctx).
		Where("team_a_id = ? OR team_b_id = ?", pid, pid).
		Order("ended_at DESC").
		Find(&recs).Error
	return recs, err
}

// Stats represents aggregate counts for finished games.
type Stats struct {
	Games       int64 `json:"games"`
	Resigns     int64 `json:"resigns"`
	Checkmates  int64 `json:"checkmates"`
	Disconnects int64 `json:"disconnects"`
}

// FetchStats aggregates result-kind counts for the operator surface.
func (s *Store) FetchStats(ctx context.Context) (Stats, error) {
	var stats Stats
	if s == nil {
		return stats, nil
	}
	if err := s.db.WithContext(ctx).Model(&GameRecord{}).Count(&stats.Games).Error; err != nil {
		return stats, err
	}
	for kind, dst := range map[string]*int64{
		"resign":     &stats.Resigns,
		"checkmate":  &stats.Checkmates,
		"disconnect": &stats.Disconnects,
	} {
		if err := s.db.WithContext(ctx).Model(&GameRecord{}).
			Where("result_kind = ?", kind).Count(dst).Error; err != nil {
			return stats, err
		}
	}
	return stats, nil
}
