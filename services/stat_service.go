package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/Dosada05/club-records/live"
	"github.com/Dosada05/club-records/models"
	"github.com/Dosada05/club-records/repositories"
)

type StatService interface {
	// RecordStat appends a stat. The match must exist; the player name is
	// kept as free text and is not checked against the player directory.
	RecordStat(ctx context.Context, input RecordStatInput) (*models.StatRecord, error)
	ListStats(ctx context.Context) ([]models.StatRecord, error)
	// ListStatsForMatch returns an empty slice for a match with no stats,
	// including a match that does not exist.
	ListStatsForMatch(ctx context.Context, matchID int) ([]models.StatRecord, error)
}

type RecordStatInput struct {
	PlayerName string  `json:"player_name"`
	Goals      int     `json:"goals"`
	Assists    int     `json:"assists"`
	Rating     float64 `json:"rating"`
	Cards      int     `json:"cards"`
	MatchID    int     `json:"match_id"`
}

type statService struct {
	statRepo  repositories.StatRepository
	matchRepo repositories.MatchRepository
	feed      LiveFeed
	logger    *slog.Logger
}

func NewStatService(statRepo repositories.StatRepository, matchRepo repositories.MatchRepository, feed LiveFeed, logger *slog.Logger) StatService {
	return &statService{
		statRepo:  statRepo,
		matchRepo: matchRepo,
		feed:      feed,
		logger:    loggerOrDiscard(logger),
	}
}

func (s *statService) RecordStat(ctx context.Context, input RecordStatInput) (*models.StatRecord, error) {
	verr := newValidationError()
	if isBlank(input.PlayerName) {
		verr.add("player_name", "must be provided")
	}
	if input.Goals < 0 {
		verr.add("goals", "must not be negative")
	}
	if input.Assists < 0 {
		verr.add("assists", "must not be negative")
	}
	if input.Cards < 0 {
		verr.add("cards", "must not be negative")
	}
	if math.IsNaN(input.Rating) || math.IsInf(input.Rating, 0) {
		verr.add("rating", "must be a finite number")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	exists, err := s.matchRepo.Exists(ctx, input.MatchID)
	if err != nil {
		return nil, persistenceError("check stat match", err)
	}
	if !exists {
		return nil, unknownMatchError(input.MatchID)
	}

	stat := &models.StatRecord{
		PlayerName: input.PlayerName,
		Goals:      input.Goals,
		Assists:    input.Assists,
		Rating:     input.Rating,
		Cards:      input.Cards,
		MatchID:    input.MatchID,
	}
	if err := s.statRepo.Create(ctx, stat); err != nil {
		if errors.Is(err, repositories.ErrStatMatchInvalid) {
			return nil, unknownMatchError(input.MatchID)
		}
		return nil, persistenceError("record stat", err)
	}

	s.logger.Debug("stat recorded", slog.Int("stat_id", stat.ID), slog.Int("match_id", stat.MatchID))
	if s.feed != nil {
		msg := live.Message{Type: live.MessageStatRecorded, Payload: stat}
		s.feed.BroadcastToRoom(live.RoomFixtures, msg)
		s.feed.BroadcastToRoom(live.MatchRoom(stat.MatchID), msg)
	}
	return stat, nil
}

func (s *statService) ListStats(ctx context.Context) ([]models.StatRecord, error) {
	stats, err := s.statRepo.ListAll(ctx)
	if err != nil {
		return nil, persistenceError("list stats", err)
	}
	return nonNilStats(stats), nil
}

func (s *statService) ListStatsForMatch(ctx context.Context, matchID int) ([]models.StatRecord, error) {
	stats, err := s.statRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, persistenceError(fmt.Sprintf("list stats for match %d", matchID), err)
	}
	return nonNilStats(stats), nil
}

func unknownMatchError(matchID int) error {
	return &ValidationError{Fields: map[string]string{
		"match_id": fmt.Sprintf("match %d does not exist", matchID),
	}}
}

func nonNilStats(stats []models.StatRecord) []models.StatRecord {
	if stats == nil {
		return []models.StatRecord{}
	}
	return stats
}
