package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/club-records/live"
	"github.com/Dosada05/club-records/models"
	"github.com/Dosada05/club-records/repositories"
)

// LiveFeed receives change notifications. Delivery is best effort.
type LiveFeed interface {
	BroadcastToRoom(roomID string, message interface{})
}

type MatchService interface {
	CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	// UpdateMatch replaces every field of an existing match.
	UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	ListPastMatches(ctx context.Context, today models.Date) ([]models.Match, error)
	ListUpcomingMatches(ctx context.Context, today models.Date) ([]models.Match, error)
	ListMatchOptions(ctx context.Context) ([]models.MatchOption, error)
}

// MatchInput carries every editable field; Date must be YYYY-MM-DD.
type MatchInput struct {
	Result   string `json:"result"`
	Lineup   string `json:"lineup"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	feed      LiveFeed
	logger    *slog.Logger
}

func NewMatchService(matchRepo repositories.MatchRepository, feed LiveFeed, logger *slog.Logger) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		feed:      feed,
		logger:    loggerOrDiscard(logger),
	}
}

func (s *matchService) CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error) {
	match, err := input.toMatch()
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, persistenceError("create match", err)
	}

	s.logger.Debug("match created", slog.Int("match_id", match.ID), slog.String("date", match.Date.String()))
	s.publish(live.MessageMatchCreated, match)
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, persistenceError(fmt.Sprintf("get match %d", id), err)
	}
	return match, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	if _, err := s.GetMatchByID(ctx, id); err != nil {
		return nil, err
	}

	match, err := input.toMatch()
	if err != nil {
		return nil, err
	}
	match.ID = id

	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, persistenceError(fmt.Sprintf("update match %d", id), err)
	}

	s.logger.Debug("match updated", slog.Int("match_id", match.ID))
	s.publish(live.MessageMatchUpdated, match)
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, persistenceError("list matches", err)
	}
	return nonNilMatches(matches), nil
}

func (s *matchService) ListPastMatches(ctx context.Context, today models.Date) ([]models.Match, error) {
	matches, err := s.matchRepo.ListBefore(ctx, today)
	if err != nil {
		return nil, persistenceError("list past matches", err)
	}
	return nonNilMatches(matches), nil
}

func (s *matchService) ListUpcomingMatches(ctx context.Context, today models.Date) ([]models.Match, error) {
	matches, err := s.matchRepo.ListOnOrAfter(ctx, today)
	if err != nil {
		return nil, persistenceError("list upcoming matches", err)
	}
	return nonNilMatches(matches), nil
}

func (s *matchService) ListMatchOptions(ctx context.Context) ([]models.MatchOption, error) {
	options, err := s.matchRepo.ListOptions(ctx)
	if err != nil {
		return nil, persistenceError("list match options", err)
	}
	if options == nil {
		return []models.MatchOption{}, nil
	}
	return options, nil
}

func (s *matchService) publish(messageType string, match *models.Match) {
	if s.feed == nil {
		return
	}
	msg := live.Message{Type: messageType, Payload: match}
	s.feed.BroadcastToRoom(live.RoomFixtures, msg)
	s.feed.BroadcastToRoom(live.MatchRoom(match.ID), msg)
}

func (in MatchInput) toMatch() (*models.Match, error) {
	verr := newValidationError()
	var date models.Date
	if isBlank(in.Date) {
		verr.add("date", "must be provided")
	} else {
		parsed, err := models.ParseDate(in.Date)
		if err != nil {
			verr.add("date", err.Error())
		}
		date = parsed
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return &models.Match{
		Result:   in.Result,
		Lineup:   in.Lineup,
		Date:     date,
		Time:     in.Time,
		Location: in.Location,
	}, nil
}

func nonNilMatches(matches []models.Match) []models.Match {
	if matches == nil {
		return []models.Match{}
	}
	return matches
}
