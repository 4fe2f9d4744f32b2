package services

import (
	"context"

	"github.com/Dosada05/club-records/models"
	"github.com/Dosada05/club-records/repositories"
	"golang.org/x/sync/errgroup"
)

// ReportService derives aggregates from matches and stats. It never writes.
type ReportService interface {
	SummaryCounts(ctx context.Context, today models.Date) (models.SummaryCounts, error)
	LocationBreakdown(ctx context.Context) ([]models.LocationCount, error)
	MatchDetail(ctx context.Context, matchID int) (*models.MatchDetail, error)
	PlayerTotals(ctx context.Context) ([]models.PlayerTotals, error)
	Overview(ctx context.Context, today models.Date) (*models.ClubOverview, error)
}

type reportService struct {
	reportRepo   repositories.ReportRepository
	matchService MatchService
	statService  StatService
}

func NewReportService(reportRepo repositories.ReportRepository, matchService MatchService, statService StatService) ReportService {
	return &reportService{
		reportRepo:   reportRepo,
		matchService: matchService,
		statService:  statService,
	}
}

func (s *reportService) SummaryCounts(ctx context.Context, today models.Date) (models.SummaryCounts, error) {
	counts, err := s.reportRepo.SummaryCounts(ctx, today)
	if err != nil {
		return models.SummaryCounts{}, persistenceError("summary counts", err)
	}
	return counts, nil
}

func (s *reportService) LocationBreakdown(ctx context.Context) ([]models.LocationCount, error) {
	groups, err := s.reportRepo.LocationBreakdown(ctx)
	if err != nil {
		return nil, persistenceError("location breakdown", err)
	}
	if groups == nil {
		return []models.LocationCount{}, nil
	}
	return groups, nil
}

func (s *reportService) MatchDetail(ctx context.Context, matchID int) (*models.MatchDetail, error) {
	match, err := s.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	stats, err := s.statService.ListStatsForMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return &models.MatchDetail{Match: *match, Stats: stats}, nil
}

func (s *reportService) PlayerTotals(ctx context.Context) ([]models.PlayerTotals, error) {
	totals, err := s.reportRepo.PlayerTotals(ctx)
	if err != nil {
		return nil, persistenceError("player totals", err)
	}
	if totals == nil {
		return []models.PlayerTotals{}, nil
	}
	return totals, nil
}

// Overview runs the independent aggregates concurrently. Any failure fails
// the whole overview.
func (s *reportService) Overview(ctx context.Context, today models.Date) (*models.ClubOverview, error) {
	overview := &models.ClubOverview{AsOf: today}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.SummaryCounts(gCtx, today)
		if err != nil {
			return err
		}
		overview.Summary = counts
		return nil
	})

	g.Go(func() error {
		groups, err := s.LocationBreakdown(gCtx)
		if err != nil {
			return err
		}
		overview.Locations = groups
		return nil
	})

	g.Go(func() error {
		totals, err := s.PlayerTotals(gCtx)
		if err != nil {
			return err
		}
		overview.Players = totals
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
