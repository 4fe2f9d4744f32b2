package repositories

import (
	"context"
	"fmt"

	"github.com/Dosada05/club-records/models"
)

// ReportRepository answers aggregate queries. It never writes.
type ReportRepository interface {
	// SummaryCounts splits every match at day: past is strictly before it.
	SummaryCounts(ctx context.Context, day models.Date) (models.SummaryCounts, error)
	// LocationBreakdown groups matches by exact location text, in the order
	// each location was first used.
	LocationBreakdown(ctx context.Context) ([]models.LocationCount, error)
	PlayerTotals(ctx context.Context) ([]models.PlayerTotals, error)
}

type sqlReportRepository struct {
	sqlStore
}

func NewSQLReportRepository(conn SQLExecutor, driver string) ReportRepository {
	return &sqlReportRepository{sqlStore{db: conn, driver: driver}}
}

func (r *sqlReportRepository) SummaryCounts(ctx context.Context, day models.Date) (models.SummaryCounts, error) {
	// One statement so that total, past and upcoming come from the same snapshot.
	query := `SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN match_date < $1 THEN 1 ELSE 0 END), 0)
		FROM matches`

	var counts models.SummaryCounts
	if err := r.db.QueryRowContext(ctx, r.q(query), day).Scan(&counts.Total, &counts.Past); err != nil {
		return models.SummaryCounts{}, fmt.Errorf("failed to count matches: %w", err)
	}
	counts.Upcoming = counts.Total - counts.Past
	return counts, nil
}

func (r *sqlReportRepository) LocationBreakdown(ctx context.Context) ([]models.LocationCount, error) {
	query := `SELECT match_location, COUNT(*)
		FROM matches
		GROUP BY match_location
		ORDER BY MIN(id) ASC`

	rows, err := r.db.QueryContext(ctx, r.q(query))
	if err != nil {
		return nil, fmt.Errorf("failed to query location breakdown: %w", err)
	}
	defer rows.Close()

	groups := make([]models.LocationCount, 0)
	for rows.Next() {
		var g models.LocationCount
		if err := rows.Scan(&g.Location, &g.Count); err != nil {
			return nil, fmt.Errorf("failed to scan location group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location groups: %w", err)
	}
	return groups, nil
}

func (r *sqlReportRepository) PlayerTotals(ctx context.Context) ([]models.PlayerTotals, error) {
	query := `SELECT
			player_name,
			COUNT(*),
			COALESCE(SUM(goals), 0),
			COALESCE(SUM(assists), 0),
			COALESCE(SUM(cardings), 0),
			COALESCE(AVG(player_ratings), 0)
		FROM stats
		GROUP BY player_name
		ORDER BY SUM(goals) DESC, SUM(assists) DESC, player_name ASC`

	rows, err := r.db.QueryContext(ctx, r.q(query))
	if err != nil {
		return nil, fmt.Errorf("failed to query player totals: %w", err)
	}
	defer rows.Close()

	totals := make([]models.PlayerTotals, 0)
	for rows.Next() {
		var t models.PlayerTotals
		if err := rows.Scan(&t.PlayerName, &t.Appearances, &t.Goals, &t.Assists, &t.Cards, &t.AverageRating); err != nil {
			return nil, fmt.Errorf("failed to scan player totals: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player totals: %w", err)
	}
	return totals, nil
}
