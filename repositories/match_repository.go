package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/club-records/models"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchRepository lists matches by date descending; matches sharing a date
// keep their insertion order.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Exists(ctx context.Context, id int) (bool, error)
	ListAll(ctx context.Context) ([]models.Match, error)
	ListBefore(ctx context.Context, day models.Date) ([]models.Match, error)
	ListOnOrAfter(ctx context.Context, day models.Date) ([]models.Match, error)
	ListOptions(ctx context.Context) ([]models.MatchOption, error)
}

type sqlMatchRepository struct {
	sqlStore
}

func NewSQLMatchRepository(conn SQLExecutor, driver string) MatchRepository {
	return &sqlMatchRepository{sqlStore{db: conn, driver: driver}}
}

const (
	matchColumns = `id, match_result, match_lineup, match_date, match_time, match_location`
	matchOrder   = ` ORDER BY match_date DESC, id ASC`
)

func (r *sqlMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `INSERT INTO matches (match_result, match_lineup, match_date, match_time, match_location)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := r.db.QueryRowContext(ctx, r.q(query),
		match.Result,
		match.Lineup,
		match.Date,
		match.Time,
		match.Location,
	).Scan(&match.ID)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (r *sqlMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	match, err := scanMatch(r.db.QueryRowContext(ctx, r.q(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return match, nil
}

func (r *sqlMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `UPDATE matches
		SET match_result = $1, match_lineup = $2, match_date = $3, match_time = $4, match_location = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, r.q(query),
		match.Result,
		match.Lineup,
		match.Date,
		match.Time,
		match.Location,
		match.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update match %d: %w", match.ID, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *sqlMatchRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, r.q(query), id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check match %d: %w", id, err)
	}
	return exists, nil
}

func (r *sqlMatchRepository) ListAll(ctx context.Context) ([]models.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches`+matchOrder)
}

func (r *sqlMatchRepository) ListBefore(ctx context.Context, day models.Date) ([]models.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches WHERE match_date < $1`+matchOrder, day)
}

func (r *sqlMatchRepository) ListOnOrAfter(ctx context.Context, day models.Date) ([]models.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches WHERE match_date >= $1`+matchOrder, day)
}

func (r *sqlMatchRepository) ListOptions(ctx context.Context) ([]models.MatchOption, error) {
	query := `SELECT id, match_result, match_date FROM matches` + matchOrder

	rows, err := r.db.QueryContext(ctx, r.q(query))
	if err != nil {
		return nil, fmt.Errorf("failed to query match options: %w", err)
	}
	defer rows.Close()

	options := make([]models.MatchOption, 0)
	for rows.Next() {
		var opt models.MatchOption
		if err := rows.Scan(&opt.ID, &opt.Result, &opt.Date); err != nil {
			return nil, fmt.Errorf("failed to scan match option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match options: %w", err)
	}
	return options, nil
}

func (r *sqlMatchRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, *match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match rows: %w", err)
	}
	return matches, nil
}

func scanMatch(s rowScanner) (*models.Match, error) {
	var match models.Match
	if err := s.Scan(
		&match.ID,
		&match.Result,
		&match.Lineup,
		&match.Date,
		&match.Time,
		&match.Location,
	); err != nil {
		return nil, err
	}
	return &match, nil
}
