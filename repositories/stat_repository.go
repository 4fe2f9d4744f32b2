package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/club-records/models"
)

// ErrStatMatchInvalid is returned when the store rejects a stat whose match
// does not exist.
var ErrStatMatchInvalid = errors.New("stat references an unknown match")

type StatRepository interface {
	Create(ctx context.Context, stat *models.StatRecord) error
	ListAll(ctx context.Context) ([]models.StatRecord, error)
	ListByMatch(ctx context.Context, matchID int) ([]models.StatRecord, error)
}

type sqlStatRepository struct {
	sqlStore
}

func NewSQLStatRepository(conn SQLExecutor, driver string) StatRepository {
	return &sqlStatRepository{sqlStore{db: conn, driver: driver}}
}

const statColumns = `id, player_name, goals, assists, player_ratings, cardings, match_id`

func (r *sqlStatRepository) Create(ctx context.Context, stat *models.StatRecord) error {
	query := `INSERT INTO stats (player_name, goals, assists, player_ratings, cardings, match_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := r.db.QueryRowContext(ctx, r.q(query),
		stat.PlayerName,
		stat.Goals,
		stat.Assists,
		stat.Rating,
		stat.Cards,
		stat.MatchID,
	).Scan(&stat.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrStatMatchInvalid
		}
		return fmt.Errorf("failed to insert stat: %w", err)
	}
	return nil
}

func (r *sqlStatRepository) ListAll(ctx context.Context) ([]models.StatRecord, error) {
	return r.list(ctx, `SELECT `+statColumns+` FROM stats ORDER BY id ASC`)
}

func (r *sqlStatRepository) ListByMatch(ctx context.Context, matchID int) ([]models.StatRecord, error) {
	return r.list(ctx, `SELECT `+statColumns+` FROM stats WHERE match_id = $1 ORDER BY id ASC`, matchID)
}

func (r *sqlStatRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.StatRecord, error) {
	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.StatRecord, 0)
	for rows.Next() {
		var stat models.StatRecord
		if err := rows.Scan(
			&stat.ID,
			&stat.PlayerName,
			&stat.Goals,
			&stat.Assists,
			&stat.Rating,
			&stat.Cards,
			&stat.MatchID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stat row: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stat rows: %w", err)
	}
	return stats, nil
}
