package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/club-records/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	// FindByIdentity returns the first player, in registration order, whose
	// name and jersey number both match exactly.
	FindByIdentity(ctx context.Context, name string, jerseyNumber int) (*models.Player, error)
	UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error
}

type sqlPlayerRepository struct {
	sqlStore
}

func NewSQLPlayerRepository(conn SQLExecutor, driver string) PlayerRepository {
	return &sqlPlayerRepository{sqlStore{db: conn, driver: driver}}
}

const playerColumns = `id, player_name, age, jersey_number, nationality, photo_key`

func (r *sqlPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `INSERT INTO players (player_name, age, jersey_number, nationality, photo_key)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := r.db.QueryRowContext(ctx, r.q(query),
		player.Name,
		player.Age,
		player.JerseyNumber,
		player.Nationality,
		player.PhotoKey,
	).Scan(&player.ID)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *sqlPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	player, err := scanPlayer(r.db.QueryRowContext(ctx, r.q(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player by id %d: %w", id, err)
	}
	return player, nil
}

func (r *sqlPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, r.q(query))
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player rows: %w", err)
	}
	return players, nil
}

func (r *sqlPlayerRepository) FindByIdentity(ctx context.Context, name string, jerseyNumber int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players
		WHERE player_name = $1 AND jersey_number = $2
		ORDER BY id ASC
		LIMIT 1`

	player, err := scanPlayer(r.db.QueryRowContext(ctx, r.q(query), name, jerseyNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to look up player identity: %w", err)
	}
	return player, nil
}

func (r *sqlPlayerRepository) UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error {
	query := `UPDATE players SET photo_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, r.q(query), photoKey, id)
	if err != nil {
		return fmt.Errorf("failed to update photo for player %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(s rowScanner) (*models.Player, error) {
	var player models.Player
	var photoKey sql.NullString
	if err := s.Scan(
		&player.ID,
		&player.Name,
		&player.Age,
		&player.JerseyNumber,
		&player.Nationality,
		&photoKey,
	); err != nil {
		return nil, err
	}
	if photoKey.Valid {
		player.PhotoKey = &photoKey.String
	}
	return &player, nil
}
