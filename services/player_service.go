package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Dosada05/club-records/models"
	"github.com/Dosada05/club-records/repositories"
	"github.com/Dosada05/club-records/storage"
)

const (
	RegisteredMessage  = "Registered successfully"
	LoginFailedMessage = "Login failed: player not found"
)

type PlayerService interface {
	// Register stores a new player. Names and jersey numbers are not required
	// to be unique.
	Register(ctx context.Context, input RegisterPlayerInput) (*models.Player, string, error)
	// VerifyIdentity reports found=false, with a nil error, when no player has
	// exactly this name and jersey number.
	VerifyIdentity(ctx context.Context, input LoginInput) (player *models.Player, found bool, err error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UploadPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Player, error)
}

type RegisterPlayerInput struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	JerseyNumber int    `json:"jersey_number"`
	Nationality  string `json:"nationality"`
}

type LoginInput struct {
	Name         string `json:"name"`
	JerseyNumber int    `json:"jersey_number"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
	logger     *slog.Logger
}

// NewPlayerService accepts a nil uploader; photo upload is then unavailable.
func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader, logger *slog.Logger) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
		logger:     loggerOrDiscard(logger),
	}
}

func (s *playerService) Register(ctx context.Context, input RegisterPlayerInput) (*models.Player, string, error) {
	verr := newValidationError()
	if isBlank(input.Name) {
		verr.add("name", "must be provided")
	}
	if input.Age < 0 {
		verr.add("age", "must not be negative")
	}
	if input.JerseyNumber < 0 {
		verr.add("jersey_number", "must not be negative")
	}
	if err := verr.orNil(); err != nil {
		return nil, "", err
	}

	player := &models.Player{
		Name:         input.Name,
		Age:          input.Age,
		JerseyNumber: input.JerseyNumber,
		Nationality:  input.Nationality,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, "", persistenceError("register player", err)
	}

	s.logger.Debug("player registered", slog.Int("player_id", player.ID), slog.Int("jersey_number", player.JerseyNumber))
	return player, RegisteredMessage, nil
}

func (s *playerService) VerifyIdentity(ctx context.Context, input LoginInput) (*models.Player, bool, error) {
	player, err := s.playerRepo.FindByIdentity(ctx, input.Name, input.JerseyNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, false, nil
		}
		return nil, false, persistenceError("verify identity", err)
	}
	populatePlayerPhotoURL(player, s.uploader)
	return player, true, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, persistenceError(fmt.Sprintf("get player %d", id), err)
	}
	populatePlayerPhotoURL(player, s.uploader)
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, persistenceError("list players", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	for i := range players {
		populatePlayerPhotoURL(&players[i], s.uploader)
	}
	return players, nil
}

func (s *playerService) UploadPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrPhotoStorageUnavailable
	}
	key, ok := storage.PlayerPhotoKey(id, contentType)
	if !ok {
		return nil, &ValidationError{Fields: map[string]string{"photo": fmt.Sprintf("unsupported content type %q", contentType)}}
	}

	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, persistenceError(fmt.Sprintf("get player %d", id), err)
	}

	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, persistenceError("upload player photo", err)
	}

	if err := s.playerRepo.UpdatePhotoKey(ctx, id, &key); err != nil {
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to remove orphaned photo", slog.String("key", key), slog.Any("error", delErr))
		}
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, persistenceError("save player photo", err)
	}

	if player.PhotoKey != nil && *player.PhotoKey != "" {
		if err := s.uploader.Delete(ctx, *player.PhotoKey); err != nil {
			s.logger.Warn("failed to delete previous photo", slog.Int("player_id", id), slog.Any("error", err))
		}
	}

	player.PhotoKey = &key
	player.PhotoURL = nil
	populatePlayerPhotoURL(player, s.uploader)
	return player, nil
}
