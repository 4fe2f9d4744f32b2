package services

import (
	"io"
	"log/slog"
	"strings"

	"github.com/Dosada05/club-records/models"
	"github.com/Dosada05/club-records/storage"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

func populatePlayerPhotoURL(player *models.Player, uploader storage.FileUploader) {
	if player == nil || player.PhotoKey == nil || *player.PhotoKey == "" || uploader == nil {
		return
	}
	if url := uploader.GetPublicURL(*player.PhotoKey); url != "" {
		player.PhotoURL = &url
	}
}
