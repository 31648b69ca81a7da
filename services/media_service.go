package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Dosada05/recruiting-platform/repositories"
	"github.com/Dosada05/recruiting-platform/storage"
)

const maxPhotoSizeBytes = 5 << 20 // 5MB

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type MediaService interface {
	UploadPlayerPhoto(ctx context.Context, playerID, contentType string, size int64, reader io.Reader) (string, error)
}

type mediaService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
	logger     *slog.Logger
}

func NewMediaService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader, logger *slog.Logger) MediaService {
	return &mediaService{
		playerRepo: playerRepo,
		uploader:   uploader,
		logger:     logger,
	}
}

// UploadPlayerPhoto загружает фото профиля в объектное хранилище и сохраняет
// ключ на записи игрока. Возвращает публичный URL.
func (s *mediaService) UploadPlayerPhoto(ctx context.Context, playerID, contentType string, size int64, reader io.Reader) (string, error) {
	ext, ok := photoExtensions[contentType]
	if !ok {
		return "", ErrUnsupportedMediaType
	}
	if size > maxPhotoSizeBytes {
		return "", ErrFileTooLarge
	}

	key := fmt.Sprintf("players/%s/photo%s", playerID, ext)

	result, err := s.uploader.Upload(ctx, key, contentType, reader)
	if err != nil {
		return "", fmt.Errorf("failed to upload player photo: %w", err)
	}

	if err := s.playerRepo.UpdatePhotoKey(ctx, playerID, result.Key); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			// Игрока нет — убираем осиротевший объект из хранилища.
			if delErr := s.uploader.Delete(ctx, result.Key); delErr != nil {
				s.logger.Warn("failed to delete orphaned photo", slog.String("key", result.Key), slog.Any("error", delErr))
			}
			return "", ErrPlayerNotFound
		}
		return "", err
	}

	return result.Location, nil
}
