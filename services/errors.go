package services

import "errors"

// Ошибки сервисного слоя, используемые в маппинге HTTP.
var (
	ErrPlayerNotFound = errors.New("player not found")

	// Ошибки загрузки фото профиля
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file is too large")
)
