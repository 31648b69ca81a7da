package repositories

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Ошибки персистентного слоя. Единственный различимый режим отказа БД —
// нарушение уникальности email; всё остальное схлопывается в непрозрачные
// ошибки, чтобы не протекали детали схемы.
var (
	ErrEmailConflict     = errors.New("email already registered")
	ErrAvailabilityCheck = errors.New("failed to check email availability")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrCoachNotFound     = errors.New("coach not found")
)

const uniqueViolationCode = "23505"

// isUniqueViolation распознаёт нарушение уникального ограничения по
// типизированному коду драйвера, а не по тексту сообщения.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

// availabilityError сохраняет причину сбоя проверки уникальности для логов
// сервисного слоя, оставаясь совместимым с errors.Is(err, ErrAvailabilityCheck).
func availabilityError(err error) error {
	return fmt.Errorf("%w: %v", ErrAvailabilityCheck, err)
}
