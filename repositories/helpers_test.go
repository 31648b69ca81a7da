package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{Code: "23505", Constraint: "players_email_key"}
	assert.True(t, isUniqueViolation(uniqueErr))

	// Классификация переживает оборачивание.
	wrapped := fmt.Errorf("database query failed: %w", uniqueErr)
	assert.True(t, isUniqueViolation(wrapped))

	fkErr := &pq.Error{Code: "23503"}
	assert.False(t, isUniqueViolation(fkErr))

	assert.False(t, isUniqueViolation(errors.New("duplicate key value")))
	assert.False(t, isUniqueViolation(nil))
}

// Сбой проверки доступности классифицируется сентинелом, но причина
// остаётся в цепочке ошибки — сервисный лог должен её видеть.
func TestAvailabilityErrorKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	err := availabilityError(cause)

	assert.True(t, errors.Is(err, ErrAvailabilityCheck))
	assert.Contains(t, err.Error(), "connection refused")
}
